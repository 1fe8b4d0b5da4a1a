// Package sessiontoken mints session-record tokens for local development.
package sessiontoken

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	entrypoint "github.com/vinylcourses/coursehub/internal/platform/cmd"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/sessioncookie"
	"github.com/vinylcourses/coursehub/internal/services/web/session"
)

// Config holds configuration for token minting.
type Config struct {
	Key      string `env:"COURSEHUB_WEB_SESSION_KEY"`
	ID       int64
	Username string
	Email    string
	Role     string
	TTL      time.Duration
}

// ParseConfig reads the session key from the environment and the record
// fields from flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Role = "student"
	cfg.TTL = session.DefaultTTL

	fs.Int64Var(&cfg.ID, "id", cfg.ID, "user id")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "username")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "email (optional)")
	fs.StringVar(&cfg.Role, "role", cfg.Role, "role")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "token lifetime")
	fs.StringVar(&cfg.Key, "key", cfg.Key, "session signing key (default: COURSEHUB_WEB_SESSION_KEY)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run mints a token and writes it to out as a cookie assignment.
func Run(cfg Config, out io.Writer, now func() time.Time) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.ID <= 0 {
		return errors.New("id must be greater than zero")
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return errors.New("username is required")
	}
	codec, err := session.NewCodec([]byte(strings.TrimSpace(cfg.Key)))
	if err != nil {
		return err
	}
	if now != nil {
		codec.WithClock(now)
	}
	token, err := codec.Encode(session.Record{
		ID:       cfg.ID,
		Username: cfg.Username,
		Email:    cfg.Email,
		Role:     cfg.Role,
	}, cfg.TTL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s=%s\n", sessioncookie.Name, token)
	return err
}
