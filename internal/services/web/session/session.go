// Package session reads the signed session record the login flow stores on
// the client and exposes it as an explicit session context.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Record is the identity of the logged-in user. It is read-only here.
type Record struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// HasEmail reports whether the optional email is present.
func (r Record) HasEmail() bool {
	return strings.TrimSpace(r.Email) != ""
}

// Status classifies the session-record lookup.
type Status int

const (
	// StatusAbsent means no session record was stored.
	StatusAbsent Status = iota
	// StatusMalformed means a record was stored but could not be trusted.
	StatusMalformed
	// StatusPresent means a valid record was found.
	StatusPresent
)

// String returns the log label for s.
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Session is the resolved session context handed to pages at construction.
type Session struct {
	Status Status
	Record Record
	// Err explains a malformed record.
	Err error
}

// Anonymous returns a session with no record.
func Anonymous() Session {
	return Session{Status: StatusAbsent}
}

// Authenticated returns a session for record.
func Authenticated(record Record) Session {
	return Session{Status: StatusPresent, Record: record}
}

// User returns the record when the session is present.
func (s Session) User() (Record, bool) {
	if s.Status != StatusPresent {
		return Record{}, false
	}
	return s.Record, true
}

// ErrMalformed is returned for any untrusted session token.
var ErrMalformed = errors.New("session record is malformed")

// DefaultTTL bounds minted tokens.
const DefaultTTL = 24 * time.Hour

const issuer = "coursehub"

type recordClaims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Codec signs and verifies session-record tokens with a shared HMAC key.
type Codec struct {
	key []byte
	now func() time.Time
}

// NewCodec builds a codec for key.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("session key is required")
	}
	copied := make([]byte, len(key))
	copy(copied, key)
	return &Codec{key: copied, now: time.Now}, nil
}

// WithClock overrides the codec clock.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	if now != nil {
		c.now = now
	}
	return c
}

// Encode mints a token for record that expires after ttl.
func (c *Codec) Encode(record Record, ttl time.Duration) (string, error) {
	if record.ID <= 0 {
		return "", errors.New("session record id is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := c.now().UTC()
	claims := recordClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(record.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ID:       record.ID,
		Username: strings.TrimSpace(record.Username),
		Email:    strings.TrimSpace(record.Email),
		Role:     strings.TrimSpace(record.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session record: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns its record. Any failure wraps ErrMalformed.
func (c *Codec) Decode(token string) (Record, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Record{}, fmt.Errorf("%w: empty token", ErrMalformed)
	}
	var claims recordClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrMalformed, describeJWTError(err))
	}
	if claims.ID <= 0 {
		return Record{}, fmt.Errorf("%w: missing id", ErrMalformed)
	}
	return Record{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

func describeJWTError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token malformed"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token unverifiable"
	default:
		return "token invalid"
	}
}
