package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable that points at an optional dotenv file.
const EnvFileVar = "COURSEHUB_ENV_FILE"

const defaultEnvFile = ".env"

// LoadDotEnv preloads variables from the dotenv file named by COURSEHUB_ENV_FILE
// (default ".env"). Variables already set in the process environment win.
// A missing file is not an error.
func LoadDotEnv() error {
	path := strings.TrimSpace(os.Getenv(EnvFileVar))
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
