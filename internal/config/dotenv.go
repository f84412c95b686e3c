package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFileVar names the environment variable that points to a custom .env
// file. When it is unset, ".env" in the working directory is used.
const dotEnvFileVar = "DOTENV_FILE"

// loadDotEnv reads KEY=VALUE pairs from the .env file into the process
// environment. Variables already present in the environment are kept.
// A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(dotEnvFileVar)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
