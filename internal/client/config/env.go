package config

import (
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/versioncheck/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// loadDotenv exports the variables of the file given with -env, or of ./.env
// when present. Variables already set in the environment are kept.
func loadDotenv(args []string) error {
	path := flagx.EnvFilePath(args)
	if path != "" {
		return godotenv.Load(path)
	}

	err := godotenv.Load(defaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// parseEnv overlays cfg with the VC_* variables that are set; unset
// variables leave the current values alone.
func parseEnv(cfg *Config) error {
	return cleanenv.ReadEnv(cfg)
}
