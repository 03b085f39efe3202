package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/expenses"
	"github.com/joho/godotenv"
)

const (
	EnvFile    = "EXPENSES_FILE"
	EnvVerbose = "EXPENSES_VERBOSE"
)

// Config is the app configuration read from the environment. Command line
// flags take precedence over it.
type Config struct {
	File    string `env:"EXPENSES_FILE" envDefault:"expenses.csv"`
	Verbose bool   `env:"EXPENSES_VERBOSE"`
}

// LoadConfig reads the configuration from the environment.
//
// Variables defined in the dotenv files are loaded first, without
// overriding variables already set. With no files, ".env" in the working
// directory is used. Missing dotenv files are ignored.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("cannot load dotenv file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.File == "" {
		cfg.File = expenses.DefaultFile
	}
	return cfg, nil
}

// ApplyConfig sets the global flags default values from cfg. It must be
// called before the flags are parsed.
func ApplyConfig(cfg Config) {
	*expensesFile = cfg.File
	*Verbose = cfg.Verbose
}
