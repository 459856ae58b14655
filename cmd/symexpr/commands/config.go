package commands

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/panyam/symexpr/logger"
)

// Config holds the settings read from the environment (and an optional
// .env file) before flags are applied.
type Config struct {
	Env      string
	EnvFile  string
	LogLevel string
	NoColor  bool
}

// LoadConfig loads .env (or .env.dev when SYMEXPR_ENV=dev) into the process
// environment and reads the SYMEXPR_* settings. A missing env file is fine.
func LoadConfig() Config {
	cfg := Config{Env: os.Getenv("SYMEXPR_ENV"), EnvFile: ".env"}
	if cfg.Env == "dev" {
		cfg.EnvFile = ".env.dev"
	}
	if err := godotenv.Load(cfg.EnvFile); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("error loading env file %s: %v", cfg.EnvFile, err)
		}
	} else {
		logger.Debug("loaded env file: %s", cfg.EnvFile)
	}

	cfg.LogLevel = os.Getenv("SYMEXPR_LOG_LEVEL")
	if v := os.Getenv("SYMEXPR_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("ignoring SYMEXPR_NO_COLOR=%q: %v", v, err)
		}
		cfg.NoColor = noColor
	}
	return cfg
}

// Apply pushes the config into the logger and the color package.
func (c Config) Apply() error {
	if c.LogLevel != "" {
		level, err := logger.ParseLogLevel(c.LogLevel)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		logger.SetLogLevel(level)
	}
	if c.NoColor {
		color.NoColor = true
	}
	return nil
}
