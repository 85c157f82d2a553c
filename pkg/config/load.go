package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first environment file found among envFilePath (searching parent
// directories), falls back to ./.env, then builds and validates App from the environment.
// Missing files are not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"log_format", cfg.Log.Format,
		"currency_symbol", cfg.Ledger.CurrencySymbol,
		"metrics_enabled", cfg.Metrics.Enabled,
	)
	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *App) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
