package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, sourced from environment
// variables with an optional .env file for development.
type Config struct {
	Env              string
	LogLevel         string
	Port             uint16
	SeedSampleData   bool
	MetricsNamespace string
	Nats             NatsConfig
}

// NatsConfig configures the event publisher. An empty URL disables
// publishing entirely.
type NatsConfig struct {
	URL           string
	SubjectPrefix string
}

// NewConfig loads configuration. A missing .env file is fine; real
// environment variables always win.
func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				break
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 3000)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("METRICS_NAMESPACE", "saga")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT_PREFIX", "saga")

	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", port)
	}

	cfg := &Config{
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		Port:             uint16(port),
		SeedSampleData:   v.GetBool("SEED_SAMPLE_DATA"),
		MetricsNamespace: v.GetString("METRICS_NAMESPACE"),
		Nats: NatsConfig{
			URL:           v.GetString("NATS_URL"),
			SubjectPrefix: v.GetString("NATS_SUBJECT_PREFIX"),
		},
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		return nil, fmt.Errorf("invalid ENV: %q (want dev or prod)", cfg.Env)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
