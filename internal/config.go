package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MetricsNamespace prefixes every registration metric.
	MetricsNamespace string `mapstructure:"METRICS_NAMESPACE" validate:"required,alphanum"`

	// ReferenceDataPath optionally points at a YAML file that replaces the
	// built-in country, state, city and disposable-domain tables.
	ReferenceDataPath string `mapstructure:"REFERENCE_DATA_PATH"`

	Submission SubmissionConfig `mapstructure:",squash"`
}

// SubmissionConfig holds the post-success timings.
type SubmissionConfig struct {
	// ResetDelay is how long the success banner shows before the form is cleared.
	ResetDelay time.Duration `mapstructure:"RESET_DELAY" validate:"gt=0"`

	// FeedbackHideDelay runs after the reset and hides the banners.
	FeedbackHideDelay time.Duration `mapstructure:"FEEDBACK_HIDE_DELAY" validate:"gt=0"`
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			log.Warn().Msg(".env file not found, using environment variables and defaults")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_NAMESPACE", "signup")
	v.SetDefault("REFERENCE_DATA_PATH", "")
	v.SetDefault("RESET_DELAY", "2s")
	v.SetDefault("FEEDBACK_HIDE_DELAY", "5s")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		log.Warn().Str("env", cfg.Env).Msg("Invalid environment. Using default: prod")
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		log.Warn().Str("value", cfg.LogLevel).Msg("Invalid log level. Using default: info")
		cfg.LogLevel = "info"
	}

	if err := configValidate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
