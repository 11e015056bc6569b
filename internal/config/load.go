package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before any config file or environment variable is
// consulted.
const (
	defaultLogLevel      = "info"
	defaultSettingsDir   = ".coloring"
	defaultModelName     = "gemini-2.0-flash-exp"
	defaultConcurrency   = 2
	defaultPacingMs      = 1000
	defaultMaxRetries    = 3
	defaultBackoffBaseMs = 10000
)

// Load reads configuration from an optional coloring.yaml file and from
// environment variables with the COLORING_ prefix. Environment variables
// take precedence over file values. Returns a populated, validated Config or
// an error describing what is missing or malformed.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.log_level", defaultLogLevel)
	v.SetDefault("app.settings_dir", defaultSettingsDir)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("scheduler.concurrency", defaultConcurrency)
	v.SetDefault("scheduler.pacing_ms", defaultPacingMs)
	v.SetDefault("scheduler.max_retries", defaultMaxRetries)
	v.SetDefault("scheduler.backoff_base_ms", defaultBackoffBaseMs)

	v.SetConfigName("coloring")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/coloring")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars may carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("COLORING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about. Keys with
	// no default must be bound explicitly or their env vars are ignored.
	for _, key := range []string{"llm.gemini_api_key", "database.url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct-tag rules. Exposed separately
// so tests and callers that build configs by hand get the same checks.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
