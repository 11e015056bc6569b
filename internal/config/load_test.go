package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel:    "info",
			SettingsDir: ".coloring",
		},
		LLM: LLMConfig{
			GeminiAPIKey: "test-key",
			ModelName:    "gemini-2.0-flash-exp",
		},
		Scheduler: SchedulerConfig{
			Concurrency:   2,
			PacingMs:      1000,
			MaxRetries:    3,
			BackoffBaseMs: 10000,
		},
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("COLORING_LLM_GEMINI_API_KEY", "env-key")
	t.Setenv("COLORING_APP_LOG_LEVEL", "debug")
	// No default exists for these two; they must still load from env.
	t.Setenv("COLORING_DATABASE_URL", "postgres://app@localhost:5432/coloring")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres://app@localhost:5432/coloring", cfg.Database.URL)

	// Defaults fill in everything not set explicitly.
	assert.Equal(t, 2, cfg.Scheduler.Concurrency)
	assert.Equal(t, 1000, cfg.Scheduler.PacingMs)
	assert.Equal(t, 3, cfg.Scheduler.MaxRetries)
	assert.Equal(t, 10000, cfg.Scheduler.BackoffBaseMs)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("COLORING_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "GeminiAPIKey")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.App.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Scheduler.Concurrency = 0 },
			wantErr: true,
		},
		{
			name:    "excessive concurrency",
			mutate:  func(c *Config) { c.Scheduler.Concurrency = 64 },
			wantErr: true,
		},
		{
			name:    "negative pacing",
			mutate:  func(c *Config) { c.Scheduler.PacingMs = -1 },
			wantErr: true,
		},
		{
			name:    "missing model name",
			mutate:  func(c *Config) { c.LLM.ModelName = "" },
			wantErr: true,
		},
		{
			name:    "empty database URL is allowed",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: false,
		},
		{
			name:    "malformed database URL",
			mutate:  func(c *Config) { c.Database.URL = "not a url" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
