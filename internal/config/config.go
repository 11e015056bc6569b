package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App       AppConfig       `mapstructure:"app"       validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
}

// AppConfig contains process-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// SettingsDir is where the four user-settings documents live
	// (generation defaults, custom palettes, custom styles, hidden styles).
	SettingsDir string `mapstructure:"settings_dir" validate:"required"`
}

// DatabaseConfig contains the durable-store settings. An empty URL selects
// the in-memory store, losing history across runs.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig contains the image-model integration settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}

// SchedulerConfig tunes the job-orchestration core. The defaults are
// deliberately conservative to respect the remote rate limiter.
type SchedulerConfig struct {
	// Concurrency is the ceiling on simultaneously in-flight jobs.
	Concurrency int `mapstructure:"concurrency" validate:"required,gte=1,lte=8"`

	// PacingMs is the delay before each task start, first included.
	PacingMs int `mapstructure:"pacing_ms" validate:"gte=0"`

	// MaxRetries bounds rate-limit retries per job (total attempts = MaxRetries+1).
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// BackoffBaseMs scales the escalating retry wait: base * (attempt+1).
	BackoffBaseMs int `mapstructure:"backoff_base_ms" validate:"gte=0"`
}
