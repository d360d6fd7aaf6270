package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"        validate:"required"`
	Funding   FundingConfig   `mapstructure:"funding"    validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is optional: without it every generation fails fast with a
	// funding error, but the server still starts.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the Gemini model identifier used for generation
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the built-in prompt template
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
}

// FundingConfig controls how quota and credential failures are reported.
type FundingConfig struct {
	DonationURL string `mapstructure:"donation_url" validate:"required,url"`
	// Triggers are the failure substrings that mean "out of funding".
	// Empty means the built-in trigger set.
	Triggers []string `mapstructure:"triggers"`
}

// RateLimitConfig throttles generation requests per client address.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	Burst             int  `mapstructure:"burst"               validate:"required_if=Enabled true,gte=0"`
}
