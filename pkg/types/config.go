// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIProvider selects the generation service backend.
type AIProvider string

const (
	ProviderAnthropic AIProvider = "anthropic"
	ProviderOpenAI    AIProvider = "openai"
)

// AIConfig holds settings for calls to the generation service.
type AIConfig struct {
	// Provider is the backend: anthropic or openai.
	Provider AIProvider `json:"provider" yaml:"provider" mapstructure:"provider"`

	// Model is the model identifier (e.g. "claude-haiku-4-5-20251001", "gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the provider endpoint (OpenAI-compatible gateways, proxies).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// MaxTokens caps the length of a single reply (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	// Timeout bounds a single round trip (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// MaxAttempts is the attempt bound of the idea generator (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// RetryDelay is the linear backoff unit of the idea generator (default 1s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay" mapstructure:"retry_delay"`
}

// StoreBackend identifies the key-value backend behind drafts and settings.
type StoreBackend string

const (
	StoreFile   StoreBackend = "file"
	StoreSQLite StoreBackend = "sqlite"
	StoreRedis  StoreBackend = "redis"
	StoreMemory StoreBackend = "memory"
)

// StoreConfig holds settings for persisted drafts and preferences.
type StoreConfig struct {
	// Backend selects the store: file, sqlite, redis, or memory.
	Backend StoreBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Path is the file or database path for the file and sqlite backends.
	// Defaults to a location under the user config directory.
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`

	// RedisURL is the connection URL for the redis backend.
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty" mapstructure:"redis_url"`

	// Namespace prefixes every key in shared backends (redis).
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty" mapstructure:"namespace"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowedOrigins lists CORS origins; empty allows all.
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty" mapstructure:"allowed_origins"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// PlagiarismConfig holds settings for the mock similarity checker.
type PlagiarismConfig struct {
	// Delay simulates the latency of a real checking service (default 2s).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	AI         AIConfig         `json:"ai" yaml:"ai" mapstructure:"ai"`
	Store      StoreConfig      `json:"store" yaml:"store" mapstructure:"store"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Plagiarism PlagiarismConfig `json:"plagiarism" yaml:"plagiarism" mapstructure:"plagiarism"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}
