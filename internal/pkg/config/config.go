// Package config provides configuration management for aicommit.
package config

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gpt-4o-mini"

	// DefaultEndpoint is the chat-completion endpoint used when none is configured.
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

	// DefaultCredentialEnv is the environment variable consulted when no
	// explicit API key and no custom variable name are configured.
	DefaultCredentialEnv = "OPENAI_API_KEY"
)

// Config represents the complete aicommit configuration.
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Git      GitConfig      `mapstructure:"git"`
	UI       UIConfig       `mapstructure:"ui"`
	History  HistoryConfig  `mapstructure:"history"`
}

// ProviderConfig contains completion-endpoint settings.
type ProviderConfig struct {
	Model    string `mapstructure:"model"`
	Endpoint string `mapstructure:"endpoint"`
	// APIKey is the explicit credential. When empty, the variable named by
	// APIKeyEnv is consulted instead.
	APIKey    string `mapstructure:"api_key"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	// MaxCompletionTokens bounds the generated output. 0 means the field is
	// omitted from the request entirely.
	MaxCompletionTokens int `mapstructure:"max_completion_tokens"`
}

// GitConfig contains diff collection settings.
type GitConfig struct {
	// MaxDiffBytes rejects staged diffs larger than this. 0 means no limit.
	MaxDiffBytes int `mapstructure:"max_diff_bytes"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// HistoryConfig contains generation history settings.
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	MaxEntries int    `mapstructure:"max_entries"`
	FilePath   string `mapstructure:"file_path"`
}

// Overrides holds per-invocation configuration overrides, typically sourced
// from command-line flags. Zero values mean "not set".
type Overrides struct {
	Model               string
	Endpoint            string
	APIKey              string
	APIKeyEnv           string
	MaxCompletionTokens int
	MaxDiffBytes        int
}

// Merge returns a copy of base with any set override applied. Base is never
// mutated; the merge is a pure function so configuration can be threaded
// explicitly through the pipeline.
func Merge(base Config, o Overrides) Config {
	merged := base

	if o.Model != "" {
		merged.Provider.Model = o.Model
	}
	if o.Endpoint != "" {
		merged.Provider.Endpoint = o.Endpoint
	}
	if o.APIKey != "" {
		merged.Provider.APIKey = o.APIKey
	}
	if o.APIKeyEnv != "" {
		merged.Provider.APIKeyEnv = o.APIKeyEnv
	}
	if o.MaxCompletionTokens != 0 {
		merged.Provider.MaxCompletionTokens = o.MaxCompletionTokens
	}
	if o.MaxDiffBytes != 0 {
		merged.Git.MaxDiffBytes = o.MaxDiffBytes
	}

	return merged
}

// CredentialEnv returns the environment variable name to consult for the
// API key, falling back to the well-known default.
func (c *Config) CredentialEnv() string {
	if c.Provider.APIKeyEnv != "" {
		return c.Provider.APIKeyEnv
	}
	return DefaultCredentialEnv
}

// Manager defines the interface for configuration management.
type Manager interface {
	Load() (*Config, error)
	Save(config *Config) error
	Set(key string, value string) error
	Get(key string) (string, error)
	Init() error
	List() map[string]interface{}
	GetConfigPath() string
}
