package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	base := Config{
		Provider: ProviderConfig{
			Model:               "gpt-4o-mini",
			Endpoint:            DefaultEndpoint,
			APIKey:              "sk-base",
			APIKeyEnv:           "OPENAI_API_KEY",
			MaxCompletionTokens: 100,
		},
		Git: GitConfig{MaxDiffBytes: 65536},
	}

	tests := []struct {
		name      string
		overrides Overrides
		check     func(t *testing.T, merged Config)
	}{
		{
			name:      "empty overrides leave base unchanged",
			overrides: Overrides{},
			check: func(t *testing.T, merged Config) {
				assert.Equal(t, base, merged)
			},
		},
		{
			name:      "model override wins",
			overrides: Overrides{Model: "gpt-4o"},
			check: func(t *testing.T, merged Config) {
				assert.Equal(t, "gpt-4o", merged.Provider.Model)
				assert.Equal(t, DefaultEndpoint, merged.Provider.Endpoint)
			},
		},
		{
			name: "all overrides win",
			overrides: Overrides{
				Model:               "gpt-4o",
				Endpoint:            "https://other.test",
				APIKey:              "sk-override",
				APIKeyEnv:           "OTHER_KEY",
				MaxCompletionTokens: 50,
				MaxDiffBytes:        1024,
			},
			check: func(t *testing.T, merged Config) {
				assert.Equal(t, "gpt-4o", merged.Provider.Model)
				assert.Equal(t, "https://other.test", merged.Provider.Endpoint)
				assert.Equal(t, "sk-override", merged.Provider.APIKey)
				assert.Equal(t, "OTHER_KEY", merged.Provider.APIKeyEnv)
				assert.Equal(t, 50, merged.Provider.MaxCompletionTokens)
				assert.Equal(t, 1024, merged.Git.MaxDiffBytes)
			},
		},
		{
			name:      "zero int override keeps base value",
			overrides: Overrides{MaxCompletionTokens: 0, MaxDiffBytes: 0},
			check: func(t *testing.T, merged Config) {
				assert.Equal(t, 100, merged.Provider.MaxCompletionTokens)
				assert.Equal(t, 65536, merged.Git.MaxDiffBytes)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := base
			merged := Merge(base, tt.overrides)
			tt.check(t, merged)
			// Base must never be mutated
			assert.Equal(t, before, base)
		})
	}
}

func TestCredentialEnv(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultCredentialEnv, cfg.CredentialEnv())

	cfg.Provider.APIKeyEnv = "MY_CUSTOM_KEY"
	assert.Equal(t, "MY_CUSTOM_KEY", cfg.CredentialEnv())
}
