// Package credential resolves the API key used for completion requests.
package credential

import (
	"os"
	"strings"

	"github.com/joacolabadie/aicommit/internal/pkg/config"
	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// LookupEnv is the environment lookup used by Resolve. It is a variable so
// tests can substitute a fake environment.
var LookupEnv = os.LookupEnv

// Resolve determines the API key for one invocation. An explicit key in the
// configuration always wins; otherwise the environment variable named by the
// configuration (default OPENAI_API_KEY) is consulted. The resolution is a
// pure, synchronous lookup with no retries and no side effects.
func Resolve(cfg *config.Config) (string, error) {
	if key := strings.TrimSpace(cfg.Provider.APIKey); key != "" {
		return key, nil
	}

	envName := cfg.CredentialEnv()
	value, ok := LookupEnv(envName)
	if !ok || strings.TrimSpace(value) == "" {
		return "", apperrors.NewMissingCredentialError(envName)
	}

	return strings.TrimSpace(value), nil
}
