package llm

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joacolabadie/aicommit/internal/pkg/config"
	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// BuildRequest assembles the completion request from the configured model and
// the staged diff lines. The lines are joined with newline separators in
// order and sent as the sole user message after the fixed system instruction.
//
// MaxCompletionTokens is only set when configured; the zero value serializes
// as an omitted field, never as an explicit null.
func BuildRequest(cfg *config.Config, lines []string) (openai.ChatCompletionRequest, error) {
	diff := strings.Join(lines, "\n")

	if limit := cfg.Git.MaxDiffBytes; limit > 0 && len(diff) > limit {
		return openai.ChatCompletionRequest{}, apperrors.NewDiffTooLargeError(len(diff), limit)
	}

	req := openai.ChatCompletionRequest{
		Model: cfg.Provider.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: diff,
			},
		},
	}

	if cfg.Provider.MaxCompletionTokens > 0 {
		req.MaxCompletionTokens = cfg.Provider.MaxCompletionTokens
	}

	return req, nil
}
