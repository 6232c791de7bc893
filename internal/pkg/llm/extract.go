package llm

import (
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// Extract parses a 200 response body and returns the first choice's message
// content. Nothing beyond "first choice exists and has textual content" is
// assumed about the response schema. Multi-line content is returned verbatim;
// the single-line contract is not enforced post-hoc.
func Extract(body []byte) (string, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", apperrors.NewParseError(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEmptyMessageError()
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.NewEmptyMessageError()
	}

	return content, nil
}
