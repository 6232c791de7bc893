package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

func testRequest() openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: "diff --git a/main.go b/main.go"},
		},
	}
}

// spoolFiles lists leftover request spool files in the temp directory.
func spoolFiles(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "aicommit-req-*.json"))
	require.NoError(t, err)
	return matches
}

func TestComplete_Success(t *testing.T) {
	responseBody := `{"choices":[{"message":{"content":"feat: add feature"}}]}`

	var gotAuth, gotContentType string
	var gotBody openai.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(responseBody))
	}))
	defer server.Close()

	client := NewClient()
	body, err := client.Complete(context.Background(), server.URL, testRequest(), "sk-test-key")

	require.NoError(t, err)
	assert.Equal(t, responseBody, string(body))
	assert.Equal(t, "Bearer sk-test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "diff --git a/main.go b/main.go", gotBody.Messages[1].Content)

	assert.Empty(t, spoolFiles(t), "request spool file must be removed after success")
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Complete(context.Background(), server.URL, testRequest(), "sk-test-key")

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrTransport, appErr.Code)
	assert.Equal(t, http.StatusTooManyRequests, appErr.Status)
	assert.Contains(t, appErr.Body, "rate limit exceeded")

	assert.Empty(t, spoolFiles(t), "request spool file must be removed after failure")
}

func TestComplete_NetworkFailure(t *testing.T) {
	// A closed server guarantees a connection error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient()
	_, err := client.Complete(context.Background(), server.URL, testRequest(), "sk-test-key")

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrTransport, appErr.Code)
	assert.Equal(t, 0, appErr.Status)
	assert.NotNil(t, appErr.Cause)

	assert.Empty(t, spoolFiles(t))
}

func TestComplete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	_, err := client.Complete(ctx, server.URL, testRequest(), "sk-test-key")

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTransport))
	assert.Empty(t, spoolFiles(t))
}

func TestComplete_SingleAttempt(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Complete(context.Background(), server.URL, testRequest(), "sk-test-key")

	require.Error(t, err)
	assert.Equal(t, 1, requests, "a failed exchange must not be retried")
}
