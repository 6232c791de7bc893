package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

const (
	// RequestTimeout bounds the single completion exchange. There is no
	// retry and no user-facing cancellation beyond this timeout.
	RequestTimeout = 60 * time.Second

	// maxErrorBodyBytes caps how much of a failure response body is kept
	// for diagnostics.
	maxErrorBodyBytes = 8 * 1024
)

// Client performs one synchronous completion exchange per invocation.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with a pooled transport and the fixed timeout.
func NewClient() *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}
}

// Complete serializes req, POSTs it to the endpoint with a bearer credential,
// and returns the raw 200 response body. The request body is spooled through
// a private temporary file that is removed on every exit path. Any transport
// failure, including non-200 statuses, is terminal.
func (c *Client) Complete(ctx context.Context, endpoint string, req openai.ChatCompletionRequest, apiKey string) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to serialize completion request")
	}

	spool, err := os.CreateTemp("", "aicommit-req-*.json")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFileSystem, "failed to create request spool file")
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	if _, err := spool.Write(payload); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFileSystem, "failed to write request spool file")
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFileSystem, "failed to rewind request spool file")
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, spool)
	if err != nil {
		return nil, apperrors.NewTransportError(0, "", err)
	}
	httpReq.ContentLength = int64(len(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	apperrors.LogRequest(endpoint, req.Model, len(payload))
	startTime := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewTransportError(0, "", fmt.Errorf("request timed out after %v: %w", RequestTimeout, err))
		}
		return nil, apperrors.NewTransportError(0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, apperrors.NewTransportError(resp.StatusCode, string(body), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(resp.StatusCode, "", err)
	}

	apperrors.LogResponse(resp.StatusCode, len(body), time.Since(startTime))

	return body, nil
}
