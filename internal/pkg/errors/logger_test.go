package errors

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	assert.Empty(t, buf.String())

	logger.Error("error message")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "error message")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Debug("debug message")
	logger.Info("info message")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "info message")
}

func TestLogger_SanitizesMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	key := "sk-1234567890abcdefghijklmn"
	logger.Error("request failed with key %s", key)

	assert.NotContains(t, buf.String(), key)
}

func TestLogger_LogRequestResponse(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.LogRequest("https://api.openai.com/v1/chat/completions", "gpt-4o-mini", 512)
	logger.LogResponse(200, 1024, 350*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "endpoint=https://api.openai.com/v1/chat/completions")
	assert.Contains(t, out, "model=gpt-4o-mini")
	assert.Contains(t, out, "status=200")
}

func TestLogger_LogRequestQuietWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	logger.LogRequest("https://example.test", "gpt-4o-mini", 512)
	logger.LogResponse(200, 1024, time.Second)

	assert.Empty(t, buf.String())
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}
