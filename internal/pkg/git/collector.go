// Package git provides staged-diff collection and commit execution for aicommit.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

const (
	// CommandTimeout is the default timeout for git commands.
	CommandTimeout = 10 * time.Second
)

// Collector supplies the staged diff as an ordered sequence of text lines.
// An empty slice signals "nothing staged".
type Collector interface {
	StagedDiff(ctx context.Context) ([]string, error)
}

// Committer executes a commit with a prepared message.
type Committer interface {
	Commit(ctx context.Context, message string) error
}

// DefaultClient implements Collector and Committer using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// StagedDiff returns the staged diff as lines, preserving order.
// Output that is not decodable text fails with a collector shape error;
// an empty diff fails with a no-staged-changes error.
func (c *DefaultClient) StagedDiff(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(ctx.Err(), apperrors.ErrGitCommandFailed, "git diff timed out")
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return nil, apperrors.NewGitError(err, "")
	}

	return SplitLines(output)
}

// SplitLines validates raw collector output and splits it into lines.
// The output must decode as text; anything else indicates the collaborator's
// contract changed shape.
func SplitLines(output []byte) ([]string, error) {
	if bytes.IndexByte(output, 0) >= 0 {
		return nil, apperrors.NewCollectorShapeError("binary data in diff output")
	}
	if !utf8.Valid(output) {
		return nil, apperrors.NewCollectorShapeError("diff output is not valid UTF-8")
	}

	trimmed := strings.TrimRight(string(output), "\n")
	if trimmed == "" {
		return nil, apperrors.NewNoStagedChangesError()
	}

	return strings.Split(trimmed, "\n"), nil
}

// Commit executes a git commit with the given message.
func (c *DefaultClient) Commit(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return apperrors.Wrap(ctx.Err(), apperrors.ErrGitCommandFailed, "git commit timed out")
		}
		return apperrors.NewGitError(err, string(output))
	}
	return nil
}

// CommitMsgPath resolves the path of the repository's COMMIT_EDITMSG file,
// the surface a commit-message editor would show.
func (c *DefaultClient) CommitMsgPath(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--absolute-git-dir")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	gitDir := strings.TrimSpace(string(output))
	return filepath.Join(gitDir, "COMMIT_EDITMSG"), nil
}
