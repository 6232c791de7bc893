// Package app contains the application layer with pipeline orchestration logic.
package app

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joacolabadie/aicommit/internal/pkg/config"
	"github.com/joacolabadie/aicommit/internal/pkg/credential"
	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
	"github.com/joacolabadie/aicommit/internal/pkg/git"
	"github.com/joacolabadie/aicommit/internal/pkg/history"
	"github.com/joacolabadie/aicommit/internal/pkg/llm"
	"github.com/joacolabadie/aicommit/internal/pkg/message"
	"github.com/joacolabadie/aicommit/internal/pkg/sink"
	"github.com/joacolabadie/aicommit/internal/pkg/ui"
)

// Completer performs the single synchronous completion exchange.
type Completer interface {
	Complete(ctx context.Context, endpoint string, req openai.ChatCompletionRequest, apiKey string) ([]byte, error)
}

// Service runs the generation pipeline: resolve credential, collect diff,
// build request, send, extract, deliver. The sequence is strictly linear and
// non-resumable; every stage short-circuits with a terminal error.
type Service struct {
	collector  git.Collector
	client     Completer
	notifier   ui.Notifier
	historyMgr history.Manager
	config     *config.Config
	newSpinner func(text string) ui.Spinner
}

// NewService creates a Service with the given dependencies.
// historyMgr may be nil to disable history recording.
func NewService(
	collector git.Collector,
	client Completer,
	notifier ui.Notifier,
	historyMgr history.Manager,
	cfg *config.Config,
) *Service {
	return &Service{
		collector:  collector,
		client:     client,
		notifier:   notifier,
		historyMgr: historyMgr,
		config:     cfg,
		newSpinner: ui.NewSpinner,
	}
}

// SetSpinnerFactory replaces the spinner used around the network call.
// Tests and non-interactive callers install ui.NewNopSpinner here.
func (s *Service) SetSpinnerFactory(f func(text string) ui.Spinner) {
	if f != nil {
		s.newSpinner = f
	}
}

// Generate runs the full pipeline and delivers the generated message to the
// surface. The process-wide configuration is merged with the per-call
// overrides before the first stage. The returned message is also handed back
// for callers that need it beyond the surface.
func (s *Service) Generate(ctx context.Context, surface sink.Surface, overrides config.Overrides) (string, error) {
	cfg := config.Merge(*s.config, overrides)

	s.notifier.Info("Generating commit message from staged changes...")

	apiKey, err := credential.Resolve(&cfg)
	if err != nil {
		return "", s.fail(err)
	}
	apperrors.Debug("Using credential %s", apperrors.MaskAPIKey(apiKey))

	lines, err := s.collector.StagedDiff(ctx)
	if err != nil {
		return "", s.fail(err)
	}

	req, err := llm.BuildRequest(&cfg, lines)
	if err != nil {
		return "", s.fail(err)
	}

	spinner := s.newSpinner("Waiting for completion endpoint...")
	spinner.Start()
	body, err := s.client.Complete(ctx, cfg.Provider.Endpoint, req, apiKey)
	spinner.Stop()
	if err != nil {
		return "", s.fail(err)
	}

	msg, err := llm.Extract(body)
	if err != nil {
		return "", s.fail(err)
	}

	// Advisory only: multi-line or malformed output is still delivered verbatim.
	for _, warning := range message.Lint(msg) {
		s.notifier.Warn(warning)
	}

	if err := sink.Deliver(surface, msg); err != nil {
		return "", s.fail(err)
	}

	s.notifier.Success("Commit message generated")

	s.recordHistory(&cfg, msg, len(lines))

	return msg, nil
}

// fail routes a pipeline error to exactly one notification at the
// appropriate severity. "Nothing to do" conditions are warnings, everything
// else is an error.
func (s *Service) fail(err error) error {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code.IsWarning() {
		s.notifier.Warn(apperrors.FormatError(err))
	} else {
		s.notifier.Error(err)
	}
	return err
}

// recordHistory saves the generated message when history is enabled.
// Failures are logged, never fatal.
func (s *Service) recordHistory(cfg *config.Config, msg string, diffLines int) {
	if s.historyMgr == nil || !cfg.History.Enabled {
		return
	}

	entry := &history.Entry{
		Message:   msg,
		Model:     cfg.Provider.Model,
		DiffLines: diffLines,
	}
	if err := s.historyMgr.Save(entry); err != nil {
		apperrors.Warn("failed to save history: %v", err)
	}
}
