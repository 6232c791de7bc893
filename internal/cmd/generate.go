package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joacolabadie/aicommit/internal/app"
	"github.com/joacolabadie/aicommit/internal/pkg/config"
	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
	"github.com/joacolabadie/aicommit/internal/pkg/git"
	"github.com/joacolabadie/aicommit/internal/pkg/history"
	"github.com/joacolabadie/aicommit/internal/pkg/llm"
	"github.com/joacolabadie/aicommit/internal/pkg/sink"
	"github.com/joacolabadie/aicommit/internal/pkg/ui"
)

// commandTimeout bounds a whole invocation, dominated by the 60s network call.
const commandTimeout = 2 * time.Minute

// GenerateFlags holds the flags for the generate command.
type GenerateFlags struct {
	OutputFile string
	EditMsg    bool
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a commit message from staged changes",
		Long: `Generate a single-line Conventional Commits message from your staged
git diff and print it to stdout.

Examples:
  aicommit generate              # Print message to stdout
  aicommit generate -o msg.txt   # Write message to a file
  aicommit generate --editmsg    # Replace .git/COMMIT_EDITMSG`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write generated message to file")
	cmd.Flags().BoolVar(&flags.EditMsg, "editmsg", false, "Write generated message to .git/COMMIT_EDITMSG")

	return cmd
}

// runGenerate executes the generate command logic.
func runGenerate(cmd *cobra.Command, flags *GenerateFlags) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svc, notifier, err := buildService(cmd)
	if err != nil {
		return err
	}

	gitClient := git.NewClient()

	var surface sink.Surface
	switch {
	case flags.EditMsg:
		path, err := gitClient.CommitMsgPath(ctx)
		if err != nil {
			notifier.Error(err)
			return err
		}
		surface = sink.NewFile(path)
	case flags.OutputFile != "":
		surface = sink.NewFile(flags.OutputFile)
	default:
		surface = sink.NewWriter(os.Stdout)
	}

	_, err = svc.Generate(ctx, surface, overridesFromFlags(cmd))
	return err
}

// buildService wires the pipeline dependencies from the loaded configuration.
func buildService(cmd *cobra.Command) (*app.Service, ui.Notifier, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	apperrors.SetVerbose(verbose)

	configPath, _ := cmd.Flags().GetString("config")
	mgr, err := config.NewManager(configPath)
	if err != nil {
		fallback := ui.NewTerminal(true)
		wrapped := apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to create config manager")
		fallback.Error(wrapped)
		return nil, nil, wrapped
	}

	cfg, err := mgr.Load()
	if err != nil {
		fallback := ui.NewTerminal(true)
		wrapped := apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to load config")
		fallback.Error(wrapped)
		return nil, nil, wrapped
	}

	notifier := ui.NewTerminal(cfg.UI.ColorEnabled)

	var historyMgr history.Manager
	if cfg.History.Enabled && cfg.History.FilePath != "" {
		historyMgr = history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries)
	}

	svc := app.NewService(git.NewClient(), llm.NewClient(), notifier, historyMgr, cfg)
	return svc, notifier, nil
}
