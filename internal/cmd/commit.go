package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joacolabadie/aicommit/internal/pkg/git"
	"github.com/joacolabadie/aicommit/internal/pkg/sink"
	"github.com/joacolabadie/aicommit/internal/pkg/ui"
)

// CommitFlags holds the flags for the commit command.
type CommitFlags struct {
	Yes bool
}

// NewCommitCmd creates the commit command.
func NewCommitCmd() *cobra.Command {
	flags := &CommitFlags{}

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a message and commit with it",
		Long: `Generate a commit message from your staged changes, show it, and commit
after confirmation.

Examples:
  aicommit commit         # Generate, confirm, commit
  aicommit commit --yes   # Commit without confirmation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip confirmation and commit immediately")

	return cmd
}

// runCommit executes the commit command logic.
func runCommit(cmd *cobra.Command, flags *CommitFlags) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svc, notifier, err := buildService(cmd)
	if err != nil {
		return err
	}

	buffer := sink.NewBuffer()
	msg, err := svc.Generate(ctx, buffer, overridesFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(buffer.String())
	fmt.Println()

	if !flags.Yes {
		confirmed, err := ui.Confirm("Commit with this message?")
		if err != nil {
			return err
		}
		if !confirmed {
			notifier.Info("Commit cancelled")
			return nil
		}
	}

	if err := git.NewClient().Commit(ctx, msg); err != nil {
		notifier.Error(err)
		return err
	}

	notifier.Success("Changes committed")
	return nil
}
