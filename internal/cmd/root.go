// Package cmd contains the CLI command definitions for aicommit.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joacolabadie/aicommit/internal/pkg/config"
)

// NewRootCmd creates the root command for the aicommit CLI.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aicommit",
		Short: "AI-powered git commit message generator",
		Long: `aicommit generates a single-line Conventional Commits message from your
staged changes.

It sends the staged git diff to a chat-completion endpoint and delivers the
returned message to stdout, a file, or the repository's COMMIT_EDITMSG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default action is the generate command
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			editmsg, _ := cmd.Flags().GetBool("editmsg")
			return runGenerate(cmd, &GenerateFlags{
				OutputFile: output,
				EditMsg:    editmsg,
			})
		},
	}

	rootCmd.SetVersionTemplate(`aicommit {{.Version}}
Commit: ` + commitHash + `
Built:  ` + date + "\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: ~/.aicommit/config.yaml)")
	rootCmd.PersistentFlags().String("model", "", "Model to use")
	rootCmd.PersistentFlags().String("endpoint", "", "Chat-completion endpoint URL")
	rootCmd.PersistentFlags().Int("max-tokens", 0, "Maximum completion tokens (0 = endpoint default)")
	rootCmd.PersistentFlags().Int("max-diff-bytes", 0, "Reject staged diffs larger than this (0 = no limit)")

	// Generate flags mirrored onto the root for the default action
	rootCmd.Flags().StringP("output", "o", "", "Write generated message to file")
	rootCmd.Flags().Bool("editmsg", false, "Write generated message to .git/COMMIT_EDITMSG")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewCommitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}

// overridesFromFlags collects per-invocation configuration overrides from the
// global flags. Flags take priority over env and file configuration.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	model, _ := cmd.Flags().GetString("model")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	maxDiffBytes, _ := cmd.Flags().GetInt("max-diff-bytes")

	return config.Overrides{
		Model:               model,
		Endpoint:            endpoint,
		MaxCompletionTokens: maxTokens,
		MaxDiffBytes:        maxDiffBytes,
	}
}
