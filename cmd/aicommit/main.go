// Package main is the entry point for the aicommit CLI.
// aicommit generates a single-line Conventional Commits message from the
// staged git diff using a chat-completion endpoint.
package main

import (
	"fmt"
	"os"

	"github.com/joacolabadie/aicommit/internal/cmd"
	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Pipeline errors were already surfaced through the notifier;
		// anything else still needs printing here.
		if apperrors.GetAppError(err) == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(apperrors.GetExitCode(err))
	}
}
