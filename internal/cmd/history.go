package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joacolabadie/aicommit/internal/pkg/config"
	"github.com/joacolabadie/aicommit/internal/pkg/history"
)

const (
	// DefaultHistoryLimit is the default number of history entries to display.
	DefaultHistoryLimit = 20
)

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "View generated message history",
		Long: `View the history of generated commit messages.

By default, displays the most recent 20 entries.

Examples:
  aicommit history           # Show last 20 entries
  aicommit history --limit 5 # Show last 5 entries
  aicommit history clear     # Clear all history`,
		RunE: runHistoryList,
	}

	historyCmd.Flags().IntP("limit", "l", DefaultHistoryLimit, "Number of entries to display")

	historyCmd.AddCommand(newHistoryClearCmd())

	return historyCmd
}

// runHistoryList displays the history entries.
func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	mgr, cfg, err := loadHistoryManager(cmd)
	if err != nil {
		return err
	}
	if mgr == nil {
		fmt.Println("History is disabled. Enable it with 'aicommit config set history.enabled true'")
		return nil
	}

	entries, err := mgr.List(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	fmt.Printf("History (%s):\n\n", cfg.History.FilePath)
	for _, entry := range entries {
		subject := strings.SplitN(entry.Message, "\n", 2)[0]
		fmt.Printf("%s  %s  %s\n", entry.Timestamp.Format("2006-01-02 15:04"), entry.Model, subject)
	}

	return nil
}

// newHistoryClearCmd creates the 'history clear' subcommand.
func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := loadHistoryManager(cmd)
			if err != nil {
				return err
			}
			if mgr == nil {
				return nil
			}

			if err := mgr.Clear(); err != nil {
				return err
			}

			fmt.Println("History cleared.")
			return nil
		},
	}
}

// loadHistoryManager builds the history manager from configuration.
// Returns a nil manager when history is disabled.
func loadHistoryManager(cmd *cobra.Command) (history.Manager, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	cfg, err := mgr.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.History.Enabled || cfg.History.FilePath == "" {
		return nil, cfg, nil
	}

	return history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries), cfg, nil
}
