package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"systemprompthub/internal/client"
	"systemprompthub/internal/ui"
	"systemprompthub/pkg/logger"
)

var (
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the SystemPromptHub directory in the terminal",
	Long: `Browse connects to a running SystemPromptHub server, fetches the
prompt directory once, and lets you search, filter, and sort it locally.

Use --server to point at a non-default server URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			err := logger.InitLogger(&logger.Config{
				Level:    "DEBUG",
				Filename: "logs/browse.log",
			})
			if err != nil {
				return err
			}
			defer logger.Sync()
		} else {
			logger.Log = zap.NewNop()
		}

		svc := client.New(serverURL, debug)
		model := ui.NewModel(svc)

		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func main() {
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "server URL")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log HTTP traffic to logs/browse.log")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
