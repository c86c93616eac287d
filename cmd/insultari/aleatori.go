package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joanrios/insultari/internal/cli"
	"github.com/joanrios/insultari/internal/widget"
)

func newAleatoriCommand() *cobra.Command {
	var baseURL string

	command := &cobra.Command{
		Use:   "aleatori",
		Short: "Show a random insult fetched from the published collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			url := baseURL
			if url == "" {
				url = cfg.Widget.BaseURL
			}

			fetcher := widget.NewHTTPFetcher(url, cfg.Widget.RetryAttempts)
			viewer := cli.NewStdioRandomCLI(fetcher)
			return viewer.Run(cmd.Context())
		},
	}

	command.Flags().StringVar(&baseURL, "url", "", "base URL the collection is published under")

	return command
}
