package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joanrios/insultari/internal/cli"
)

func newAfegirCommand() *cobra.Command {
	var file string
	var strict bool

	command := &cobra.Command{
		Use:   "afegir",
		Short: "Interactively append insults to the collection",
		Long: `Interactively append insults to the collection.

The file path is asked first; an empty answer uses the configured path.
Type STOP or FI as the word to finish and save. Duplicate words are warned
about but still appended unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultPath := file
			if defaultPath == "" {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("loadConfig() > %w", err)
				}
				defaultPath = cfg.Insults.File
			}

			editor := cli.NewStdioEditorCLI(defaultPath, strict)
			return editor.Run(cmd.Context())
		},
	}

	command.Flags().StringVar(&file, "file", "", "insults document path offered as the default")
	command.Flags().BoolVar(&strict, "strict", false, "Skip duplicate words instead of appending them")

	return command
}
