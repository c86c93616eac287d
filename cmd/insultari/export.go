package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joanrios/insultari/internal/assets"
	"github.com/joanrios/insultari/internal/export"
	"github.com/joanrios/insultari/internal/insults"
)

func newExportCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "export",
		Short: "Export the collection as markdown or PDF",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:  "markdown",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, collection, err := newExporter()
			if err != nil {
				return err
			}

			path, err := exporter.WriteMarkdown(collection)
			if err != nil {
				return fmt.Errorf("exporter.WriteMarkdown > %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:  "pdf",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, collection, err := newExporter()
			if err != nil {
				return err
			}

			path, err := exporter.WritePDF(collection)
			if err != nil {
				return fmt.Errorf("exporter.WritePDF > %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	return &rootCommand
}

func newExporter() (*export.Exporter, *insults.Collection, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loadConfig() > %w", err)
	}

	collection, err := insults.NewJSONInsultRepository(cfg.Insults.File).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("repository.Load > %w", err)
	}

	tmpl, err := assets.ParseMarkdownTemplate(cfg.Templates.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("assets.ParseMarkdownTemplate > %w", err)
	}

	return export.NewExporter(tmpl, cfg.Outputs.Directory), collection, nil
}
