// Package assets provides the embedded page and export templates, with an
// optional filesystem override directory.
package assets

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/index.html.go.tmpl
var fallbackIndexTemplate string

//go:embed templates/aleatori.html.go.tmpl
var fallbackAleatoriTemplate string

//go:embed templates/error.html.go.tmpl
var fallbackErrorTemplate string

//go:embed templates/insultari.md.go.tmpl
var fallbackMarkdownTemplate string

// PageTemplates holds the parsed HTML templates the server renders.
type PageTemplates struct {
	Index    *htmltemplate.Template
	Aleatori *htmltemplate.Template
	Error    *htmltemplate.Template
}

// ParsePageTemplates parses the server page templates. A non-empty
// overrideDir takes precedence over the embedded copies, file by file.
func ParsePageTemplates(overrideDir string) (*PageTemplates, error) {
	index, err := parsePageTemplate(overrideDir, "index.html.go.tmpl", fallbackIndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsePageTemplate(index) > %w", err)
	}
	aleatori, err := parsePageTemplate(overrideDir, "aleatori.html.go.tmpl", fallbackAleatoriTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsePageTemplate(aleatori) > %w", err)
	}
	errorPage, err := parsePageTemplate(overrideDir, "error.html.go.tmpl", fallbackErrorTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsePageTemplate(error) > %w", err)
	}

	return &PageTemplates{
		Index:    index,
		Aleatori: aleatori,
		Error:    errorPage,
	}, nil
}

func parsePageTemplate(overrideDir, fileName, fallbackTemplate string) (*htmltemplate.Template, error) {
	if overrideDir != "" {
		templatePath := filepath.Join(overrideDir, fileName)
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := htmltemplate.ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template override",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := htmltemplate.New(fileName).Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// ParseMarkdownTemplate parses the markdown export template, preferring an
// override under overrideDir when one exists.
func ParseMarkdownTemplate(overrideDir string) (*texttemplate.Template, error) {
	funcMap := texttemplate.FuncMap{
		"join": strings.Join,
	}

	fileName := "insultari.md.go.tmpl"
	if overrideDir != "" {
		templatePath := filepath.Join(overrideDir, fileName)
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := texttemplate.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template override",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := texttemplate.New(fileName).
		Funcs(funcMap).
		Parse(fallbackMarkdownTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
