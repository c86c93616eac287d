// Package export renders the whole collection to markdown and PDF.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/mandolyte/mdtopdf"

	"github.com/joanrios/insultari/internal/insults"
)

// Exporter writes dictionary exports under an output directory.
type Exporter struct {
	template  *template.Template
	outputDir string
}

// NewExporter creates an exporter rendering through tmpl into outputDir.
func NewExporter(tmpl *template.Template, outputDir string) *Exporter {
	return &Exporter{
		template:  tmpl,
		outputDir: outputDir,
	}
}

// initialGroup is one letter section of the markdown export.
type initialGroup struct {
	Initial string
	Insults []insults.Insult
}

func initialOf(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func groupByInitial(records []insults.Insult) []initialGroup {
	var groups []initialGroup
	for _, insult := range records {
		initial := initialOf(insult.Paraula)
		if len(groups) == 0 || groups[len(groups)-1].Initial != initial {
			groups = append(groups, initialGroup{Initial: initial})
		}
		last := len(groups) - 1
		groups[last].Insults = append(groups[last].Insults, insult)
	}
	return groups
}

// WriteMarkdown renders the collection, sorted by headword and grouped by
// initial, to insultari.md and returns the file path.
func (e *Exporter) WriteMarkdown(collection *insults.Collection) (string, error) {
	sorted := make([]insults.Insult, len(collection.Insults))
	copy(sorted, collection.Insults)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Paraula) < strings.ToLower(sorted[j].Paraula)
	})

	var buf bytes.Buffer
	if err := e.template.Execute(&buf, map[string]any{
		"Count":  len(sorted),
		"Groups": groupByInitial(sorted),
	}); err != nil {
		return "", fmt.Errorf("template.Execute > %w", err)
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", e.outputDir, err)
	}

	markdownPath := filepath.Join(e.outputDir, "insultari.md")
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	return markdownPath, nil
}

// WritePDF renders the markdown export and converts it to insultari.pdf in
// the same directory.
func (e *Exporter) WritePDF(collection *insults.Collection) (string, error) {
	markdownPath, err := e.WriteMarkdown(collection)
	if err != nil {
		return "", fmt.Errorf("e.WriteMarkdown > %w", err)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
