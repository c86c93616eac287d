package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/joanrios/insultari/internal/insults"
	"github.com/joanrios/insultari/internal/widget"
)

// RandomCLI shows random insults from a collection fetched once over HTTP.
// Re-rolls reuse the fetched snapshot.
type RandomCLI struct {
	widget       *widget.Widget
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewRandomCLI creates the random viewer on top of a fetcher.
func NewRandomCLI(fetcher widget.Fetcher, input io.Reader, output io.Writer) *RandomCLI {
	return &RandomCLI{
		widget:       widget.New(fetcher),
		stdinReader:  bufio.NewReader(input),
		stdoutWriter: output,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// NewStdioRandomCLI creates the random viewer over os.Stdin and os.Stdout.
func NewStdioRandomCLI(fetcher widget.Fetcher) *RandomCLI {
	return NewRandomCLI(fetcher, os.Stdin, os.Stdout)
}

// Run fetches the collection once, shows a random record, and re-rolls on
// Enter until the user quits.
func (cli *RandomCLI) Run(ctx context.Context) error {
	if err := cli.widget.Load(ctx); err != nil {
		return fmt.Errorf("widget.Load > %w", err)
	}

	insult, ok := cli.widget.Rerandomize()
	if !ok {
		fmt.Fprintln(cli.stdoutWriter, "El diccionari és buit.")
		return nil
	}
	cli.show(insult)

	for {
		fmt.Fprint(cli.stdoutWriter, "Prem Enter per un altre (q per eixir): ")
		input, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading input: %w", err)
		}

		answer := strings.TrimSpace(input)
		if answer == "q" || answer == "Q" || isSentinel(answer) {
			return nil
		}

		if insult, ok := cli.widget.Rerandomize(); ok {
			cli.show(insult)
		}
	}
}

func (cli *RandomCLI) show(insult *insults.Insult) {
	slots := widget.Slots{
		Word: func(word string) {
			_, _ = cli.bold.Fprintln(cli.stdoutWriter, word)
		},
		Definition: func(definition string) {
			fmt.Fprintln(cli.stdoutWriter, definition)
		},
		SourceName: func(name string) {
			if name != "" {
				_, _ = cli.italic.Fprintf(cli.stdoutWriter, "Font: %s\n", name)
			}
		},
		SourceURL: func(url string) {
			if url != "" {
				fmt.Fprintln(cli.stdoutWriter, url)
			}
		},
	}
	slots.Populate(insult)
	fmt.Fprintln(cli.stdoutWriter)
}
