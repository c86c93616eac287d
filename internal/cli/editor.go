// Package cli implements the interactive commands: the record editor that
// appends entries to the collection and the random-insult viewer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/joanrios/insultari/internal/insults"
)

// errEnd signals that the user typed the sentinel and the session is over.
var errEnd = errors.New("end of session")

// sentinels are the reserved inputs that end the entry loop.
var sentinels = []string{"STOP", "FI"}

func isSentinel(word string) bool {
	for _, s := range sentinels {
		if word == s {
			return true
		}
	}
	return false
}

// EditorCLI manages the interactive session that appends records to the
// collection and rewrites the document on exit.
type EditorCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	warn         *color.Color

	defaultPath string
	strict      bool
	added       int
}

// NewEditorCLI creates the record editor. defaultPath is used when the user
// accepts the file prompt with an empty input. With strict enabled a
// duplicate word is skipped instead of appended.
func NewEditorCLI(input io.Reader, output io.Writer, defaultPath string, strict bool) *EditorCLI {
	return &EditorCLI{
		stdinReader:  bufio.NewReader(input),
		stdoutWriter: output,
		bold:         color.New(color.Bold),
		warn:         color.New(color.FgYellow),
		defaultPath:  defaultPath,
		strict:       strict,
	}
}

// NewStdioEditorCLI creates the record editor over os.Stdin and os.Stdout.
func NewStdioEditorCLI(defaultPath string, strict bool) *EditorCLI {
	return NewEditorCLI(os.Stdin, os.Stdout, defaultPath, strict)
}

// Run drives the whole session: file prompt, load, entry loop, save. The
// document is only rewritten on a normal loop exit; an interrupt leaves the
// file untouched.
func (cli *EditorCLI) Run(ctx context.Context) error {
	path, err := cli.promptPath()
	if err != nil {
		return fmt.Errorf("cli.promptPath > %w", err)
	}

	repository := insults.NewJSONInsultRepository(path)
	collection, err := repository.Load()
	if err != nil {
		return fmt.Errorf("repository.Load > %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.session(collection); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Sessió interrompuda, no es desa res.")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session > %w", err)
		}
	}

	if err := repository.Save(collection); err != nil {
		return fmt.Errorf("repository.Save > %w", err)
	}
	fmt.Fprintf(cli.stdoutWriter, "Afegits %d insults a %s. Fes un commit per a realitzar els canvis.\n", cli.added, path)
	return nil
}

// Added returns how many records this session appended.
func (cli *EditorCLI) Added() int {
	return cli.added
}

func (cli *EditorCLI) promptPath() (string, error) {
	if cli.defaultPath != "" {
		fmt.Fprintf(cli.stdoutWriter, "Introdueix el camí complet al fitxer [%s]: ", cli.defaultPath)
	} else {
		fmt.Fprint(cli.stdoutWriter, "Introdueix el camí complet al fitxer: ")
	}

	input, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading file path: %w", err)
	}
	path := strings.TrimSpace(input)
	if path == "" {
		if cli.defaultPath == "" {
			return "", errors.New("no file path given")
		}
		path = cli.defaultPath
	}
	return path, nil
}

// endOnEOF maps EOF to errEnd so stdin running out ends the session like the
// sentinel does. A half-entered record is discarded; completed records are
// saved by Run.
func endOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return errEnd
	}
	return err
}

// session collects a single record. It returns errEnd on the sentinel.
func (cli *EditorCLI) session(collection *insults.Collection) error {
	word, err := cli.prompt("Introdueix la paraula: ")
	if err != nil {
		return endOnEOF(err)
	}
	if isSentinel(word) {
		return errEnd
	}

	if existing := collection.FindByWord(word); existing != nil {
		if _, err := cli.warn.Fprintf(cli.stdoutWriter, "La paraula ja existeix: %s\n", existing.Paraula); err != nil {
			return fmt.Errorf("warn.Fprintf > %w", err)
		}
		if cli.strict {
			fmt.Fprintln(cli.stdoutWriter, "S'ha descartat la paraula duplicada.")
			return nil
		}
	}

	definicio, err := cli.prompt("Introdueix la definicio: ")
	if err != nil {
		return endOnEOF(err)
	}
	rawTags, err := cli.prompt("Introdueix els tags separats per comes: ")
	if err != nil {
		return endOnEOF(err)
	}
	nom, err := cli.prompt("Introdueix el nom de la font: ")
	if err != nil {
		return endOnEOF(err)
	}
	url, err := cli.prompt("Introdueix la url de la font: ")
	if err != nil {
		return endOnEOF(err)
	}

	collection.Append(insults.Insult{
		Paraula:   word,
		Definicio: definicio,
		Tags:      insults.SplitTags(rawTags),
		Font: insults.Font{
			Nom: nom,
			URL: url,
		},
	})
	cli.added++

	if _, err := cli.bold.Fprintf(cli.stdoutWriter, "Afegit %q.\n", word); err != nil {
		return fmt.Errorf("bold.Fprintf > %w", err)
	}
	return nil
}

func (cli *EditorCLI) prompt(label string) (string, error) {
	fmt.Fprint(cli.stdoutWriter, label)

	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}
