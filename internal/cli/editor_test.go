package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joanrios/insultari/internal/insults"
	"github.com/joanrios/insultari/internal/testutil"
)

func TestEditorCLI_Run(t *testing.T) {
	tests := []struct {
		name       string
		strict     bool
		input      []string
		wantAdded  int
		wantWords  []string
		wantOutput []string
	}{
		{
			name:      "immediate sentinel leaves the record count unchanged",
			input:     []string{"", "STOP"},
			wantAdded: 0,
			wantWords: []string{"Aixafaguitarres"},
		},
		{
			name:      "FI is also a sentinel",
			input:     []string{"", "FI"},
			wantAdded: 0,
			wantWords: []string{"Aixafaguitarres"},
		},
		{
			name: "appends a record with ordered tags",
			input: []string{
				"",
				"Carallot",
				"Persona aturada, sense iniciativa",
				"a,b,c",
				"Viccionari",
				"https://ca.m.wiktionary.org/wiki/carallot",
				"STOP",
			},
			wantAdded:  1,
			wantWords:  []string{"Aixafaguitarres", "Carallot"},
			wantOutput: []string{`Afegit "Carallot".`},
		},
		{
			name: "duplicate word warns but is still appended",
			input: []string{
				"",
				"AIXAFAGUITARRES",
				"Una altra definicio",
				"despectiu",
				"Viccionari",
				"https://ca.m.wiktionary.org/wiki/aixafaguitarres",
				"STOP",
			},
			wantAdded:  1,
			wantWords:  []string{"Aixafaguitarres", "AIXAFAGUITARRES"},
			wantOutput: []string{"La paraula ja existeix"},
		},
		{
			name: "EOF at the word prompt ends the session and saves",
			input: []string{
				"",
				"Carallot",
				"Persona aturada, sense iniciativa",
				"despectiu",
				"Viccionari",
				"https://ca.m.wiktionary.org/wiki/carallot",
			},
			wantAdded:  1,
			wantWords:  []string{"Aixafaguitarres", "Carallot"},
			wantOutput: []string{`Afegit "Carallot".`},
		},
		{
			name: "EOF mid-record discards the partial record but saves the rest",
			input: []string{
				"",
				"Carallot",
				"Persona aturada, sense iniciativa",
				"despectiu",
				"Viccionari",
				"https://ca.m.wiktionary.org/wiki/carallot",
				"Tararot",
			},
			wantAdded: 1,
			wantWords: []string{"Aixafaguitarres", "Carallot"},
		},
		{
			name:   "strict mode skips the duplicate",
			strict: true,
			input: []string{
				"",
				"AIXAFAGUITARRES",
				"STOP",
			},
			wantAdded:  0,
			wantWords:  []string{"Aixafaguitarres"},
			wantOutput: []string{"La paraula ja existeix", "S'ha descartat la paraula duplicada."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteCollectionFile(t, t.TempDir(), &insults.Collection{
				Insults: []insults.Insult{
					{
						Paraula:   "Aixafaguitarres",
						Definicio: "Persona que fa anar malament un pla previst",
						Tags:      []string{"despectiu"},
						Font:      insults.Font{Nom: "Viccionari", URL: "https://ca.m.wiktionary.org/wiki/aixafaguitarres"},
					},
				},
			})

			var output bytes.Buffer
			editor := NewEditorCLI(strings.NewReader(strings.Join(tt.input, "\n")+"\n"), &output, path, tt.strict)
			require.NoError(t, editor.Run(context.Background()))
			assert.Equal(t, tt.wantAdded, editor.Added())

			collection, err := insults.NewJSONInsultRepository(path).Load()
			require.NoError(t, err)
			require.Equal(t, len(tt.wantWords), collection.Len())
			for i, word := range tt.wantWords {
				assert.Equal(t, word, collection.Insults[i].Paraula)
			}

			for _, want := range tt.wantOutput {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}

func TestEditorCLI_Run_PersistedTagsKeepOrder(t *testing.T) {
	path := testutil.WriteCollectionFile(t, t.TempDir(), &insults.Collection{})

	input := strings.Join([]string{
		"",
		"Carallot",
		"Persona aturada, sense iniciativa",
		"a,b,c",
		"Viccionari",
		"https://ca.m.wiktionary.org/wiki/carallot",
		"STOP",
	}, "\n") + "\n"

	var output bytes.Buffer
	editor := NewEditorCLI(strings.NewReader(input), &output, path, false)
	require.NoError(t, editor.Run(context.Background()))

	collection, err := insults.NewJSONInsultRepository(path).Load()
	require.NoError(t, err)
	require.Equal(t, 1, collection.Len())
	assert.Equal(t, []string{"a", "b", "c"}, collection.Insults[0].Tags)
}

func TestEditorCLI_Run_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	var output bytes.Buffer
	editor := NewEditorCLI(strings.NewReader("\nSTOP\n"), &output, missing, false)
	err := editor.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "repository.Load")

	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "a failed load must not create the file")
}

func TestEditorCLI_Run_ExplicitPathOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCollectionFile(t, dir, &insults.Collection{})

	var output bytes.Buffer
	editor := NewEditorCLI(strings.NewReader(path+"\nSTOP\n"), &output, "unused-default.json", false)
	require.NoError(t, editor.Run(context.Background()))
}

func TestEditorCLI_Run_NoPathAtAll(t *testing.T) {
	var output bytes.Buffer
	editor := NewEditorCLI(strings.NewReader("\n"), &output, "", false)
	err := editor.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "no file path given")
}
