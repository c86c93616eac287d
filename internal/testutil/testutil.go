// Package testutil provides shared test helpers for creating config files
// and collection fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joanrios/insultari/internal/insults"
)

// SetupTestConfig creates a minimal config file plus the insults document it
// points at. It returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	insultsPath := WriteCollectionFile(t, tmpDir, &insults.Collection{
		Insults: []insults.Insult{
			{
				Paraula:   "Aixafaguitarres",
				Definicio: "Persona que fa anar malament un pla previst",
				Tags:      []string{"despectiu"},
				Font:      insults.Font{Nom: "Viccionari", URL: "https://ca.m.wiktionary.org/wiki/aixafaguitarres"},
			},
		},
	})

	outputsDir := filepath.Join(tmpDir, "outputs")
	require.NoError(t, os.MkdirAll(outputsDir, 0755))

	configContent := fmt.Sprintf(`insults:
  file: %s
server:
  address: 127.0.0.1:0
outputs:
  directory: %s
`,
		insultsPath,
		outputsDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteCollectionFile persists a collection under dir as insults.json and
// returns the file path.
func WriteCollectionFile(t *testing.T, dir string, collection *insults.Collection) string {
	t.Helper()

	path := filepath.Join(dir, "insults.json")
	require.NoError(t, insults.NewJSONInsultRepository(path).Save(collection))
	return path
}
