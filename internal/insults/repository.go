package insults

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// jsonIndent matches the formatting the dictionary has always been
// committed with.
const jsonIndent = "    "

// JSONInsultRepository persists a Collection as a single JSON document.
type JSONInsultRepository struct {
	path string
}

// NewJSONInsultRepository creates a repository bound to a file path.
func NewJSONInsultRepository(path string) *JSONInsultRepository {
	return &JSONInsultRepository{path: path}
}

// Path returns the file path this repository reads and writes.
func (r *JSONInsultRepository) Path() string {
	return r.path
}

// Load reads and parses the whole document.
func (r *JSONInsultRepository) Load() (*Collection, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var collection Collection
	if err := json.Unmarshal(contents, &collection); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", r.path, err)
	}
	return &collection, nil
}

// Save rewrites the whole document. The collection is serialized to a
// temporary file in the same directory and renamed into place, so the
// original document survives an interrupted write.
func (r *JSONInsultRepository) Save(collection *Collection) error {
	if collection.Insults == nil {
		// An empty collection is still an array on the wire.
		collection = &Collection{Insults: []Insult{}}
	}
	contents, err := json.MarshalIndent(collection, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	contents = append(contents, '\n')

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("tmp.Write > %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("tmp.Close > %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Rename(%s, %s) > %w", tmpPath, r.path, err)
	}
	return nil
}
