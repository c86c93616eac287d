// Package datasync provides import orchestration between the JSON document
// and the website database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/joanrios/insultari/internal/insults"
)

// ImportResult tracks counts for an import run.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads the JSON collection and writes it to the database.
type Importer struct {
	repository insults.InsultRepository
	writer     io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repository insults.InsultRepository, writer io.Writer) *Importer {
	return &Importer{
		repository: repository,
		writer:     writer,
	}
}

// Import upserts every record of the collection into the database. Records
// already present are skipped unless UpdateExisting is set; with DryRun
// nothing is written, only counted.
func (imp *Importer) Import(ctx context.Context, collection *insults.Collection, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	for _, insult := range collection.Insults {
		existing, err := imp.repository.FindByWord(ctx, insult.Paraula)
		if err != nil {
			return nil, fmt.Errorf("FindByWord(%s) > %w", insult.Paraula, err)
		}

		if existing != nil {
			if !opts.UpdateExisting {
				fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", insult.Paraula)
				result.Skipped++
				continue
			}
			if !opts.DryRun {
				if err := imp.repository.Upsert(ctx, &insult); err != nil {
					return nil, fmt.Errorf("Upsert(%s) > %w", insult.Paraula, err)
				}
			}
			fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", insult.Paraula)
			result.Updated++
			continue
		}

		if !opts.DryRun {
			if err := imp.repository.Upsert(ctx, &insult); err != nil {
				return nil, fmt.Errorf("Upsert(%s) > %w", insult.Paraula, err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q\n", insult.Paraula)
		result.New++
	}

	fmt.Fprintf(imp.writer, "Imported %d new, %d updated, %d skipped\n", result.New, result.Updated, result.Skipped)
	return &result, nil
}
