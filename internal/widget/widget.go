package widget

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/joanrios/insultari/internal/insults"
)

// Slots binds the presentation targets a record is written into. A nil slot
// means the page does not have that target and it is skipped.
type Slots struct {
	Word       func(string)
	Definition func(string)
	SourceName func(string)
	SourceURL  func(string)
}

// Widget holds the one-shot fetched snapshot of the collection and picks
// random records from it. Before Load succeeds the widget is in the
// not-loaded state and Rerandomize does nothing.
type Widget struct {
	fetcher  Fetcher
	rnd      *rand.Rand
	snapshot *insults.Collection
}

// New creates a widget in the not-loaded state.
func New(fetcher Fetcher) *Widget {
	return &Widget{
		fetcher: fetcher,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Loaded reports whether the snapshot has been fetched.
func (w *Widget) Loaded() bool {
	return w.snapshot != nil
}

// Len returns the number of records in the snapshot, 0 before Load.
func (w *Widget) Len() int {
	if w.snapshot == nil {
		return 0
	}
	return w.snapshot.Len()
}

// Load fetches the collection once. Further Rerandomize calls reuse the
// snapshot and never refetch.
func (w *Widget) Load(ctx context.Context) error {
	collection, err := w.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetcher.Fetch > %w", err)
	}
	w.snapshot = collection
	return nil
}

// Rerandomize picks a new record uniformly from the loaded snapshot. It
// reports false while the snapshot is not loaded or empty.
func (w *Widget) Rerandomize() (*insults.Insult, bool) {
	if w.snapshot == nil {
		return nil, false
	}
	insult := w.snapshot.Random(w.rnd)
	if insult == nil {
		return nil, false
	}
	return insult, true
}

// Populate writes a record into the bound slots, skipping any slot the page
// does not provide.
func (s Slots) Populate(insult *insults.Insult) {
	if insult == nil {
		return
	}
	if s.Word != nil {
		s.Word(insult.Paraula)
	}
	if s.Definition != nil {
		s.Definition(insult.Definicio)
	}
	if s.SourceName != nil {
		s.SourceName(insult.Font.Nom)
	}
	if s.SourceURL != nil {
		s.SourceURL(insult.Font.URL)
	}
}
