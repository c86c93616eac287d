// Package insults holds the dictionary domain model and its persistence.
package insults

import (
	"math/rand"
	"strings"
)

// Font is the attribution of an insult to the place it was found.
type Font struct {
	Nom string `json:"nom" db:"font_nom"`
	URL string `json:"url" db:"font_url"`
}

// Insult is one dictionary entry. Paraula is the headword and is unique
// within a collection under case-insensitive comparison.
type Insult struct {
	Paraula   string   `json:"paraula" db:"paraula"`
	Definicio string   `json:"definicio" db:"definicio"`
	Tags      []string `json:"tags"`
	Font      Font     `json:"font"`
}

// Collection is the full ordered dictionary as persisted in insults.json.
type Collection struct {
	Insults []Insult `json:"insults"`
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.Insults)
}

// FindByWord returns the first record whose headword matches word
// case-insensitively, or nil when there is none.
func (c *Collection) FindByWord(word string) *Insult {
	for i := range c.Insults {
		if strings.EqualFold(c.Insults[i].Paraula, word) {
			return &c.Insults[i]
		}
	}
	return nil
}

// Append adds a record at the end of the collection, preserving order.
func (c *Collection) Append(insult Insult) {
	c.Insults = append(c.Insults, insult)
}

// Random picks one record uniformly. It returns nil on an empty collection.
func (c *Collection) Random(rnd *rand.Rand) *Insult {
	if len(c.Insults) == 0 {
		return nil
	}
	return &c.Insults[rnd.Intn(len(c.Insults))]
}

// SplitTags splits a raw comma-separated tag input on literal commas.
// No trimming and no escaping: "a, b" becomes ["a", " b"].
func SplitTags(raw string) []string {
	return strings.Split(raw, ",")
}
