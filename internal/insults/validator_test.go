package insults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	valid := Insult{
		Paraula:   "Aixafaguitarres",
		Definicio: "Persona que fa anar malament un pla previst",
		Tags:      []string{"despectiu"},
		Font:      Font{Nom: "Viccionari", URL: "https://ca.m.wiktionary.org/wiki/aixafaguitarres"},
	}

	tests := []struct {
		name           string
		insults        []Insult
		wantErrors     bool
		wantDuplicates int
		wantRecords    int
		wantWarnings   int
	}{
		{
			name:    "valid collection",
			insults: []Insult{valid},
		},
		{
			name: "case-insensitive duplicate",
			insults: []Insult{
				valid,
				{Paraula: "AIXAFAGUITARRES", Definicio: "Una altra definicio", Font: valid.Font},
			},
			wantErrors:     true,
			wantDuplicates: 1,
		},
		{
			name: "missing headword and definition",
			insults: []Insult{
				{Paraula: "", Definicio: "", Font: valid.Font},
			},
			wantErrors:  true,
			wantRecords: 2,
		},
		{
			name: "relative source url",
			insults: []Insult{
				{Paraula: "Bajoca", Definicio: "Persona beneita", Font: Font{Nom: "Viccionari", URL: "wiki/bajoca"}},
			},
			wantErrors:  true,
			wantRecords: 1,
		},
		{
			name: "missing attribution is a warning",
			insults: []Insult{
				{Paraula: "Bajoca", Definicio: "Persona beneita"},
			},
			wantWarnings: 1,
		},
		{
			name: "empty tag is a warning",
			insults: []Insult{
				{Paraula: "Bajoca", Definicio: "Persona beneita", Tags: []string{"suau", ""}, Font: valid.Font},
			},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator(&Collection{Insults: tt.insults}).Validate()
			require.NotNil(t, result)

			assert.Equal(t, tt.wantErrors, result.HasErrors())
			assert.Len(t, result.DuplicateErrors, tt.wantDuplicates)
			assert.Len(t, result.RecordErrors, tt.wantRecords)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "record without a headword", ValidationError{Message: "record without a headword"}.Error())
	assert.Equal(t, "Bajoca: empty tag", ValidationError{Word: "Bajoca", Message: "empty tag"}.Error())
}
