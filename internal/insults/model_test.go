package insults

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_FindByWord(t *testing.T) {
	collection := &Collection{
		Insults: []Insult{
			{Paraula: "Carallot", Definicio: "Persona aturada, sense iniciativa"},
			{Paraula: "Aixafaguitarres", Definicio: "Persona que fa anar malament un pla previst"},
		},
	}

	tests := []struct {
		name string
		word string
		want string
	}{
		{
			name: "exact match",
			word: "Carallot",
			want: "Carallot",
		},
		{
			name: "case-insensitive match",
			word: "CARALLOT",
			want: "Carallot",
		},
		{
			name: "lowercase match",
			word: "aixafaguitarres",
			want: "Aixafaguitarres",
		},
		{
			name: "no match",
			word: "bajoca",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collection.FindByWord(tt.word)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Paraula)
		})
	}
}

func TestCollection_Append(t *testing.T) {
	collection := &Collection{}
	collection.Append(Insult{Paraula: "Bajoca"})
	collection.Append(Insult{Paraula: "Carallot"})

	require.Equal(t, 2, collection.Len())
	assert.Equal(t, "Bajoca", collection.Insults[0].Paraula)
	assert.Equal(t, "Carallot", collection.Insults[1].Paraula)
}

func TestCollection_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	t.Run("empty collection returns nil", func(t *testing.T) {
		collection := &Collection{}
		assert.Nil(t, collection.Random(rnd))
	})

	t.Run("single record is always picked", func(t *testing.T) {
		collection := &Collection{Insults: []Insult{{Paraula: "Carallot"}}}
		for i := 0; i < 20; i++ {
			got := collection.Random(rnd)
			require.NotNil(t, got)
			assert.Equal(t, "Carallot", got.Paraula)
		}
	})

	t.Run("picked record belongs to the collection", func(t *testing.T) {
		collection := &Collection{Insults: []Insult{
			{Paraula: "Bajoca"},
			{Paraula: "Carallot"},
			{Paraula: "Tararot"},
		}}
		for i := 0; i < 20; i++ {
			got := collection.Random(rnd)
			require.NotNil(t, got)
			assert.NotNil(t, collection.FindByWord(got.Paraula))
		}
	})
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated tags keep their order",
			raw:  "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "no comma yields a single tag",
			raw:  "despectiu",
			want: []string{"despectiu"},
		},
		{
			name: "spaces are not trimmed",
			raw:  "despectiu, col·loquial",
			want: []string{"despectiu", " col·loquial"},
		},
		{
			name: "empty input yields one empty tag",
			raw:  "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.raw))
		})
	}
}
