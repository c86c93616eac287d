package datasync

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joanrios/insultari/internal/insults"
	mock_insults "github.com/joanrios/insultari/internal/mocks/insults"
)

func TestImporter_Import(t *testing.T) {
	carallot := insults.Insult{
		Paraula:   "Carallot",
		Definicio: "Persona aturada, sense iniciativa",
		Tags:      []string{"despectiu"},
		Font:      insults.Font{Nom: "Viccionari", URL: "https://ca.m.wiktionary.org/wiki/carallot"},
	}
	bajoca := insults.Insult{
		Paraula:   "Bajoca",
		Definicio: "Persona beneita",
		Font:      insults.Font{Nom: "Viccionari", URL: "https://ca.m.wiktionary.org/wiki/bajoca"},
	}

	tests := []struct {
		name       string
		collection *insults.Collection
		opts       ImportOptions
		setup      func(repo *mock_insults.MockInsultRepository)
		want       *ImportResult
		wantOutput []string
	}{
		{
			name:       "new records are created",
			collection: &insults.Collection{Insults: []insults.Insult{carallot, bajoca}},
			setup: func(repo *mock_insults.MockInsultRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "Carallot").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), &carallot).Return(nil)
				repo.EXPECT().FindByWord(gomock.Any(), "Bajoca").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), &bajoca).Return(nil)
			},
			want:       &ImportResult{New: 2},
			wantOutput: []string{`[NEW]  "Carallot"`, `[NEW]  "Bajoca"`, "Imported 2 new, 0 updated, 0 skipped"},
		},
		{
			name:       "existing records are skipped by default",
			collection: &insults.Collection{Insults: []insults.Insult{carallot}},
			setup: func(repo *mock_insults.MockInsultRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "Carallot").Return(&carallot, nil)
			},
			want:       &ImportResult{Skipped: 1},
			wantOutput: []string{`[SKIP]  "Carallot"`},
		},
		{
			name:       "existing records are updated when requested",
			collection: &insults.Collection{Insults: []insults.Insult{carallot}},
			opts:       ImportOptions{UpdateExisting: true},
			setup: func(repo *mock_insults.MockInsultRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "Carallot").Return(&carallot, nil)
				repo.EXPECT().Upsert(gomock.Any(), &carallot).Return(nil)
			},
			want:       &ImportResult{Updated: 1},
			wantOutput: []string{`[UPDATE]  "Carallot"`},
		},
		{
			name:       "dry run writes nothing",
			collection: &insults.Collection{Insults: []insults.Insult{carallot, bajoca}},
			opts:       ImportOptions{DryRun: true, UpdateExisting: true},
			setup: func(repo *mock_insults.MockInsultRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "Carallot").Return(&carallot, nil)
				repo.EXPECT().FindByWord(gomock.Any(), "Bajoca").Return(nil, nil)
			},
			want:       &ImportResult{New: 1, Updated: 1},
			wantOutput: []string{`[UPDATE]  "Carallot"`, `[NEW]  "Bajoca"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_insults.NewMockInsultRepository(ctrl)
			tt.setup(repo)

			var output bytes.Buffer
			importer := NewImporter(repo, &output)

			got, err := importer.Import(context.Background(), tt.collection, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}

func TestImporter_Import_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_insults.NewMockInsultRepository(ctrl)
	repo.EXPECT().FindByWord(gomock.Any(), "Carallot").Return(nil, assert.AnError)

	var output bytes.Buffer
	importer := NewImporter(repo, &output)

	_, err := importer.Import(context.Background(), &insults.Collection{
		Insults: []insults.Insult{{Paraula: "Carallot"}},
	}, ImportOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "FindByWord(Carallot)")
}
