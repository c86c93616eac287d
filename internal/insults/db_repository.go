package insults

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=db_repository.go -destination=../mocks/insults/mock_repository.go -package=mock_insults InsultRepository

// InsultRepository defines operations for managing insult records in a
// database backing the community website.
type InsultRepository interface {
	FindAll(ctx context.Context) ([]Insult, error)
	FindByWord(ctx context.Context, word string) (*Insult, error)
	Upsert(ctx context.Context, insult *Insult) error
}

// insultRow is the database shape of an Insult. Tags are stored as a JSON
// array in a single column.
type insultRow struct {
	Paraula   string          `db:"paraula"`
	Definicio string          `db:"definicio"`
	Tags      json.RawMessage `db:"tags"`
	FontNom   string          `db:"font_nom"`
	FontURL   string          `db:"font_url"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (row insultRow) toInsult() (Insult, error) {
	insult := Insult{
		Paraula:   row.Paraula,
		Definicio: row.Definicio,
		Font: Font{
			Nom: row.FontNom,
			URL: row.FontURL,
		},
	}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &insult.Tags); err != nil {
			return insult, fmt.Errorf("json.Unmarshal(tags of %s) > %w", row.Paraula, err)
		}
	}
	return insult, nil
}

// DBInsultRepository implements InsultRepository using MySQL.
type DBInsultRepository struct {
	db *sqlx.DB
}

var _ InsultRepository = (*DBInsultRepository)(nil)

// NewDBInsultRepository creates a new DBInsultRepository.
func NewDBInsultRepository(db *sqlx.DB) *DBInsultRepository {
	return &DBInsultRepository{db: db}
}

// FindAll returns all insult records ordered by headword.
func (r *DBInsultRepository) FindAll(ctx context.Context) ([]Insult, error) {
	var rows []insultRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM insults ORDER BY paraula"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(insults) > %w", err)
	}

	results := make([]Insult, 0, len(rows))
	for _, row := range rows {
		insult, err := row.toInsult()
		if err != nil {
			return nil, fmt.Errorf("row.toInsult > %w", err)
		}
		results = append(results, insult)
	}
	return results, nil
}

// FindByWord returns an insult by headword, or nil if not found. The lookup
// relies on the column's case-insensitive collation.
func (r *DBInsultRepository) FindByWord(ctx context.Context, word string) (*Insult, error) {
	var row insultRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM insults WHERE paraula = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(insult) > %w", err)
	}

	insult, err := row.toInsult()
	if err != nil {
		return nil, fmt.Errorf("row.toInsult > %w", err)
	}
	return &insult, nil
}

// Upsert inserts or updates an insult record.
func (r *DBInsultRepository) Upsert(ctx context.Context, insult *Insult) error {
	tags, err := json.Marshal(insult.Tags)
	if err != nil {
		return fmt.Errorf("json.Marshal(tags of %s) > %w", insult.Paraula, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO insults (paraula, definicio, tags, font_nom, font_url)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE definicio = VALUES(definicio), tags = VALUES(tags), font_nom = VALUES(font_nom), font_url = VALUES(font_url)`,
		insult.Paraula, insult.Definicio, tags, insult.Font.Nom, insult.Font.URL)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert insult) > %w", err)
	}
	return nil
}
