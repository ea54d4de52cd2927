package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/db"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// savedPromptsKey is the fixed slot key under which the whole list lives.
const savedPromptsKey = "saved-prompts"

// SQLiteLibraryRepo implements LibraryRepo over a single kv slot.
type SQLiteLibraryRepo struct {
	db db.DBTX
}

// NewSQLiteLibraryRepo creates a new SQLiteLibraryRepo.
func NewSQLiteLibraryRepo(conn db.DBTX) *SQLiteLibraryRepo {
	return &SQLiteLibraryRepo{db: conn}
}

func (r *SQLiteLibraryRepo) Load(ctx context.Context) ([]domain.SavedPrompt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value FROM library_slots WHERE key = ?`, savedPromptsKey)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return []domain.SavedPrompt{}, nil
		}
		return nil, fmt.Errorf("loading library slot: %w", err)
	}

	var prompts []domain.SavedPrompt
	if err := json.Unmarshal([]byte(value), &prompts); err != nil {
		return []domain.SavedPrompt{}, fmt.Errorf("%w: %v", ErrCorruptSlot, err)
	}
	if prompts == nil {
		prompts = []domain.SavedPrompt{}
	}
	return prompts, nil
}

func (r *SQLiteLibraryRepo) Store(ctx context.Context, prompts []domain.SavedPrompt) error {
	if prompts == nil {
		prompts = []domain.SavedPrompt{}
	}
	value, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("encoding library slot: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO library_slots (key, value, updated_at) VALUES (?, ?, ?)`,
		savedPromptsKey, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing library slot: %w", err)
	}
	return nil
}
