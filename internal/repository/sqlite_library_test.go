package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/db"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newTestPrompt(title string) domain.SavedPrompt {
	return domain.NewSavedPrompt(title, "", domain.TabReport, "# 프롬프트 본문", time.Now())
}

func TestLibraryRepo_LoadEmpty(t *testing.T) {
	repo := NewSQLiteLibraryRepo(newTestDB(t))

	prompts, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prompts)
	assert.NotNil(t, prompts)
}

func TestLibraryRepo_StoreLoadRoundTrip(t *testing.T) {
	repo := NewSQLiteLibraryRepo(newTestDB(t))
	ctx := context.Background()

	first := newTestPrompt("윤리학 레포트")
	second := newTestPrompt("자료구조 시험 대비")
	second.TabType = domain.TabExam
	second.Notes = "중간고사용"

	require.NoError(t, repo.Store(ctx, []domain.SavedPrompt{second, first}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, second, loaded[0])
	assert.Equal(t, first, loaded[1])
}

func TestLibraryRepo_StoreRewritesWholesale(t *testing.T) {
	repo := NewSQLiteLibraryRepo(newTestDB(t))
	ctx := context.Background()

	a := newTestPrompt("a")
	b := newTestPrompt("b")
	require.NoError(t, repo.Store(ctx, []domain.SavedPrompt{a, b}))
	require.NoError(t, repo.Store(ctx, []domain.SavedPrompt{b}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, b.ID, loaded[0].ID)
}

func TestLibraryRepo_StoreNilSlice(t *testing.T) {
	repo := NewSQLiteLibraryRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, nil))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLibraryRepo_CorruptSlot(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	_, err := conn.ExecContext(ctx,
		`INSERT INTO library_slots (key, value, updated_at) VALUES (?, ?, ?)`,
		"saved-prompts", "{not json", time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	repo := NewSQLiteLibraryRepo(conn)
	prompts, err := repo.Load(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptSlot))
	assert.Empty(t, prompts)
	assert.NotNil(t, prompts, "corrupt slot degrades to an empty list")
}
