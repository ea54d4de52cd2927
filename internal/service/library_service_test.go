package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/repository"
)

// memLibraryRepo is an in-memory LibraryRepo with injectable failures.
type memLibraryRepo struct {
	prompts  []domain.SavedPrompt
	loadErr  error
	storeErr error
	stores   int
}

func (m *memLibraryRepo) Load(ctx context.Context) ([]domain.SavedPrompt, error) {
	if m.loadErr != nil {
		return []domain.SavedPrompt{}, m.loadErr
	}
	out := make([]domain.SavedPrompt, len(m.prompts))
	copy(out, m.prompts)
	return out, nil
}

func (m *memLibraryRepo) Store(ctx context.Context, prompts []domain.SavedPrompt) error {
	m.stores++
	if m.storeErr != nil {
		return m.storeErr
	}
	m.prompts = make([]domain.SavedPrompt, len(prompts))
	copy(m.prompts, prompts)
	return nil
}

func TestLibraryService_SaveListDeleteLifecycle(t *testing.T) {
	repo := &memLibraryRepo{}
	svc := NewLibraryService(repo)
	ctx := context.Background()

	first, err := svc.Save(ctx, "윤리학 레포트", "", domain.TabReport, "프롬프트 1")
	require.NoError(t, err)
	second, err := svc.Save(ctx, "시험 대비", "중간고사", domain.TabExam, "프롬프트 2")
	require.NoError(t, err)

	// Newest first.
	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "윤리학 레포트", got.Title)

	require.NoError(t, svc.Delete(ctx, first.ID))
	list = svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	// Mirrored to the repository on every mutation.
	require.Len(t, repo.prompts, 1)
	assert.Equal(t, second.ID, repo.prompts[0].ID)
}

func TestLibraryService_SaveRequiresTitle(t *testing.T) {
	svc := NewLibraryService(&memLibraryRepo{})

	_, err := svc.Save(context.Background(), "   ", "", domain.TabReport, "본문")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Empty(t, svc.List(context.Background()))
}

func TestLibraryService_SaveRequiresPrompt(t *testing.T) {
	svc := NewLibraryService(&memLibraryRepo{})

	_, err := svc.Save(context.Background(), "제목", "", domain.TabReport, "")
	require.Error(t, err)
}

func TestLibraryService_StoreFailureDoesNotLoseSession(t *testing.T) {
	repo := &memLibraryRepo{storeErr: errors.New("disk full")}
	svc := NewLibraryService(repo)
	ctx := context.Background()

	p, err := svc.Save(ctx, "제목", "", domain.TabCoding, "본문")
	require.NoError(t, err, "persistence is best-effort")
	require.NotNil(t, p)

	// The in-memory list stays authoritative for the session.
	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
	assert.Positive(t, repo.stores)
}

func TestLibraryService_LoadFailureDegradesToEmpty(t *testing.T) {
	repo := &memLibraryRepo{loadErr: errors.New("corrupt slot")}
	svc := NewLibraryService(repo)

	assert.Empty(t, svc.List(context.Background()))
}

func TestLibraryService_LoadsExistingAtStartup(t *testing.T) {
	existing := domain.SavedPrompt{ID: "id-1", Title: "기존", TabType: domain.TabImage, Prompt: "p", CreatedAt: "2026-08-01T00:00:00Z"}
	repo := &memLibraryRepo{prompts: []domain.SavedPrompt{existing}}
	svc := NewLibraryService(repo)

	list := svc.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, "id-1", list[0].ID)
}

func TestLibraryService_DeleteUnknownID(t *testing.T) {
	svc := NewLibraryService(&memLibraryRepo{})

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestLibraryService_GetUnknownID(t *testing.T) {
	svc := NewLibraryService(&memLibraryRepo{})

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestLibraryService_ListReturnsCopy(t *testing.T) {
	svc := NewLibraryService(&memLibraryRepo{})
	ctx := context.Background()

	_, err := svc.Save(ctx, "제목", "", domain.TabReport, "본문")
	require.NoError(t, err)

	list := svc.List(ctx)
	list[0].Title = "mutated"

	fresh := svc.List(ctx)
	assert.Equal(t, "제목", fresh[0].Title)
}
