package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/repository"
)

type libraryService struct {
	repo repository.LibraryRepo
	obs  UseCaseObserver
	now  func() time.Time

	mu      sync.Mutex
	prompts []domain.SavedPrompt
}

// NewLibraryService loads the persisted list and returns a LibraryService.
// A read failure (absent database, corrupt slot) is observed and degrades
// to an empty library; it never prevents startup.
func NewLibraryService(repo repository.LibraryRepo, observers ...UseCaseObserver) LibraryService {
	s := &libraryService{
		repo: repo,
		obs:  useCaseObserverOrNoop(observers),
		now:  time.Now,
	}

	ctx := context.Background()
	start := s.now()
	prompts, err := repo.Load(ctx)
	observe(ctx, s.obs, "library_load", start, err, map[string]any{"count": len(prompts)})
	if prompts == nil {
		prompts = []domain.SavedPrompt{}
	}
	s.prompts = prompts

	return s
}

func (s *libraryService) List(ctx context.Context) []domain.SavedPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SavedPrompt, len(s.prompts))
	copy(out, s.prompts)
	return out
}

func (s *libraryService) Get(ctx context.Context, id string) (*domain.SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			p := s.prompts[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("saved prompt %s: %w", id, repository.ErrNotFound)
}

func (s *libraryService) Save(ctx context.Context, title, notes string, tab domain.TabType, prompt string) (*domain.SavedPrompt, error) {
	start := s.now()

	p := domain.NewSavedPrompt(title, notes, tab, prompt, s.now())
	if err := p.Validate(); err != nil {
		observe(ctx, s.obs, "library_save", start, err, nil)
		return nil, err
	}

	s.mu.Lock()
	s.prompts = append([]domain.SavedPrompt{p}, s.prompts...)
	snapshot := make([]domain.SavedPrompt, len(s.prompts))
	copy(snapshot, s.prompts)
	s.mu.Unlock()

	// Mirror best-effort: the in-memory list stays authoritative for the
	// session even when the write fails.
	err := s.repo.Store(ctx, snapshot)
	observe(ctx, s.obs, "library_save", start, err, map[string]any{"id": p.ID, "tab": string(tab)})

	return &p, nil
}

func (s *libraryService) Delete(ctx context.Context, id string) error {
	start := s.now()

	s.mu.Lock()
	idx := -1
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		err := fmt.Errorf("saved prompt %s: %w", id, repository.ErrNotFound)
		observe(ctx, s.obs, "library_delete", start, err, nil)
		return err
	}
	s.prompts = append(s.prompts[:idx], s.prompts[idx+1:]...)
	snapshot := make([]domain.SavedPrompt, len(s.prompts))
	copy(snapshot, s.prompts)
	s.mu.Unlock()

	err := s.repo.Store(ctx, snapshot)
	observe(ctx, s.obs, "library_delete", start, err, map[string]any{"id": id})

	return nil
}
