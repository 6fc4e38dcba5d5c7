package memory

import (
	"context"
	"sync"

	"smart-screenshot-organizer/internal/capture/repository"
	"smart-screenshot-organizer/internal/model"
)

// Store is an in-memory capture repository. It keeps insertion order so List
// can return newest-first pages deterministically.
type Store struct {
	mu       sync.RWMutex
	captures map[string]model.Capture
	order    []string // IDs in insertion order
}

// New creates an empty in-memory capture store.
func New() *Store {
	return &Store{
		captures: make(map[string]model.Capture),
	}
}

func (s *Store) Create(ctx context.Context, capture model.Capture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.captures[capture.ID]; !exists {
		s.order = append(s.order, capture.ID)
	}
	s.captures[capture.ID] = capture
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (model.Capture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	capture, ok := s.captures[id]
	if !ok {
		return model.Capture{}, repository.ErrNotFound
	}
	return capture, nil
}

func (s *Store) List(ctx context.Context, opts repository.ListOptions) ([]model.Capture, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first: walk insertion order backwards.
	matched := make([]model.Capture, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		capture := s.captures[s.order[i]]
		if opts.UserID != "" && capture.UserID != opts.UserID {
			continue
		}
		matched = append(matched, capture)
	}

	total := len(matched)

	offset := opts.Offset
	if offset > total {
		offset = total
	}
	end := total
	if opts.Limit > 0 && offset+opts.Limit < end {
		end = offset + opts.Limit
	}

	return matched[offset:end], total, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.captures[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.captures, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
