package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// DraftStore keeps drafts keyed by (parent, child, day).
type DraftStore struct {
	mu     sync.Mutex
	drafts map[domain.DraftKey]domain.DailyMenuDraft
}

// NewDraftStore creates an empty store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[domain.DraftKey]domain.DailyMenuDraft)}
}

// FindByKey returns a copy of the stored draft or an error wrapping
// domain.ErrNotFound.
func (s *DraftStore) FindByKey(_ context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[key]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", key.DraftID(), domain.ErrNotFound)
	}
	d.Lines = slices.Clone(d.Lines)
	return &d, nil
}

// Save stores draft when the stored version is draft.Version-1 (or when
// nothing is stored and draft.Version is 1).
func (s *DraftStore) Save(_ context.Context, draft domain.DailyMenuDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draft.Key()
	current, ok := s.drafts[key]
	switch {
	case !ok && draft.Version != 1:
		return fmt.Errorf("draft %s: %w", draft.ID, domain.ErrDraftVersionConflict)
	case ok && current.Version != draft.Version-1:
		return fmt.Errorf("draft %s at version %d: %w", draft.ID, current.Version, domain.ErrDraftVersionConflict)
	}

	draft.Lines = slices.Clone(draft.Lines)
	s.drafts[key] = draft
	return nil
}
