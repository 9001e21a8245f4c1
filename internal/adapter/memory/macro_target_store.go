package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// MacroTargetStore keeps the active targets and the change history per child.
type MacroTargetStore struct {
	mu      sync.RWMutex
	active  map[uuid.UUID]domain.MacroTargets
	history map[uuid.UUID][]domain.MacroTargetsHistoryEntry
}

// NewMacroTargetStore creates an empty store.
func NewMacroTargetStore() *MacroTargetStore {
	return &MacroTargetStore{
		active:  make(map[uuid.UUID]domain.MacroTargets),
		history: make(map[uuid.UUID][]domain.MacroTargetsHistoryEntry),
	}
}

// LockChild is a no-op: TxManager already serializes whole transactions.
func (s *MacroTargetStore) LockChild(context.Context, uuid.UUID) error {
	return nil
}

// GetActive returns the child's targets or an error wrapping domain.ErrNotFound.
func (s *MacroTargetStore) GetActive(_ context.Context, childID uuid.UUID) (*domain.MacroTargets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.active[childID]
	if !ok {
		return nil, fmt.Errorf("macro targets of child %s: %w", childID, domain.ErrNotFound)
	}
	return &t, nil
}

// Upsert replaces the child's active targets.
func (s *MacroTargetStore) Upsert(_ context.Context, targets domain.MacroTargets) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[targets.ChildID] = targets
	return nil
}

// AppendHistory records one change.
func (s *MacroTargetStore) AppendHistory(_ context.Context, entry domain.MacroTargetsHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[entry.ChildID] = append(s.history[entry.ChildID], entry)
	return nil
}

// ListHistory returns the child's changes, newest first.
func (s *MacroTargetStore) ListHistory(_ context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := slices.Clone(s.history[childID])
	slices.Reverse(entries)
	return entries, nil
}

// TxManager serializes RunInTx calls, so a sequence of store calls inside
// one is isolated from other transactions. A nested call joins the outer
// one. The zero value is ready to use.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a transaction manager for the memory stores.
func NewTxManager() *TxManager {
	return &TxManager{}
}

type txCtxKey struct{}

// RunInTx calls fn while holding the manager's lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txCtxKey{}) == m {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txCtxKey{}, m))
}
