package macrotarget

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

var _ targetRepo = &targetRepoMock{}

type targetRepoMock struct {
	LockChildFunc     func(ctx context.Context, childID uuid.UUID) error
	GetActiveFunc     func(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error)
	UpsertFunc        func(ctx context.Context, targets domain.MacroTargets) error
	AppendHistoryFunc func(ctx context.Context, entry domain.MacroTargetsHistoryEntry) error
	ListHistoryFunc   func(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error)

	calls struct {
		LockChild []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
		GetActive []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
		Upsert []struct {
			Ctx     context.Context
			Targets domain.MacroTargets
		}
		AppendHistory []struct {
			Ctx   context.Context
			Entry domain.MacroTargetsHistoryEntry
		}
		ListHistory []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
	}
	lockLockChild     sync.RWMutex
	lockGetActive     sync.RWMutex
	lockUpsert        sync.RWMutex
	lockAppendHistory sync.RWMutex
	lockListHistory   sync.RWMutex
}

func (mock *targetRepoMock) LockChild(ctx context.Context, childID uuid.UUID) error {
	if mock.LockChildFunc == nil {
		panic("targetRepoMock.LockChildFunc: method is nil but targetRepo.LockChild was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChildID uuid.UUID
	}{Ctx: ctx, ChildID: childID}
	mock.lockLockChild.Lock()
	mock.calls.LockChild = append(mock.calls.LockChild, callInfo)
	mock.lockLockChild.Unlock()
	return mock.LockChildFunc(ctx, childID)
}

func (mock *targetRepoMock) LockChildCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockLockChild.RLock()
	calls := mock.calls.LockChild
	mock.lockLockChild.RUnlock()
	return calls
}

func (mock *targetRepoMock) GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error) {
	if mock.GetActiveFunc == nil {
		panic("targetRepoMock.GetActiveFunc: method is nil but targetRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChildID uuid.UUID
	}{Ctx: ctx, ChildID: childID}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, childID)
}

func (mock *targetRepoMock) GetActiveCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *targetRepoMock) Upsert(ctx context.Context, targets domain.MacroTargets) error {
	if mock.UpsertFunc == nil {
		panic("targetRepoMock.UpsertFunc: method is nil but targetRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Targets domain.MacroTargets
	}{Ctx: ctx, Targets: targets}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, targets)
}

func (mock *targetRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	Targets domain.MacroTargets
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *targetRepoMock) AppendHistory(ctx context.Context, entry domain.MacroTargetsHistoryEntry) error {
	if mock.AppendHistoryFunc == nil {
		panic("targetRepoMock.AppendHistoryFunc: method is nil but targetRepo.AppendHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.MacroTargetsHistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppendHistory.Lock()
	mock.calls.AppendHistory = append(mock.calls.AppendHistory, callInfo)
	mock.lockAppendHistory.Unlock()
	return mock.AppendHistoryFunc(ctx, entry)
}

func (mock *targetRepoMock) AppendHistoryCalls() []struct {
	Ctx   context.Context
	Entry domain.MacroTargetsHistoryEntry
} {
	mock.lockAppendHistory.RLock()
	calls := mock.calls.AppendHistory
	mock.lockAppendHistory.RUnlock()
	return calls
}

func (mock *targetRepoMock) ListHistory(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error) {
	if mock.ListHistoryFunc == nil {
		panic("targetRepoMock.ListHistoryFunc: method is nil but targetRepo.ListHistory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChildID uuid.UUID
	}{Ctx: ctx, ChildID: childID}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, childID)
}

func (mock *targetRepoMock) ListHistoryCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
