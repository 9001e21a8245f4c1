package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
	"github.com/heartmarshall/kalculo-backend/internal/service/macrotarget"
)

var _ macroTargetService = &macroTargetServiceMock{}

type macroTargetServiceMock struct {
	SetTargetsFunc func(ctx context.Context, input macrotarget.SetTargetsInput) (*domain.MacroTargets, error)
	GetActiveFunc  func(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error)
	HistoryFunc    func(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error)

	calls struct {
		SetTargets []struct {
			Ctx   context.Context
			Input macrotarget.SetTargetsInput
		}
		GetActive []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
		History []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
	}
	lockSetTargets sync.RWMutex
	lockGetActive  sync.RWMutex
	lockHistory    sync.RWMutex
}

func (mock *macroTargetServiceMock) SetTargets(ctx context.Context, input macrotarget.SetTargetsInput) (*domain.MacroTargets, error) {
	if mock.SetTargetsFunc == nil {
		panic("macroTargetServiceMock.SetTargetsFunc: method is nil but macroTargetService.SetTargets was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input macrotarget.SetTargetsInput
	}{Ctx: ctx, Input: input}
	mock.lockSetTargets.Lock()
	mock.calls.SetTargets = append(mock.calls.SetTargets, callInfo)
	mock.lockSetTargets.Unlock()
	return mock.SetTargetsFunc(ctx, input)
}

func (mock *macroTargetServiceMock) SetTargetsCalls() []struct {
	Ctx   context.Context
	Input macrotarget.SetTargetsInput
} {
	mock.lockSetTargets.RLock()
	calls := mock.calls.SetTargets
	mock.lockSetTargets.RUnlock()
	return calls
}

func (mock *macroTargetServiceMock) GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error) {
	if mock.GetActiveFunc == nil {
		panic("macroTargetServiceMock.GetActiveFunc: method is nil but macroTargetService.GetActive was just called")
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

func (mock *macroTargetServiceMock) GetActiveCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *macroTargetServiceMock) History(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error) {
	if mock.HistoryFunc == nil {
		panic("macroTargetServiceMock.HistoryFunc: method is nil but macroTargetService.History was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChildID uuid.UUID
	}{Ctx: ctx, ChildID: childID}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, childID)
}

func (mock *macroTargetServiceMock) HistoryCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
