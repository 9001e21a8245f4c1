package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
	"github.com/heartmarshall/kalculo-backend/internal/service/menudraft"
)

var _ draftService = &draftServiceMock{}

type draftServiceMock struct {
	ListFoodsFunc           func(ctx context.Context) ([]domain.FoodItem, error)
	GetDailyDraftFunc       func(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error)
	AddFoodFunc             func(ctx context.Context, input menudraft.AddFoodInput) (*domain.DailyMenuDraft, error)
	UpdateLineQuantityFunc  func(ctx context.Context, input menudraft.UpdateLineQuantityInput) (*domain.DailyMenuDraft, error)
	RemoveLineFunc          func(ctx context.Context, input menudraft.RemoveLineInput) (*domain.DailyMenuDraft, error)
	MoveLineFunc            func(ctx context.Context, input menudraft.MoveLineInput) (*domain.DailyMenuDraft, error)
	CalculateComplianceFunc func(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error)
	LockDraftFunc           func(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error)
	AuthorizeShareFunc      func(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error)

	calls struct {
		ListFoods []struct {
			Ctx context.Context
		}
		GetDailyDraft []struct {
			Ctx context.Context
			Ref menudraft.DraftRef
		}
		AddFood []struct {
			Ctx   context.Context
			Input menudraft.AddFoodInput
		}
		UpdateLineQuantity []struct {
			Ctx   context.Context
			Input menudraft.UpdateLineQuantityInput
		}
		RemoveLine []struct {
			Ctx   context.Context
			Input menudraft.RemoveLineInput
		}
		MoveLine []struct {
			Ctx   context.Context
			Input menudraft.MoveLineInput
		}
		CalculateCompliance []struct {
			Ctx context.Context
			Ref menudraft.DraftRef
		}
		LockDraft []struct {
			Ctx context.Context
			Ref menudraft.DraftRef
		}
		AuthorizeShare []struct {
			Ctx context.Context
			Ref menudraft.DraftRef
		}
	}
	lockListFoods           sync.RWMutex
	lockGetDailyDraft       sync.RWMutex
	lockAddFood             sync.RWMutex
	lockUpdateLineQuantity  sync.RWMutex
	lockRemoveLine          sync.RWMutex
	lockMoveLine            sync.RWMutex
	lockCalculateCompliance sync.RWMutex
	lockLockDraft           sync.RWMutex
	lockAuthorizeShare      sync.RWMutex
}

func (mock *draftServiceMock) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	if mock.ListFoodsFunc == nil {
		panic("draftServiceMock.ListFoodsFunc: method is nil but draftService.ListFoods was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListFoods.Lock()
	mock.calls.ListFoods = append(mock.calls.ListFoods, callInfo)
	mock.lockListFoods.Unlock()
	return mock.ListFoodsFunc(ctx)
}

func (mock *draftServiceMock) ListFoodsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListFoods.RLock()
	calls := mock.calls.ListFoods
	mock.lockListFoods.RUnlock()
	return calls
}

func (mock *draftServiceMock) GetDailyDraft(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error) {
	if mock.GetDailyDraftFunc == nil {
		panic("draftServiceMock.GetDailyDraftFunc: method is nil but draftService.GetDailyDraft was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref menudraft.DraftRef
	}{Ctx: ctx, Ref: ref}
	mock.lockGetDailyDraft.Lock()
	mock.calls.GetDailyDraft = append(mock.calls.GetDailyDraft, callInfo)
	mock.lockGetDailyDraft.Unlock()
	return mock.GetDailyDraftFunc(ctx, ref)
}

func (mock *draftServiceMock) GetDailyDraftCalls() []struct {
	Ctx context.Context
	Ref menudraft.DraftRef
} {
	mock.lockGetDailyDraft.RLock()
	calls := mock.calls.GetDailyDraft
	mock.lockGetDailyDraft.RUnlock()
	return calls
}

func (mock *draftServiceMock) AddFood(ctx context.Context, input menudraft.AddFoodInput) (*domain.DailyMenuDraft, error) {
	if mock.AddFoodFunc == nil {
		panic("draftServiceMock.AddFoodFunc: method is nil but draftService.AddFood was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menudraft.AddFoodInput
	}{Ctx: ctx, Input: input}
	mock.lockAddFood.Lock()
	mock.calls.AddFood = append(mock.calls.AddFood, callInfo)
	mock.lockAddFood.Unlock()
	return mock.AddFoodFunc(ctx, input)
}

func (mock *draftServiceMock) AddFoodCalls() []struct {
	Ctx   context.Context
	Input menudraft.AddFoodInput
} {
	mock.lockAddFood.RLock()
	calls := mock.calls.AddFood
	mock.lockAddFood.RUnlock()
	return calls
}

func (mock *draftServiceMock) UpdateLineQuantity(ctx context.Context, input menudraft.UpdateLineQuantityInput) (*domain.DailyMenuDraft, error) {
	if mock.UpdateLineQuantityFunc == nil {
		panic("draftServiceMock.UpdateLineQuantityFunc: method is nil but draftService.UpdateLineQuantity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menudraft.UpdateLineQuantityInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateLineQuantity.Lock()
	mock.calls.UpdateLineQuantity = append(mock.calls.UpdateLineQuantity, callInfo)
	mock.lockUpdateLineQuantity.Unlock()
	return mock.UpdateLineQuantityFunc(ctx, input)
}

func (mock *draftServiceMock) UpdateLineQuantityCalls() []struct {
	Ctx   context.Context
	Input menudraft.UpdateLineQuantityInput
} {
	mock.lockUpdateLineQuantity.RLock()
	calls := mock.calls.UpdateLineQuantity
	mock.lockUpdateLineQuantity.RUnlock()
	return calls
}

func (mock *draftServiceMock) RemoveLine(ctx context.Context, input menudraft.RemoveLineInput) (*domain.DailyMenuDraft, error) {
	if mock.RemoveLineFunc == nil {
		panic("draftServiceMock.RemoveLineFunc: method is nil but draftService.RemoveLine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menudraft.RemoveLineInput
	}{Ctx: ctx, Input: input}
	mock.lockRemoveLine.Lock()
	mock.calls.RemoveLine = append(mock.calls.RemoveLine, callInfo)
	mock.lockRemoveLine.Unlock()
	return mock.RemoveLineFunc(ctx, input)
}

func (mock *draftServiceMock) RemoveLineCalls() []struct {
	Ctx   context.Context
	Input menudraft.RemoveLineInput
} {
	mock.lockRemoveLine.RLock()
	calls := mock.calls.RemoveLine
	mock.lockRemoveLine.RUnlock()
	return calls
}

func (mock *draftServiceMock) MoveLine(ctx context.Context, input menudraft.MoveLineInput) (*domain.DailyMenuDraft, error) {
	if mock.MoveLineFunc == nil {
		panic("draftServiceMock.MoveLineFunc: method is nil but draftService.MoveLine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menudraft.MoveLineInput
	}{Ctx: ctx, Input: input}
	mock.lockMoveLine.Lock()
	mock.calls.MoveLine = append(mock.calls.MoveLine, callInfo)
	mock.lockMoveLine.Unlock()
	return mock.MoveLineFunc(ctx, input)
}

func (mock *draftServiceMock) MoveLineCalls() []struct {
	Ctx   context.Context
	Input menudraft.MoveLineInput
} {
	mock.lockMoveLine.RLock()
	calls := mock.calls.MoveLine
	mock.lockMoveLine.RUnlock()
	return calls
}

func (mock *draftServiceMock) CalculateCompliance(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error) {
	if mock.CalculateComplianceFunc == nil {
		panic("draftServiceMock.CalculateComplianceFunc: method is nil but draftService.CalculateCompliance was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref menudraft.DraftRef
	}{Ctx: ctx, Ref: ref}
	mock.lockCalculateCompliance.Lock()
	mock.calls.CalculateCompliance = append(mock.calls.CalculateCompliance, callInfo)
	mock.lockCalculateCompliance.Unlock()
	return mock.CalculateComplianceFunc(ctx, ref)
}

func (mock *draftServiceMock) CalculateComplianceCalls() []struct {
	Ctx context.Context
	Ref menudraft.DraftRef
} {
	mock.lockCalculateCompliance.RLock()
	calls := mock.calls.CalculateCompliance
	mock.lockCalculateCompliance.RUnlock()
	return calls
}

func (mock *draftServiceMock) LockDraft(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error) {
	if mock.LockDraftFunc == nil {
		panic("draftServiceMock.LockDraftFunc: method is nil but draftService.LockDraft was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref menudraft.DraftRef
	}{Ctx: ctx, Ref: ref}
	mock.lockLockDraft.Lock()
	mock.calls.LockDraft = append(mock.calls.LockDraft, callInfo)
	mock.lockLockDraft.Unlock()
	return mock.LockDraftFunc(ctx, ref)
}

func (mock *draftServiceMock) LockDraftCalls() []struct {
	Ctx context.Context
	Ref menudraft.DraftRef
} {
	mock.lockLockDraft.RLock()
	calls := mock.calls.LockDraft
	mock.lockLockDraft.RUnlock()
	return calls
}

func (mock *draftServiceMock) AuthorizeShare(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error) {
	if mock.AuthorizeShareFunc == nil {
		panic("draftServiceMock.AuthorizeShareFunc: method is nil but draftService.AuthorizeShare was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref menudraft.DraftRef
	}{Ctx: ctx, Ref: ref}
	mock.lockAuthorizeShare.Lock()
	mock.calls.AuthorizeShare = append(mock.calls.AuthorizeShare, callInfo)
	mock.lockAuthorizeShare.Unlock()
	return mock.AuthorizeShareFunc(ctx, ref)
}

func (mock *draftServiceMock) AuthorizeShareCalls() []struct {
	Ctx context.Context
	Ref menudraft.DraftRef
} {
	mock.lockAuthorizeShare.RLock()
	calls := mock.calls.AuthorizeShare
	mock.lockAuthorizeShare.RUnlock()
	return calls
}
