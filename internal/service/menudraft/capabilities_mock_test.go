package menudraft

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// foodCatalogMock
// ---------------------------------------------------------------------------

var _ foodCatalog = &foodCatalogMock{}

type foodCatalogMock struct {
	ListFoodsFunc    func(ctx context.Context) ([]domain.FoodItem, error)
	FindFoodByIDFunc func(ctx context.Context, id string) (*domain.FoodItem, error)

	calls struct {
		ListFoods    []struct{ Ctx context.Context }
		FindFoodByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListFoods    sync.RWMutex
	lockFindFoodByID sync.RWMutex
}

func (mock *foodCatalogMock) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	if mock.ListFoodsFunc == nil {
		panic("foodCatalogMock.ListFoodsFunc: method is nil but foodCatalog.ListFoods was just called")
	}
	mock.lockListFoods.Lock()
	mock.calls.ListFoods = append(mock.calls.ListFoods, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListFoods.Unlock()
	return mock.ListFoodsFunc(ctx)
}

func (mock *foodCatalogMock) ListFoodsCalls() []struct{ Ctx context.Context } {
	mock.lockListFoods.RLock()
	calls := mock.calls.ListFoods
	mock.lockListFoods.RUnlock()
	return calls
}

func (mock *foodCatalogMock) FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	if mock.FindFoodByIDFunc == nil {
		panic("foodCatalogMock.FindFoodByIDFunc: method is nil but foodCatalog.FindFoodByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockFindFoodByID.Lock()
	mock.calls.FindFoodByID = append(mock.calls.FindFoodByID, callInfo)
	mock.lockFindFoodByID.Unlock()
	return mock.FindFoodByIDFunc(ctx, id)
}

func (mock *foodCatalogMock) FindFoodByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockFindFoodByID.RLock()
	calls := mock.calls.FindFoodByID
	mock.lockFindFoodByID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// macroTargetsMock
// ---------------------------------------------------------------------------

var _ macroTargets = &macroTargetsMock{}

type macroTargetsMock struct {
	GetActiveByChildIDFunc func(ctx context.Context, childID uuid.UUID) (domain.MacroTargetsValues, error)

	calls struct {
		GetActiveByChildID []struct {
			Ctx     context.Context
			ChildID uuid.UUID
		}
	}
	lockGetActiveByChildID sync.RWMutex
}

func (mock *macroTargetsMock) GetActiveByChildID(ctx context.Context, childID uuid.UUID) (domain.MacroTargetsValues, error) {
	if mock.GetActiveByChildIDFunc == nil {
		panic("macroTargetsMock.GetActiveByChildIDFunc: method is nil but macroTargets.GetActiveByChildID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChildID uuid.UUID
	}{Ctx: ctx, ChildID: childID}
	mock.lockGetActiveByChildID.Lock()
	mock.calls.GetActiveByChildID = append(mock.calls.GetActiveByChildID, callInfo)
	mock.lockGetActiveByChildID.Unlock()
	return mock.GetActiveByChildIDFunc(ctx, childID)
}

func (mock *macroTargetsMock) GetActiveByChildIDCalls() []struct {
	Ctx     context.Context
	ChildID uuid.UUID
} {
	mock.lockGetActiveByChildID.RLock()
	calls := mock.calls.GetActiveByChildID
	mock.lockGetActiveByChildID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// draftStoreMock
// ---------------------------------------------------------------------------

var _ draftStore = &draftStoreMock{}

type draftStoreMock struct {
	FindByKeyFunc func(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error)
	SaveFunc      func(ctx context.Context, draft domain.DailyMenuDraft) error

	calls struct {
		FindByKey []struct {
			Ctx context.Context
			Key domain.DraftKey
		}
		Save []struct {
			Ctx   context.Context
			Draft domain.DailyMenuDraft
		}
	}
	lockFindByKey sync.RWMutex
	lockSave      sync.RWMutex
}

func (mock *draftStoreMock) FindByKey(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error) {
	if mock.FindByKeyFunc == nil {
		panic("draftStoreMock.FindByKeyFunc: method is nil but draftStore.FindByKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.DraftKey
	}{Ctx: ctx, Key: key}
	mock.lockFindByKey.Lock()
	mock.calls.FindByKey = append(mock.calls.FindByKey, callInfo)
	mock.lockFindByKey.Unlock()
	return mock.FindByKeyFunc(ctx, key)
}

func (mock *draftStoreMock) FindByKeyCalls() []struct {
	Ctx context.Context
	Key domain.DraftKey
} {
	mock.lockFindByKey.RLock()
	calls := mock.calls.FindByKey
	mock.lockFindByKey.RUnlock()
	return calls
}

func (mock *draftStoreMock) Save(ctx context.Context, draft domain.DailyMenuDraft) error {
	if mock.SaveFunc == nil {
		panic("draftStoreMock.SaveFunc: method is nil but draftStore.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.DailyMenuDraft
	}{Ctx: ctx, Draft: draft}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, draft)
}

func (mock *draftStoreMock) SaveCalls() []struct {
	Ctx   context.Context
	Draft domain.DailyMenuDraft
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
