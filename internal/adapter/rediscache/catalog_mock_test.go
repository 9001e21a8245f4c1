package rediscache

import (
	"context"
	"sync"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

var _ catalog = &catalogMock{}

type catalogMock struct {
	ListFoodsFunc    func(ctx context.Context) ([]domain.FoodItem, error)
	FindFoodByIDFunc func(ctx context.Context, id string) (*domain.FoodItem, error)

	calls struct {
		ListFoods []struct {
			Ctx context.Context
		}
		FindFoodByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListFoods    sync.RWMutex
	lockFindFoodByID sync.RWMutex
}

func (m *catalogMock) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	if m.ListFoodsFunc == nil {
		panic("catalogMock.ListFoodsFunc: method is nil but catalog.ListFoods was just called")
	}
	m.lockListFoods.Lock()
	m.calls.ListFoods = append(m.calls.ListFoods, struct {
		Ctx context.Context
	}{Ctx: ctx})
	m.lockListFoods.Unlock()
	return m.ListFoodsFunc(ctx)
}

func (m *catalogMock) ListFoodsCalls() []struct {
	Ctx context.Context
} {
	m.lockListFoods.RLock()
	defer m.lockListFoods.RUnlock()
	return m.calls.ListFoods
}

func (m *catalogMock) FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	if m.FindFoodByIDFunc == nil {
		panic("catalogMock.FindFoodByIDFunc: method is nil but catalog.FindFoodByID was just called")
	}
	m.lockFindFoodByID.Lock()
	m.calls.FindFoodByID = append(m.calls.FindFoodByID, struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id})
	m.lockFindFoodByID.Unlock()
	return m.FindFoodByIDFunc(ctx, id)
}

func (m *catalogMock) FindFoodByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	m.lockFindFoodByID.RLock()
	defer m.lockFindFoodByID.RUnlock()
	return m.calls.FindFoodByID
}
