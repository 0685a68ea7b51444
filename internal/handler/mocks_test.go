package handler_test

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Моки репозиториев для тестов обработчиков

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Create(ctx context.Context, dashboard *model.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

func (m *MockDashboardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Dashboard, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) GetBySlug(ctx context.Context, ownerID uuid.UUID, slug string) (*model.Dashboard, error) {
	args := m.Called(ctx, ownerID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) Update(ctx context.Context, dashboard *model.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

func (m *MockDashboardRepository) DeleteCascade(ctx context.Context, dashboard *model.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Column), args.Error(1)
}

func (m *MockColumnRepository) GetByIDs(ctx context.Context, ids model.IDList) ([]model.Column, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) Update(ctx context.Context, column *model.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

func (m *MockColumnRepository) AddToDashboard(ctx context.Context, dashboardID uuid.UUID, column *model.Column) error {
	args := m.Called(ctx, dashboardID, column)
	return args.Error(0)
}

func (m *MockColumnRepository) Reposition(ctx context.Context, dashboardID, columnID uuid.UUID, position int) (model.IDList, error) {
	args := m.Called(ctx, dashboardID, columnID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.IDList), args.Error(1)
}

func (m *MockColumnRepository) DeleteCascade(ctx context.Context, dashboardID, columnID uuid.UUID) error {
	args := m.Called(ctx, dashboardID, columnID)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetByIDs(ctx context.Context, ids model.IDList) ([]model.Card, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) AddToColumn(ctx context.Context, columnID uuid.UUID, card *model.Card) error {
	args := m.Called(ctx, columnID, card)
	return args.Error(0)
}

func (m *MockCardRepository) Move(ctx context.Context, card *model.Card, update repository.CardUpdate) error {
	args := m.Called(ctx, card, update)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}
