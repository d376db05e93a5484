package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/costmanager/backend/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) IncrementTotal(ctx context.Context, id int64, delta float64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type MockCostRepository struct {
	mock.Mock
}

func (m *MockCostRepository) Insert(ctx context.Context, cost *models.Cost) error {
	args := m.Called(ctx, cost)
	if args.Error(0) == nil {
		cost.ID = 1
	}
	return args.Error(0)
}

func (m *MockCostRepository) FindByUserMonth(ctx context.Context, userID int64, year, month int) ([]models.Cost, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cost), args.Error(1)
}

func (m *MockCostRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportCache) Put(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context, userID int64, year, month int) error {
	args := m.Called(ctx, userID, year, month)
	return args.Error(0)
}

func (m *MockReportCache) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
