package mocks

import (
	"context"

	"docdash/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) List(ctx context.Context) ([]model.ActivityLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLogEntry), args.Error(1)
}

func (m *MockActivityRepository) Add(ctx context.Context, e model.ActivityLogEntry) (*model.ActivityLogEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivityLogEntry), args.Error(1)
}

type MockSystemLogRepository struct {
	mock.Mock
}

func (m *MockSystemLogRepository) List(ctx context.Context) ([]model.SystemLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SystemLogEntry), args.Error(1)
}

func (m *MockSystemLogRepository) Add(ctx context.Context, e model.SystemLogEntry) (*model.SystemLogEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SystemLogEntry), args.Error(1)
}
