package mocks

import (
	"context"

	"docdash/internal/filter"
	"docdash/internal/service"
	"docdash/internal/upload"
	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) List(ctx context.Context, c filter.ActivityCriteria) (*service.ActivityListResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ActivityListResult), args.Error(1)
}

type MockMonitoringService struct {
	mock.Mock
}

func (m *MockMonitoringService) Overview(ctx context.Context, r service.TimeRange) (*service.Overview, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Overview), args.Error(1)
}

func (m *MockMonitoringService) SystemLogs(ctx context.Context, c filter.SystemLogCriteria) (*service.SystemLogListResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SystemLogListResult), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Submit(ctx context.Context, s upload.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

var (
	_ service.ActivityService   = (*MockActivityService)(nil)
	_ service.MonitoringService = (*MockMonitoringService)(nil)
	_ service.UploadService     = (*MockUploadService)(nil)
)
