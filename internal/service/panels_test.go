package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"docdash/internal/filter"
	"docdash/internal/logger"
	"docdash/internal/model"
	repoMocks "docdash/internal/repository/mocks"
	"docdash/internal/seed"
	"docdash/internal/upload"
)

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()
	logs := seed.ActivityLogs(time.UTC)

	tests := []struct {
		name         string
		criteria     filter.ActivityCriteria
		wantIDs      []string
		wantFiltered bool
	}{
		{"no criteria", filter.ActivityCriteria{Action: filter.All}, []string{"log-1", "log-2", "log-3", "log-4", "log-5"}, false},
		{"by action", filter.ActivityCriteria{Action: "upload"}, []string{"log-1"}, true},
		{"by user", filter.ActivityCriteria{Query: "jane"}, []string{"log-2"}, true},
		{"by date", filter.ActivityCriteria{Date: ptr(time.Date(2023, 5, 13, 0, 0, 0, 0, time.UTC))}, []string{"log-3"}, true},
		{"no match", filter.ActivityCriteria{Query: "nothing"}, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockActivityRepository)
			mRepo.On("List", ctx).Return(logs, nil)
			svc := NewActivityService(mRepo, time.UTC)

			res, err := svc.List(ctx, tt.criteria)

			require.NoError(t, err)
			ids := make([]string, 0, len(res.Items))
			for _, l := range res.Items {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 5, res.Total)
			assert.Equal(t, len(tt.wantIDs) == 0, res.Empty)
			assert.Equal(t, tt.wantFiltered, res.Filtered)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("db fail"))

		res, err := NewActivityService(mRepo, time.UTC).List(ctx, filter.ActivityCriteria{})

		assert.ErrorContains(t, err, "list activity: db fail")
		assert.Nil(t, res)
	})
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("")
	require.NoError(t, err)
	assert.Equal(t, Range7d, r)

	r, err = ParseTimeRange("90d")
	require.NoError(t, err)
	assert.Equal(t, Range90d, r)

	_, err = ParseTimeRange("1y")
	assert.Error(t, err)
}

func TestMonitoringService_Overview(t *testing.T) {
	svc := NewMonitoringService(new(repoMocks.MockSystemLogRepository)).(*monitoringService)
	now := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	o, err := svc.Overview(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, Range7d, o.Range)
	assert.Len(t, o.Stats, 4)
	assert.Len(t, o.Activity, 7)
	assert.Len(t, o.Storage, 7)
	require.Len(t, o.Distribution, 4)
	assert.Equal(t, "PDF 45%", o.Distribution[0].Label)
	require.Len(t, o.Recent, 4)
	assert.Equal(t, "5 minutes ago", o.Recent[0].Ago)
	assert.Equal(t, "1 hour ago", o.Recent[3].Ago)
}

func TestMonitoringService_SystemLogs(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSystemLogRepository)
	mRepo.On("List", ctx).Return(seed.SystemLogs(time.UTC), nil)
	svc := NewMonitoringService(mRepo)

	res, err := svc.SystemLogs(ctx, filter.SystemLogCriteria{Level: string(model.LevelInfo), Query: "logged in"})

	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "sys-1", res.Items[0].ID)
	assert.Equal(t, "sys-5", res.Items[1].ID)
}

func TestUploadService_Submit(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewUploadService(zap.New(core))

	ctx := logger.WithRequestID(context.Background(), "rid-7")
	err := svc.Submit(ctx, upload.Submission{
		File:        upload.FileHandle{Name: "Budget.xlsx", Size: 2 * 1024 * 1024},
		Tags:        []string{"budget"},
		Description: "Q3",
	})

	require.NoError(t, err)
	entries := logs.FilterMessage("upload submitted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Budget.xlsx", fields["file"])
	assert.Equal(t, "2.00 MB", fields["size"])
	assert.Equal(t, "Excel", fields["type"])
	assert.Equal(t, "rid-7", fields["request_id"])
}

func ptr[T any](v T) *T { return &v }
