package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/repository/mocks"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("skips populated store", func(t *testing.T) {
		docs := new(mocks.MockDocumentRepository)
		docs.On("List", ctx).Return([]model.Document{{ID: "doc-1"}}, nil)

		wrote, err := Load(ctx, repository.Set{Documents: docs}, time.UTC)

		require.NoError(t, err)
		assert.False(t, wrote)
		docs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("writes every collection", func(t *testing.T) {
		docs := new(mocks.MockDocumentRepository)
		comments := new(mocks.MockCommentRepository)
		activity := new(mocks.MockActivityRepository)
		syslogs := new(mocks.MockSystemLogRepository)

		docs.On("List", ctx).Return([]model.Document{}, nil)
		docs.On("Add", ctx, mock.AnythingOfType("model.Document")).Return(&model.Document{}, nil)
		comments.On("Add", ctx, mock.AnythingOfType("model.Comment")).Return(&model.Comment{}, nil)
		activity.On("Add", ctx, mock.AnythingOfType("model.ActivityLogEntry")).Return(&model.ActivityLogEntry{}, nil)
		syslogs.On("Add", ctx, mock.AnythingOfType("model.SystemLogEntry")).Return(&model.SystemLogEntry{}, nil)

		wrote, err := Load(ctx, repository.Set{Documents: docs, Comments: comments, Activity: activity, SystemLogs: syslogs}, time.UTC)

		require.NoError(t, err)
		assert.True(t, wrote)
		docs.AssertNumberOfCalls(t, "Add", 5)
		comments.AssertNumberOfCalls(t, "Add", 15)
		activity.AssertNumberOfCalls(t, "Add", 5)
		syslogs.AssertNumberOfCalls(t, "Add", 5)
	})

	t.Run("propagates insert error", func(t *testing.T) {
		docs := new(mocks.MockDocumentRepository)
		docs.On("List", ctx).Return([]model.Document{}, nil)
		docs.On("Add", ctx, mock.Anything).Return(nil, errors.New("db down"))

		wrote, err := Load(ctx, repository.Set{Documents: docs}, time.UTC)

		assert.False(t, wrote)
		assert.ErrorContains(t, err, "seed document doc-1: db down")
	})
}
