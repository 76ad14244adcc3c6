package mocks

import (
	"context"

	"docdash/internal/model"
	"docdash/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, documentID string) ([]model.Comment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) Add(ctx context.Context, documentID, content string) (*model.Comment, error) {
	args := m.Called(ctx, documentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

var _ service.CommentService = (*MockCommentService)(nil)
