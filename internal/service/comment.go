package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"docdash/internal/logger"
	"docdash/internal/model"
	"docdash/internal/repository"
)

// CommentService manages the comment thread of a document.
type CommentService interface {
	List(ctx context.Context, documentID string) ([]model.Comment, error)

	// Add appends content, stored as typed, to the thread of documentID.
	// Whitespace-only content is rejected with ErrEmptyComment.
	Add(ctx context.Context, documentID, content string) (*model.Comment, error)
}

type commentService struct {
	// mu serialises numbering so two adds never derive the same comment id.
	mu sync.Mutex

	docs     repository.DocumentRepository
	comments repository.CommentRepository
	author   model.Author
	now      func() time.Time
	log      *zap.Logger
}

// NewCommentService constructs a CommentService that signs new comments as author.
func NewCommentService(docs repository.DocumentRepository, comments repository.CommentRepository, author model.Author, log *zap.Logger) CommentService {
	return &commentService{
		docs:     docs,
		comments: comments,
		author:   author,
		now:      time.Now,
		log:      log.Named("comments"),
	}
}

func (s *commentService) List(ctx context.Context, documentID string) ([]model.Comment, error) {
	if err := s.ensureDocument(ctx, documentID); err != nil {
		return nil, err
	}
	items, err := s.comments.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return items, nil
}

func (s *commentService) Add(ctx context.Context, documentID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}
	if err := s.ensureDocument(ctx, documentID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	thread, err := s.comments.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	c := model.Comment{
		ID:         fmt.Sprintf("comment-%d", len(thread)+1),
		DocumentID: documentID,
		Author:     s.author,
		Content:    content,
		Timestamp:  s.now(),
	}
	stored, err := s.comments.Add(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	logger.For(ctx, s.log).Debug("comment added", zap.String("document_id", documentID), zap.String("comment_id", stored.ID))
	return stored, nil
}

func (s *commentService) ensureDocument(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
