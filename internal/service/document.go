package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"docdash/internal/filter"
	"docdash/internal/logger"
	"docdash/internal/model"
	"docdash/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("document not found")
	ErrEmptyComment = errors.New("comment is empty")
)

// DocumentListResult is the service-level DTO for the document list panel.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	// Total is the size of the unfiltered collection.
	Total int  `json:"total"`
	Empty bool `json:"empty"`
}

// DocumentService defines the use cases of the document list.
type DocumentService interface {
	// List returns the documents matching c in collection order.
	List(ctx context.Context, c filter.DocumentCriteria) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// Download records a download request. No bytes are transferred.
	Download(ctx context.Context, id string) (*model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo repository.DocumentRepository
	log  *zap.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository, log *zap.Logger) DocumentService {
	return &documentService{repo: repo, log: log.Named("documents")}
}

func (s *documentService) List(ctx context.Context, c filter.DocumentCriteria) (*DocumentListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	items := filter.Documents(all, c)
	return &DocumentListResult{Items: items, Total: len(all), Empty: len(items) == 0}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete checks the document exists, then removes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove document: %w", err)
	}
	logger.For(ctx, s.log).Info("document deleted", zap.String("document_id", id), zap.String("name", doc.Name))
	return nil
}

func (s *documentService) Download(ctx context.Context, id string) (*model.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.For(ctx, s.log).Info("document download requested", zap.String("document_id", id), zap.String("name", doc.Name))
	return doc, nil
}
