package repository

import (
	"context"
	"errors"

	"docdash/internal/model"
)

// ErrNotFound is returned by GetByID when no entity has the requested id.
var ErrNotFound = errors.New("entity not found")

// Repository is the store contract shared by every entity collection.
// Implementations keep insertion order and never hand out references to their internal state.
type Repository[T any] interface {
	// List returns every entity in stored order.
	List(ctx context.Context) ([]T, error)

	// GetByID returns a single entity or ErrNotFound.
	GetByID(ctx context.Context, id string) (*T, error)

	// Add appends an entity and returns the stored copy.
	Add(ctx context.Context, item T) (*T, error)

	// Remove deletes an entity by id. It returns nil if the entity did not exist.
	Remove(ctx context.Context, id string) error
}

// DocumentRepository stores the dashboard's documents.
type DocumentRepository interface {
	Repository[model.Document]
}

// CommentRepository stores comment threads, one per document.
type CommentRepository interface {
	// ListByDocument returns a document's comments in the order they were added.
	ListByDocument(ctx context.Context, documentID string) ([]model.Comment, error)

	// Add appends a comment to its document's thread.
	Add(ctx context.Context, c model.Comment) (*model.Comment, error)

	// Count returns the number of comments across all documents.
	Count(ctx context.Context) (int, error)
}

// ActivityRepository stores the append-only activity log.
type ActivityRepository interface {
	List(ctx context.Context) ([]model.ActivityLogEntry, error)
	Add(ctx context.Context, e model.ActivityLogEntry) (*model.ActivityLogEntry, error)
}

// SystemLogRepository stores the read-only system log.
type SystemLogRepository interface {
	List(ctx context.Context) ([]model.SystemLogEntry, error)
	Add(ctx context.Context, e model.SystemLogEntry) (*model.SystemLogEntry, error)
}

// Set groups the repositories a backend provides.
type Set struct {
	Documents  DocumentRepository
	Comments   CommentRepository
	Activity   ActivityRepository
	SystemLogs SystemLogRepository
}
