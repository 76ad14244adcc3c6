package postgres

import (
	"context"
	"database/sql"

	"docdash/internal/model"
	"docdash/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

// ListByDocument returns the thread of a document in insertion order.
func (r *CommentPostgres) ListByDocument(ctx context.Context, documentID string) ([]model.Comment, error) {
	const q = `
		SELECT id, document_id, author_name, author_avatar, author_initials, content, created_at
		FROM comments
		WHERE document_id = $1
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID,
			&c.DocumentID,
			&c.Author.Name,
			&c.Author.Avatar,
			&c.Author.Initials,
			&c.Content,
			&c.Timestamp,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts a comment and returns the stored record.
func (r *CommentPostgres) Add(ctx context.Context, c model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (id, document_id, author_name, author_avatar, author_initials, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, q,
		c.ID,
		c.DocumentID,
		c.Author.Name,
		c.Author.Avatar,
		c.Author.Initials,
		c.Content,
		c.Timestamp,
	); err != nil {
		return nil, err
	}
	stored := c
	return &stored, nil
}

// Count returns the number of stored comments.
func (r *CommentPostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
