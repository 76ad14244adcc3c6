package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"docdash/internal/model"
	"docdash/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, name, type, size, uploaded_by, uploaded_at, tags`

// List returns every document in insertion order.
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single document by its ID.
func (r *DocumentPostgres) GetByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Add inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Add(ctx context.Context, doc model.Document) (*model.Document, error) {
	tags, err := json.Marshal(nonNil(doc.Tags))
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	const q = `
		INSERT INTO documents (id, name, type, size, uploaded_by, uploaded_at, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Name,
		string(doc.Type),
		doc.Size,
		doc.UploadedBy,
		doc.UploadedAt,
		string(tags),
	)
	return scanDocument(row)
}

// Remove deletes a document and its comment thread. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Remove(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(s rowScanner) (*model.Document, error) {
	var (
		d    model.Document
		typ  string
		tags []byte
	)
	if err := s.Scan(
		&d.ID,
		&d.Name,
		&typ,
		&d.Size,
		&d.UploadedBy,
		&d.UploadedAt,
		&tags,
	); err != nil {
		return nil, err
	}
	d.Type = model.DocumentType(typ)
	d.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &d.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %s: %w", d.ID, err)
		}
	}
	return &d, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
