package postgres

import (
	"database/sql"

	"docdash/internal/repository"
)

// NewSet returns PostgreSQL-backed repositories sharing db.
func NewSet(db *sql.DB) repository.Set {
	return repository.Set{
		Documents:  NewDocumentPostgres(db),
		Comments:   NewCommentPostgres(db),
		Activity:   NewActivityPostgres(db),
		SystemLogs: NewSystemLogPostgres(db),
	}
}
