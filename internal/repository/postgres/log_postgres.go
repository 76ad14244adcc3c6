package postgres

import (
	"context"
	"database/sql"

	"docdash/internal/model"
	"docdash/internal/repository"
)

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

// List returns the activity log in insertion order.
func (r *ActivityPostgres) List(ctx context.Context) ([]model.ActivityLogEntry, error) {
	const q = `
		SELECT id, user_name, user_avatar, user_initials, action, document_name, occurred_at
		FROM activity_logs
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ActivityLogEntry, 0)
	for rows.Next() {
		var (
			e      model.ActivityLogEntry
			action string
		)
		if err := rows.Scan(
			&e.ID,
			&e.User.Name,
			&e.User.Avatar,
			&e.User.Initials,
			&action,
			&e.DocumentName,
			&e.Timestamp,
		); err != nil {
			return nil, err
		}
		e.Action = model.ActivityAction(action)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Add appends an entry to the activity log.
func (r *ActivityPostgres) Add(ctx context.Context, e model.ActivityLogEntry) (*model.ActivityLogEntry, error) {
	const q = `
		INSERT INTO activity_logs (id, user_name, user_avatar, user_initials, action, document_name, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, q,
		e.ID,
		e.User.Name,
		e.User.Avatar,
		e.User.Initials,
		string(e.Action),
		e.DocumentName,
		e.Timestamp,
	); err != nil {
		return nil, err
	}
	stored := e
	return &stored, nil
}

// SystemLogPostgres is a PostgreSQL implementation of repository.SystemLogRepository.
type SystemLogPostgres struct {
	db *sql.DB
}

// NewSystemLogPostgres creates a new SystemLogPostgres repository.
func NewSystemLogPostgres(db *sql.DB) *SystemLogPostgres {
	return &SystemLogPostgres{db: db}
}

var _ repository.SystemLogRepository = (*SystemLogPostgres)(nil)

// List returns the system log in insertion order.
func (r *SystemLogPostgres) List(ctx context.Context) ([]model.SystemLogEntry, error) {
	const q = `SELECT id, level, message, logged_at FROM system_logs ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SystemLogEntry, 0)
	for rows.Next() {
		var (
			e     model.SystemLogEntry
			level string
		)
		if err := rows.Scan(&e.ID, &level, &e.Message, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Level = model.LogLevel(level)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Add appends an entry to the system log.
func (r *SystemLogPostgres) Add(ctx context.Context, e model.SystemLogEntry) (*model.SystemLogEntry, error) {
	const q = `INSERT INTO system_logs (id, level, message, logged_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, q, e.ID, string(e.Level), e.Message, e.Timestamp); err != nil {
		return nil, err
	}
	stored := e
	return &stored, nil
}
