package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  seq          BIGSERIAL   UNIQUE,
  id           TEXT        PRIMARY KEY,
  name         TEXT        NOT NULL,
  type         TEXT        NOT NULL,
  size         TEXT        NOT NULL,
  uploaded_by  TEXT        NOT NULL,
  uploaded_at  TIMESTAMPTZ NOT NULL,
  tags         JSONB       NOT NULL DEFAULT '[]'::jsonb
);`,
	},
	{
		Name: "create_index_documents_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_name ON documents (name);`,
	},
	{
		Name: "create_table_comments",
		SQL: `CREATE TABLE IF NOT EXISTS comments (
  seq             BIGSERIAL   UNIQUE,
  id              TEXT        NOT NULL,
  document_id     TEXT        NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  author_name     TEXT        NOT NULL,
  author_avatar   TEXT        NOT NULL DEFAULT '',
  author_initials TEXT        NOT NULL DEFAULT '',
  content         TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL,
  PRIMARY KEY (document_id, id)
);`,
	},
	{
		Name: "create_table_activity_logs",
		SQL: `CREATE TABLE IF NOT EXISTS activity_logs (
  seq            BIGSERIAL   UNIQUE,
  id             TEXT        PRIMARY KEY,
  user_name      TEXT        NOT NULL,
  user_avatar    TEXT        NOT NULL DEFAULT '',
  user_initials  TEXT        NOT NULL DEFAULT '',
  action         TEXT        NOT NULL CHECK (action IN ('upload', 'download', 'delete', 'view', 'comment')),
  document_name  TEXT        NOT NULL,
  occurred_at    TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_index_activity_logs_occurred_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activity_logs_occurred_at ON activity_logs (occurred_at);`,
	},
	{
		Name: "create_table_system_logs",
		SQL: `CREATE TABLE IF NOT EXISTS system_logs (
  seq        BIGSERIAL   UNIQUE,
  id         TEXT        PRIMARY KEY,
  level      TEXT        NOT NULL CHECK (level IN ('info', 'warning', 'error')),
  message    TEXT        NOT NULL,
  logged_at  TIMESTAMPTZ NOT NULL
);`,
	},
}

// EnsureMigrated checks if the 'documents' table exists and creates the schema if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check")

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("msg", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
