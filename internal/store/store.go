// Package store opens the entity store selected by configuration.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"docdash/internal/config"
	"docdash/internal/database"
	"docdash/internal/database/migration"
	"docdash/internal/repository"
	"docdash/internal/repository/memory"
	"docdash/internal/repository/postgres"
	"docdash/internal/seed"
)

// Opened is a ready-to-use store. DB is nil for the in-memory backend.
type Opened struct {
	Repos repository.Set
	DB    *sql.DB
}

// Close releases the database handle, if any.
func (o *Opened) Close() error {
	if o.DB == nil {
		return nil
	}
	return o.DB.Close()
}

// OpenTimeout bounds connecting, migrating and seeding at startup.
const OpenTimeout = 30 * time.Second

var (
	newPostgres    = database.NewPostgres
	ensureMigrated = migration.EnsureMigrated
)

// Open builds the store named by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*Opened, error) {
	loc := cfg.Location()

	switch cfg.Store.Driver {
	case "", "memory":
		var s *memory.Store
		if cfg.Store.Seed {
			s = memory.NewSeededStore(loc)
		} else {
			s = memory.NewStore()
		}
		log.Info("store_opened", zap.String("driver", "memory"), zap.Bool("seeded", cfg.Store.Seed))
		return &Opened{Repos: s.Set()}, nil

	case "postgres":
		db, err := newPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := ensureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}

		repos := postgres.NewSet(db)
		seeded := false
		if cfg.Store.Seed {
			seeded, err = seed.Load(ctx, repos, loc)
			if err != nil {
				db.Close()
				return nil, err
			}
		}
		log.Info("store_opened", zap.String("driver", "postgres"), zap.Bool("seeded", seeded))
		return &Opened{Repos: repos, DB: db}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
