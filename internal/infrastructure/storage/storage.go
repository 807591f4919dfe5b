// Package storage selects the record store configured for the server.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/config"
	"alcatelz/internal/domain/record"
	"alcatelz/internal/infrastructure/storage/cloudkit"
	"alcatelz/internal/infrastructure/storage/postgres"
)

// Storage is a record store with its lifecycle hooks.
type Storage interface {
	record.Repository

	Ping(ctx context.Context) error
	Close() error
}

// New opens the store named by cfg.StoreDriver.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres storage: %w", err)
		}
		return &pgStorage{
			RecordRepository: postgres.NewRecordRepository(db.Pool(), log),
			db:               db,
		}, nil
	case config.DriverCloudKit:
		client := &http.Client{Timeout: 30 * time.Second}
		return &ckStorage{
			Repository: cloudkit.NewRepository(cfg.CloudKit, client, log),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

type pgStorage struct {
	*postgres.RecordRepository
	db *postgres.Storage
}

func (s *pgStorage) Ping(ctx context.Context) error { return s.db.Ping(ctx) }
func (s *pgStorage) Close() error                   { return s.db.Close() }

type ckStorage struct {
	*cloudkit.Repository
}

// Ping для CloudKit не проверяет сеть: контейнер доступен только через запросы.
func (s *ckStorage) Ping(context.Context) error { return nil }
func (s *ckStorage) Close() error               { return nil }
