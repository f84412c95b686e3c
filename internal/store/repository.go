package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
)

// NewRepository builds the [Repository] selected by cfg.Driver. SQL drivers
// are migrated before the repository is returned.
func NewRepository(ctx context.Context, cfg config.Storage, log *logger.Logger) (Repository, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating repository...")

	switch cfg.Driver {
	case config.StorageDriverMemory:
		return NewKeyValueRepository(NewMemoryKV(), log), nil

	case config.StorageDriverFile:
		kv, err := NewFileKV(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return NewKeyValueRepository(kv, log), nil

	case config.StorageDriverRedis:
		kv, err := NewRedisKV(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return NewKeyValueRepository(kv, log), nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		db, err := connectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLRepository(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func connectSQL(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.StorageDriverSQLite {
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	return db, nil
}
