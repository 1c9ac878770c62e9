package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"libmgmt/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open builds the repository selected by cfg.Backend. The returned close
// function releases any connection the backend holds and is never nil.
func Open(ctx context.Context, cfg config.Store, logger *slog.Logger) (BookRepository, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "", "memory":
		logger.Info("using in-memory book store")
		return NewMemoryStore(), noop, nil

	case "postgres":
		pool, err := openPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using postgres book store", "dsn", RedactDSN(cfg.DSN))
		return NewBookPG(pool, cfg.Timeout), pool.Close, nil

	case "sqlite":
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using sqlite book store", "path", cfg.SQLitePath)
		return NewBookSQLite(db), func() { _ = db.Close() }, nil

	case "redis":
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using redis book store", "addr", client.Options().Addr, "key", cfg.RedisKey)
		return NewBookRedis(client, cfg.RedisKey), func() { _ = client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func openPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}
