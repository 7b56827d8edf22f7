// Package backend opens the kv.Store selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"todo/internal/backend/filekv"
	"todo/internal/backend/rediskv"
	"todo/internal/backend/sqlitekv"
	"todo/internal/config"
	"todo/internal/kv"
)

// Open returns the kv.Store named by cfg.Env.Backend.
// Stores holding resources also implement io.Closer.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (kv.Store, error) {
	switch cfg.Env.Backend {
	case config.BackendFile, "":
		s, err := filekv.Open(cfg.FileStorePath(), log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlitekv.Open(ctx, cfg.SQLiteStorePath(), log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		opts, err := cfg.Env.Redis.Options()
		if err != nil {
			return nil, err
		}
		s, err := rediskv.Open(ctx, opts, cfg.Env.Redis.Prefix, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Env.Backend)
	}
}
