// Package storage elige el backend de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/internal/infrastructure/memory"
	"github.com/jhoicas/comercio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// Storage repositorios, runner transaccional y ciclo de vida del backend elegido.
type Storage struct {
	Repos repository.Repositories
	Tx    repository.TxRunner
	Ping  func(ctx context.Context) error
	Close func()
}

// Open abre el backend configurado. Con postgres aplica las migraciones si DB_AUTO_MIGRATE está activo.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		log.Warn().Msg("storage en memoria: los datos se pierden al reiniciar")
		return &Storage{
			Repos: store.Repositories(),
			Tx:    memory.NewTxRunner(store),
			Ping:  func(context.Context) error { return nil },
			Close: func() {},
		}, nil
	case config.StoragePostgres:
		if cfg.AutoMigrate {
			if err := postgres.RunMigrations(ctx, cfg.ConnectionString(), log); err != nil {
				return nil, fmt.Errorf("migraciones: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Repos: postgres.NewRepositories(pool),
			Tx:    postgres.NewTxRunner(pool),
			Ping:  pool.Ping,
			Close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
