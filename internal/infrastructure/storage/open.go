// Package storage abre el backend de persistencia elegido por STORAGE_DRIVER y
// expone su repositorio con el tipo de id nativo del backend.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/workexperience-api/internal/domain/repository"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/memory"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/postgres"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/workexperience-api/pkg/config"
)

// Backend conexión abierta más su repositorio. Exactamente uno de IntRepo o
// StringRepo es distinto de nil.
type Backend struct {
	Driver     string
	IntRepo    repository.WorkExperienceRepository[int64]
	StringRepo repository.WorkExperienceRepository[string]
	closers    []func(context.Context) error
}

// Open conecta al backend configurado. El llamador debe invocar Close.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b := &Backend{Driver: cfg.Storage.Driver}
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.IntRepo = sqlite.NewWorkExperienceRepository(db)
		b.closers = append(b.closers, func(context.Context) error { return db.Close() })

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		b.IntRepo = postgres.NewWorkExperienceRepository(pool)
		b.closers = append(b.closers, func(context.Context) error { pool.Close(); return nil })

	case config.DriverMongoDB:
		client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		b.StringRepo = mongodb.NewWorkExperienceRepository(client.Database(cfg.Mongo.Database))
		b.closers = append(b.closers, client.Disconnect)

	case config.DriverMemory:
		b.IntRepo = memory.NewWorkExperienceRepository()

	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
	}
	return b, nil
}

// Close libera las conexiones del backend.
func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	for _, c := range b.closers {
		if err := c(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
