// SPDX-License-Identifier: Apache-2.0

// Package store implements the persistence layer: engine-specific connection
// handles and the SQL repositories behind the service layer's interfaces.
package store

import (
	"context"
	"fmt"

	"stockroom/internal/config"
	"stockroom/internal/logger"
)

// Storages bundles every repository over one shared connection handle.
// The composition root owns the lifecycle; call Close on shutdown.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	RawRepository      RawRepository
	PurchaseRepository PurchaseRepository

	db *DB
}

// NewStorages connects to the configured engine, applies pending migrations,
// and wires all repositories over the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ProductRepository:  NewProductRepository(db, log),
		RawRepository:      NewRawRepository(db, log),
		PurchaseRepository: NewPurchaseRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case config.EngineSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}
