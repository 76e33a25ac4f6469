// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// DSN selecting the in-memory backend.
const memoryDSN = "memory"

// Storages aggregates the repositories used by the service layer together
// with the connection that backs them.
type Storages struct {
	UserRepository UserRepository

	backend string
	close   func(ctx context.Context) error
}

// NewStorages selects a backend by the scheme of cfg.DB.DSN, connects to it
// and builds the repositories:
//
//	mongodb://, mongodb+srv://     MongoDB
//	postgres://, postgresql://     PostgreSQL
//	sqlite://<path>, file:<path>   SQLite
//	memory                         in-process maps
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	switch {
	case dsn == memoryDSN:
		log.Warn().Msg("using in-memory storage: accounts are lost on restart")
		return &Storages{
			UserRepository: NewUserMemoryRepository(),
			backend:        memoryDSN,
			close:          func(context.Context) error { return nil },
		}, nil

	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		repo, err := NewUserMongoRepository(ctx, db, log)
		if err != nil {
			_ = db.Close(ctx)
			return nil, err
		}
		return &Storages{UserRepository: repo, backend: "mongodb", close: db.Close}, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log), nil

	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("%w: unknown scheme", ErrUnsupportedDSN)
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		backend:        db.dialect,
		close: func(context.Context) error {
			return db.Close()
		},
	}
}

// Backend names the selected storage backend.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
