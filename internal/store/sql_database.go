// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
)

// SQL dialects understood by [DB] and by goose.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is a *sql.DB bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the bound dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// placeholder returns the bind-variable style of the bound dialect.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == dialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// isUniqueViolation reports whether err is the dialect's unique-constraint
// violation.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case dialectPostgres:
		return isPostgresUniqueViolation(err)
	case dialectSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return false
	}
}
