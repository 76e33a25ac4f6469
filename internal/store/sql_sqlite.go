// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens an SQLite database from a "sqlite://<path>" or
// "file:<path>" DSN and applies migrations. The file is created if missing.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDataSource(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer keeps the unique check and insert serialized
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:      conn,
		dialect: dialectSQLite,
		logger:  log,
	}

	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error applying migrations")
		return nil, err
	}

	return db, nil
}

// sqliteDataSource turns a DSN into a go-sqlite3 data source name with a
// busy timeout, so concurrent writers wait instead of failing with
// SQLITE_BUSY.
func sqliteDataSource(dsn string) string {
	source := strings.TrimPrefix(dsn, sqliteScheme)
	if !strings.HasPrefix(source, "file:") {
		source = "file:" + source
	}

	separator := "?"
	if strings.Contains(source, "?") {
		separator = "&"
	}
	if !strings.Contains(source, "_busy_timeout") {
		source += separator + "_busy_timeout=5000"
	}

	return source
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
