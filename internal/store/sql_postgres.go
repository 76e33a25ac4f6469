// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// NewConnectPostgres opens a pgx-backed *sql.DB, pings it with retries and
// applies migrations.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = pingWithRetry(ctx, cfg.ConnectAttempts, conn.PingContext, isRetryablePostgresError)
	if err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:      conn,
		dialect: dialectPostgres,
		logger:  log,
	}

	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		return nil, err
	}

	return db, nil
}

// isRetryablePostgresError reports whether a failed ping is worth retrying.
// Errors that do not come from the server itself (refused connections,
// timeouts) are retried, since the server may still be starting.
func isRetryablePostgresError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return true
	}
	return NewPostgresErrorClassifier().Classify(err) == Retryable
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isPostgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
