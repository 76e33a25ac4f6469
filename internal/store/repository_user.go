// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository] for
// both PostgreSQL and SQLite. It works against the "users" table whose
// UNIQUE constraint on email is the only guard against duplicate accounts.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the row as stored.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.placeholder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail returns the user with the given normalized email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.placeholder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUserBy").Str("by", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteUser removes the user with the given id.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.placeholder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
