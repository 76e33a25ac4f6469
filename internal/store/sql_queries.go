// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const usersTable = "users"

var userColumns = []string{"user_id", "email", "name", "password_hash", "created_at"}

// buildInsertUserQuery builds an INSERT of every user column that returns
// the stored row.
func buildInsertUserQuery(format sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.Name, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id, email, name, password_hash, created_at").
		PlaceholderFormat(format).
		ToSql()
}

// buildSelectUserQuery builds a single-row SELECT filtered by column = value.
func buildSelectUserQuery(format sq.PlaceholderFormat, column string, value any) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		PlaceholderFormat(format).
		ToSql()
}

func buildDeleteUserQuery(format sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(format).
		ToSql()
}
