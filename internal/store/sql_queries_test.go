// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := testUser()

	tests := []struct {
		name      string
		format    sq.PlaceholderFormat
		wantQuery string
	}{
		{
			name:      "postgres placeholders",
			format:    sq.Dollar,
			wantQuery: "INSERT INTO users (user_id,email,name,password_hash,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING user_id, email, name, password_hash, created_at",
		},
		{
			name:      "sqlite placeholders",
			format:    sq.Question,
			wantQuery: "INSERT INTO users (user_id,email,name,password_hash,created_at) VALUES (?,?,?,?,?) RETURNING user_id, email, name, password_hash, created_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUserQuery(tt.format, user)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{user.UserID, user.Email, user.Name, user.PasswordHash, user.CreatedAt}, args)
		})
	}
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(sq.Dollar, "email", "john@example.com")
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, email, name, password_hash, created_at FROM users WHERE email = $1 LIMIT 1", query)
	assert.Equal(t, []any{"john@example.com"}, args)
}

func Test_buildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(sq.Question, "u1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM users WHERE user_id = ?", query)
	assert.Equal(t, []any{"u1"}, args)
}
