// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// runUserRepositoryContract checks the behaviour every [UserRepository]
// backend must share. newRepo must return an empty repository.
func runUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	t.Helper()

	ids := utils.NewUUIDGenerator()
	newUser := func(email string) models.User {
		return models.User{
			UserID:       ids.Generate(),
			Email:        email,
			Name:         "Contract",
			PasswordHash: "$2a$04$contract",
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		}
	}

	t.Run("create and find", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		user := newUser("alice@example.com")

		created, err := repo.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, created.UserID)

		byEmail, err := repo.FindUserByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, byEmail.UserID)
		assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)
		assert.Equal(t, user.Name, byEmail.Name)
		assert.True(t, user.CreatedAt.Equal(byEmail.CreatedAt), "created_at %s != %s", user.CreatedAt, byEmail.CreatedAt)

		byID, err := repo.FindUserByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.CreateUser(ctx, newUser("bob@example.com"))
		require.NoError(t, err)

		_, err = repo.CreateUser(ctx, newUser("bob@example.com"))
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.FindUserByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.ErrorIs(t, repo.DeleteUser(ctx, "no-such-id"), ErrUserNotFound)
	})

	t.Run("delete frees email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		user := newUser("carol@example.com")

		_, err := repo.CreateUser(ctx, user)
		require.NoError(t, err)
		require.NoError(t, repo.DeleteUser(ctx, user.UserID))

		_, err = repo.FindUserByID(ctx, user.UserID)
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.CreateUser(ctx, newUser("carol@example.com"))
		assert.NoError(t, err)
	})

	t.Run("concurrent creates with same email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		const workers = 16
		var (
			wg         sync.WaitGroup
			successes  atomic.Int32
			duplicates atomic.Int32
			start      = make(chan struct{})
		)

		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start

				u := newUser("race@example.com")
				u.Name = fmt.Sprintf("racer-%d", i)

				_, err := repo.CreateUser(ctx, u)
				switch {
				case err == nil:
					successes.Add(1)
				case assert.ErrorIs(t, err, ErrEmailAlreadyExists):
					duplicates.Add(1)
				}
			}(i)
		}
		close(start)
		wg.Wait()

		assert.EqualValues(t, 1, successes.Load())
		assert.EqualValues(t, workers-1, duplicates.Load())
	})
}
