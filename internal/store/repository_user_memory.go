// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// userMemoryRepository keeps users in process memory. A single mutex guards
// both indexes, so the email check and the insert are one atomic step.
type userMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // email → user id
}

// NewUserMemoryRepository returns an empty in-memory [UserRepository].
func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *userMemoryRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	r.byID[user.UserID] = user
	r.byEmail[user.Email] = user.UserID

	return user, nil
}

func (r *userMemoryRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.byID[userID], nil
}

func (r *userMemoryRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *userMemoryRepository) DeleteUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.byID, userID)
	delete(r.byEmail, user.Email)
	return nil
}
