// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userMongoRepository is the document-store implementation of
// [UserRepository]. Documents use the account id as _id and a unique index
// on email guards against duplicate accounts.
type userMongoRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserMongoRepository returns a [UserRepository] over the "users"
// collection of db, creating the unique email index first.
func NewUserMongoRepository(ctx context.Context, db *MongoDB, log *logger.Logger) (UserRepository, error) {
	collection := db.Collection(models.User{}.TableName())

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Err(err).Str("func", "NewUserMongoRepository").Msg("failed to create user indexes")
		return nil, fmt.Errorf("failed to create user indexes: %w", err)
	}

	log.Debug().Msg("creating user mongo repository")
	return &userMongoRepository{collection: collection, logger: log}, nil
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("func", "*userMongoRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userMongoRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

func (r *userMongoRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userMongoRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userMongoRepository.findOne").Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

func (r *userMongoRepository) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userMongoRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
