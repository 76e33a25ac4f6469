// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// MongoDB is a connected MongoDB client bound to one database.
type MongoDB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to the MongoDB deployment at cfg.DSN and pings
// the primary with retries. cfg.Name selects the database.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo client")
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}

	err = pingWithRetry(ctx, cfg.ConnectAttempts, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}, func(error) bool {
		return true
	})
	if err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &MongoDB{
		Database: client.Database(cfg.Name),
		client:   client,
		logger:   log,
	}, nil
}

// Close disconnects the underlying client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
