// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/server"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageCloseTimeout = 5 * time.Second

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("password_hasher", cfg.App.PasswordHasher).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storageCloseTimeout)
		defer cancel()
		if err := storages.Close(closeCtx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	services, err := service.NewServices(storages, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("storage", storages.Backend()).Msg("starting server")
	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
