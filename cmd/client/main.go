// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: go-auth-client [flags] <command>

commands:
  register   create an account (-name, -email, -password) and print the token
  login      log in (-email, -password) and print the token
  me         print the account behind -token
  version    print the server version

flags:
`

func main() {
	printBuildInfo()

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	address := fs.String("a", "localhost:8080", "Server address")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")
	token := fs.String("token", os.Getenv("AUTH_TOKEN"), "Bearer token for me (default $AUTH_TOKEN)")
	name := fs.String("name", "", "Display name for register")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", os.Getenv("AUTH_PASSWORD"), "Account password (default $AUTH_PASSWORD)")
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	log := logger.NewLogger("go-auth-client", logger.WithLevel(zerolog.InfoLevel), logger.WithOutput(os.Stderr))

	serverAdapter, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(*token)

	ctx := context.Background()

	switch cmd := fs.Arg(0); cmd {
	case "register":
		user, err := serverAdapter.Register(ctx, models.RegisterRequest{Name: *name, Email: *email, Password: *password})
		if err != nil {
			log.Fatal().Err(err).Msg("register")
		}
		printJSON(models.AuthResponse{Token: serverAdapter.Token(), User: user})
	case "login":
		user, err := serverAdapter.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
		if err != nil {
			log.Fatal().Err(err).Msg("login")
		}
		printJSON(models.AuthResponse{Token: serverAdapter.Token(), User: user})
	case "me":
		user, err := serverAdapter.CurrentUser(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("current user")
		}
		printJSON(models.CurrentUserResponse{User: user})
	case "version":
		version, err := serverAdapter.Version(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("version")
		}
		fmt.Println(version)
	default:
		log.Error().Str("command", cmd).Msg("unknown command")
		fs.Usage()
		os.Exit(2)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
