// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-name MongoDB database name
//	-db-connect-attempts initial connection attempts
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hasher password hashing algorithm (bcrypt, argon2id)
//	-bcrypt-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseName string
	var connectAttempts uint64
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var passwordHasher string
	var bcryptCost int
	var requestTimeout, shutdownTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseName, "db-name", "", "MongoDB database name")
	fs.Uint64Var(&connectAttempts, "db-connect-attempts", 0, "Initial database connection attempts")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hashing algorithm (bcrypt, argon2id)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			PasswordHasher: passwordHasher,
			BcryptCost:     bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:             databaseDSN,
				Name:            databaseName,
				ConnectAttempts: connectAttempts,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means "all interfaces". It validates the port range, checks
// IP correctness unless host is "localhost" or empty, and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
