// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// dummyPassword is hashed at construction and verified against whenever login
// hits an unknown email, so both failure paths cost one hash verification.
const dummyPassword = "go-auth-keeper/dummy-password"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It owns no mutable state; all persistence goes through the UserRepository whose unique email constraint
// is the only guard against concurrent duplicate registrations.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies login attempts.
	hasher crypto.PasswordHasher

	// issuer mints tokens on register/login and verifies them on lookup.
	issuer crypto.TokenIssuer

	// validator checks request payloads after email normalization.
	validator validators.Validator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	ids idGenerator
	now func() time.Time

	// dummyHash is the hash of dummyPassword, verified on unknown emails.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators. The token
// lifetime is taken from cfg.TokenDuration.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	issuer crypto.TokenIssuer,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Err(err).Msg("error computing dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		validator:      validator,
		tokenDuration:  cfg.TokenDuration,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Register creates an account for req and issues its first token.
//
// The email is normalized before validation and storage. Returns:
//   - ErrValidation if a field is missing or the email is malformed;
//   - ErrConflict if the normalized email is already registered;
//   - a wrapped internal error for any other failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = utils.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrEmptyPassword) {
			log.Debug().Err(err).Str("email", req.Email).Msg("password rejected by hasher")
			return models.AuthResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("email", req.Email).Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC().Truncate(time.Millisecond),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", req.Email).Msg("registration rejected: account already exists")
			return models.AuthResult{}, ErrConflict
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issuer.Issue(created.UserID, a.tokenDuration)
	if err != nil {
		log.Err(err).Str("user_id", created.UserID).Msg("error issuing token")
		return models.AuthResult{}, fmt.Errorf("error issuing token: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Str("email", created.Email).Msg("user registered")

	return models.AuthResult{
		Token:   token,
		User:    created.Public(),
		Created: true,
	}, nil
}

// Login authenticates req and issues a fresh token.
//
// Unknown email and wrong password both return ErrAuthentication, and both
// run one password verification. Missing fields return ErrValidation.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = utils.NormalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(req.Password, a.dummyHash)
			log.Info().Str("email", req.Email).Msg("login failed")
			return models.AuthResult{}, ErrAuthentication
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Str("email", req.Email).Msg("login failed")
		return models.AuthResult{}, ErrAuthentication
	}

	token, err := a.issuer.Issue(user.UserID, a.tokenDuration)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error issuing token")
		return models.AuthResult{}, fmt.Errorf("error issuing token: %w", err)
	}

	log.Debug().Str("user_id", user.UserID).Msg("user logged in")

	return models.AuthResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

// CurrentUser verifies token and returns the account it names.
//
// Expired, invalid and orphaned tokens all return ErrAuthentication.
func (a *authService) CurrentUser(ctx context.Context, token string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	claims, err := a.issuer.Verify(token)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.PublicUser{}, ErrAuthentication
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("user_id", claims.UserID()).Msg("token subject no longer exists")
			return models.PublicUser{}, ErrAuthentication
		}
		log.Err(err).Str("user_id", claims.UserID()).Msg("user search by id failed")
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}
