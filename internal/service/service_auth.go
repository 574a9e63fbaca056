// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
	"golang.org/x/crypto/bcrypt"
)

// tokenSettings holds what is needed to issue and verify API tokens.
type tokenSettings struct {
	signKey  string
	issuer   string
	lifetime time.Duration
}

// authService registers API users, checks their credentials against bcrypt
// hashes and issues HS256 bearer tokens. All state is read-only after
// construction.
type authService struct {
	users    store.UserRepository
	tokens   tokenSettings
	hashCost int
	logger   *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users: userRepository,
		tokens: tokenSettings{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			lifetime: cfg.TokenDuration,
		},
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
	}
}

// RegisterUser stores a new account. Only the password hash reaches the
// repository; a taken login surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkCredentials(user); err != nil {
		log.Warn().Str("login", user.Login).Msg("registration rejected: incomplete credentials")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	created, err := a.users.CreateUser(ctx, models.User{Login: user.Login, PasswordHash: string(hash)})
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("error registering user")
		return models.User{}, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login returns the stored account when login and password match.
// Unknown logins surface as store.ErrNoUserWasFound, mismatches as
// ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkCredentials(user); err != nil {
		log.Warn().Str("login", user.Login).Msg("login rejected: incomplete credentials")
		return models.User{}, err
	}

	stored, err := a.users.FindUserByLogin(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("error looking up user")
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(user.Password)); {
	case err == nil:
		return stored, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		log.Warn().Int64("user_id", stored.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	default:
		log.Err(err).Str("func", "*authService.Login").Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
}

func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokens.issuer, user.UserID, a.tokens.lifetime, a.tokens.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken reports every verification failure (signature, issuer,
// expiry, malformed input) as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokens.signKey, a.tokens.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func checkCredentials(user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}
	return nil
}
