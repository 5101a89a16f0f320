package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/internal/utils"
	"github.com/apereira/controle-gastos/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence.
//
// Secrets are stored and compared verbatim: this mirrors the behavioral
// contract of the API and is deliberately not a security design.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that nome, email, cpf, and senha are all non-empty and
// delegates persistence to the UserRepository; the duplicate-identity check
// lives entirely in the storage layer's unique constraints.
//
// Returns the persisted user (with a server-assigned ID and without the
// secret) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrIdentityTaken (wrapped) when email or cpf is already
//     registered.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Nome == "" || user.Email == "" || user.CPF == "" || user.Senha == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user.
//
// The identifier matches either the email or the cpf; the secret must match
// the stored value exactly. Unknown identifier and wrong secret surface as
// the same ErrInvalidCredentials, so callers cannot enumerate identities.
func (a *authService) Login(ctx context.Context, identifier, senha string) (models.User, error) {
	log := logger.FromContext(ctx)

	if identifier == "" || senha == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		log.Err(err).Msg("user search by identifier failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if foundUser.Senha != senha {
		log.Error().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
