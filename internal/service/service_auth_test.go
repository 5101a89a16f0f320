package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByIdentifierFn func(ctx context.Context, identifier string) (models.User, error)
	userExistsFn           func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return m.findUserByIdentifierFn(ctx, identifier)
}

func (m *mockUserRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	return m.userExistsFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "controle-gastos-test",
	TokenDuration: time.Hour,
	Version:       "test",
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig, logger.Nop())
}

var validNewUser = models.User{
	Nome:  "Ana Pereira",
	Email: "ana@example.com",
	CPF:   "12345678901",
	Senha: "segredo",
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 1
			user.Senha = ""
			return user, nil
		},
	}

	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), validNewUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Empty(t, registered.Senha, "echoed user must not carry the secret")
}

func TestRegisterUser_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{"empty nome", models.User{Email: "a@b.c", CPF: "1", Senha: "s"}},
		{"empty email", models.User{Nome: "Ana", CPF: "1", Senha: "s"}},
		{"empty cpf", models.User{Nome: "Ana", Email: "a@b.c", Senha: "s"}},
		{"empty senha", models.User{Nome: "Ana", Email: "a@b.c", CPF: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_IdentityTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrIdentityTaken
		},
	}

	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validNewUser)
	assert.ErrorIs(t, err, store.ErrIdentityTaken)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIdentifierFn: func(_ context.Context, identifier string) (models.User, error) {
			assert.Equal(t, "ana@example.com", identifier)
			stored := validNewUser
			stored.ID = 1
			return stored, nil
		},
	}

	svc := newTestAuthService(repo)

	found, err := svc.Login(context.Background(), "ana@example.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.Empty(t, found.Senha, "echoed user must not carry the secret")
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "segredo")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "ana@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIdentifierFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "segredo")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongSecret(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIdentifierFn: func(_ context.Context, _ string) (models.User, error) {
			return validNewUser, nil
		},
	}

	svc := newTestAuthService(repo)

	// wrong secret must be indistinguishable from an unknown identifier
	_, err := svc.Login(context.Background(), "ana@example.com", "errado")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageErrorIsNotCredentialsError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIdentifierFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db unavailable")
		},
	}

	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ana@example.com", "segredo")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// CreateToken
// ─────────────────────────────────────────────

func TestCreateToken_Success(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{ID: 42})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
}

func TestCreateToken_EmptySignKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 42})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
