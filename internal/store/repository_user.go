package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID. The echoed user never carries
// the secret: the RETURNING clause deliberately excludes the senha column.
//
// Duplicate identity is not pre-checked; the INSERT relies on the UNIQUE
// constraints on email and cpf, which turns a concurrent-registration race
// into a detectable conflict.
//
// Error handling:
//   - unique-constraint violation → [ErrIdentityTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Nome, user.Email, user.CPF, user.Senha)

	var created models.User
	if err := row.Scan(&created.ID, &created.Nome, &created.Email, &created.CPF); err != nil {
		if r.db.constraints.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("email or cpf already registered")
			return models.User{}, ErrIdentityTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByIdentifier retrieves the user whose email OR cpf equals the given
// identifier. The returned record includes the stored secret so that the
// service layer can compare credentials.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByIdentifier, identifier)

	if err := row.Scan(&foundUser.ID, &foundUser.Nome, &foundUser.Email, &foundUser.CPF, &foundUser.Senha); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UserExists reports whether a user with the given id exists.
func (r *userRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, userExists, userID)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Msg("error: scanning error")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
