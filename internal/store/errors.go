package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityTaken is returned when an attempt to register a new user
	// fails because the email or CPF already belongs to an existing account.
	// The duplicate-identity check is delegated entirely to the UNIQUE
	// constraints on users(email) and users(cpf), so concurrent
	// registrations surface as this error instead of silent duplication.
	ErrIdentityTaken = errors.New("email or cpf already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrExpenseNotFound is returned when a query, update, or delete targets
	// an expense (identified by id and user_id) that does not exist in the
	// database. An existing expense owned by a different user surfaces the
	// same way, so ownership is never leaked.
	ErrExpenseNotFound = errors.New("expense was not found")

	// ErrGoalNotFound is returned when a (user_id, ano, mes) lookup matches
	// no goal row.
	ErrGoalNotFound = errors.New("goal was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with an invalid field set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
