package models

// User represents an account entity used for registration and login.
// Wire field names follow the public API contract.
type User struct {
	// ID is the unique identifier assigned by the database on insert.
	// Immutable after creation.
	ID int64 `json:"id"`

	// Nome is the display name of the user.
	Nome string `json:"nome"`

	// Email is the unique e-mail address of the user.
	// Together with CPF it forms the identity pair checked at registration.
	Email string `json:"email"`

	// CPF is the unique national identity number of the user.
	CPF string `json:"cpf"`

	// Senha is the user's secret, stored and compared verbatim.
	// Accepted on input but never serialized back to clients.
	Senha string `json:"senha,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user with the secret cleared, safe to echo
// back in API responses.
func (u User) Public() User {
	u.Senha = ""
	return u
}
