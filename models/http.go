package models

// Request bodies are decoded into the typed structs below instead of untyped
// maps. Required fields are pointers so that "absent" and "zero value" can be
// told apart during validation; optional fields stay nil when omitted.

// RegisterRequest is the body of POST /register.
// All four fields are required.
type RegisterRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	CPF   *string `json:"cpf"`
	Senha *string `json:"senha"`
}

// LoginRequest is the body of POST /login. Identificador matches either the
// user's email or CPF.
type LoginRequest struct {
	Identificador *string `json:"identificador"`
	Senha         *string `json:"senha"`
}

// CreateExpenseRequest is the body of POST /despesas.
// All four fields are required.
type CreateExpenseRequest struct {
	UserID    *int64   `json:"user_id"`
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
	Data      *string  `json:"data"`
}

// UpdateExpenseRequest is the body of PUT /despesas/{id}.
// UserID is required; Descricao and Valor are optional — a nil field leaves
// the stored value untouched.
type UpdateExpenseRequest struct {
	UserID    *int64   `json:"user_id"`
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
}

// UpsertGoalRequest is the body of POST /metas.
// All four fields are required.
type UpsertGoalRequest struct {
	UserID *int64   `json:"user_id"`
	Ano    *int     `json:"ano"`
	Mes    *int     `json:"mes"`
	Valor  *float64 `json:"valor"`
}
