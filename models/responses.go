package models

// Response envelopes. Errors always carry the "erro" key with a
// human-readable message; successes carry "message" and/or the resource
// under its named key.

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// MessageResponse is the envelope for operations that return no resource,
// such as DELETE /despesas/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse wraps a user for /register and /login.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ExpenseResponse wraps a single expense for create and update operations.
type ExpenseResponse struct {
	Message string  `json:"message"`
	Despesa Expense `json:"despesa"`
}

// ExpenseListResponse wraps a user's expenses for GET /despesas.
type ExpenseListResponse struct {
	Despesas []Expense `json:"despesas"`
}

// MonthExpensesResponse wraps the month-scoped listing together with the
// arithmetic sum of the returned valores.
type MonthExpensesResponse struct {
	Despesas []Expense `json:"despesas"`
	Total    float64   `json:"total"`
}

// GoalResponse wraps a single goal for POST /metas and GET /metas/{ano}/{mes}.
type GoalResponse struct {
	Message string `json:"message,omitempty"`
	Meta    Goal   `json:"meta"`
}

// GoalListResponse wraps a user's goals for GET /metas.
type GoalListResponse struct {
	Metas []GoalSummary `json:"metas"`
}
