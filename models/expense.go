package models

// Expense is a single spending record owned by a user.
//
// Data is a calendar date in ISO "YYYY-MM-DD" form; it is set at creation
// time and never changed by updates. Valor carries no sign constraint.
type Expense struct {
	// ID is the unique identifier assigned by the database on insert.
	ID int64 `json:"id"`

	// UserID is the owning user. Serialized only when set, because list
	// responses omit the owner (it is implied by the query).
	UserID int64 `json:"user_id,omitempty"`

	// Descricao is the free-text description of the expense.
	Descricao string `json:"descricao"`

	// Valor is the expense amount as a decimal number.
	Valor float64 `json:"valor"`

	// Data is the expense date in "YYYY-MM-DD" form.
	Data string `json:"data"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "despesas"
}

// ExpenseUpdate describes a partial update of a single expense.
// Only non-nil fields are written (Data is immutable and has no slot here).
type ExpenseUpdate struct {
	// ID is the identifier of the expense to update. Required.
	ID int64 `json:"id"`

	// UserID is the owner of the expense. Required; an (ID, UserID)
	// mismatch is reported as not-found.
	UserID int64 `json:"user_id"`

	// Descricao replaces the stored description when non-nil.
	Descricao *string `json:"descricao,omitempty"`

	// Valor replaces the stored amount when non-nil.
	Valor *float64 `json:"valor,omitempty"`
}

// Empty reports whether the update carries no field changes.
func (u ExpenseUpdate) Empty() bool {
	return u.Descricao == nil && u.Valor == nil
}
