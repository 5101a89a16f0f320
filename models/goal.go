package models

// Goal is a monthly spending target. At most one goal exists per
// (user, ano, mes) triple; writes go through upsert semantics.
type Goal struct {
	// ID is the surrogate key assigned by the database. Internal only.
	ID int64 `json:"-"`

	// UserID is the owning user.
	UserID int64 `json:"user_id"`

	// Ano is the calendar year the goal applies to.
	Ano int `json:"ano"`

	// Mes is the calendar month the goal applies to, 1 through 12.
	Mes int `json:"mes"`

	// Valor is the spending target amount.
	Valor float64 `json:"valor"`
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "metas"
}

// Summary is the reduced wire form used when listing a user's goals:
// the owner is implied by the query and the surrogate key is internal.
func (g Goal) Summary() GoalSummary {
	return GoalSummary{Ano: g.Ano, Mes: g.Mes, Valor: g.Valor}
}

// GoalSummary is the (ano, mes, valor) projection of a Goal.
type GoalSummary struct {
	Ano   int     `json:"ano"`
	Mes   int     `json:"mes"`
	Valor float64 `json:"valor"`
}
