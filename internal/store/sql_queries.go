package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/apereira/controle-gastos/models"
)

// Queries use $N ordinal placeholders, which both the pgx and the
// go-sqlite3 driver accept, so a single query set serves both backends.
const (
	createUser = `INSERT INTO users (nome, email, cpf, senha)
    VALUES ($1, $2, $3, $4)
    RETURNING id, nome, email, cpf;`

	findUserByIdentifier = `SELECT id, nome, email, cpf, senha
    FROM users
    WHERE email = $1 OR cpf = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	createExpense = `INSERT INTO despesas (user_id, descricao, valor, data)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, descricao, valor, data;`

	listExpenses = `SELECT id, descricao, valor, data
    FROM despesas
    WHERE user_id = $1;`

	listExpensesByDateRange = `SELECT id, descricao, valor, data
    FROM despesas
    WHERE user_id = $1 AND data >= $2 AND data < $3;`

	getExpenseByOwner = `SELECT id, descricao, valor, data
    FROM despesas
    WHERE id = $1 AND user_id = $2;`

	deleteExpense = `DELETE FROM despesas
    WHERE id = $1 AND user_id = $2;`

	getGoal = `SELECT id, user_id, ano, mes, valor
    FROM metas
    WHERE user_id = $1 AND ano = $2 AND mes = $3;`

	getGoalID = `SELECT id
    FROM metas
    WHERE user_id = $1 AND ano = $2 AND mes = $3;`

	listGoals = `SELECT ano, mes, valor
    FROM metas
    WHERE user_id = $1;`

	createGoal = `INSERT INTO metas (user_id, ano, mes, valor)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	updateGoalValor = `UPDATE metas
    SET valor = $1
    WHERE id = $2;`
)

// buildUpdateExpenseQuery builds the partial UPDATE for an expense. Only the
// non-nil fields of the update end up in the SET clause; the caller must not
// invoke it with an empty update.
func buildUpdateExpenseQuery(update models.ExpenseUpdate) (string, []any, error) {
	builder := squirrel.Update("despesas").PlaceholderFormat(squirrel.Dollar)

	if update.Descricao != nil {
		builder = builder.Set("descricao", *update.Descricao)
	}
	if update.Valor != nil {
		builder = builder.Set("valor", *update.Valor)
	}

	builder = builder.Where(squirrel.Eq{"id": update.ID, "user_id": update.UserID})

	return builder.ToSql()
}
