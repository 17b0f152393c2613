package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dquintero/hr-records/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, status)
    VALUES ($1, $2, $3)
    RETURNING id, username, password_hash, status, last_login;`

	findUserByUsername = `SELECT id, username, password_hash, status, last_login
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, status, last_login
    FROM users
    WHERE id = $1;`

	updateLastLogin = `UPDATE users SET last_login = NOW() WHERE id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// employeeColumns are the columns selected by every employee read query,
// including the linked account's username via a LEFT JOIN.
var employeeColumns = []string{
	"e.id",
	"e.name",
	"e.hire_date",
	"e.position",
	"e.department",
	"e.user_id",
	"u.username",
}

func buildSelectEmployeesQuery() (string, []any, error) {
	return psql.Select(employeeColumns...).
		From("employees e").
		LeftJoin("users u ON e.user_id = u.id").
		OrderBy("e.name").
		ToSql()
}

func buildSelectEmployeeByIDQuery(employeeID int64) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From("employees e").
		LeftJoin("users u ON e.user_id = u.id").
		Where(sq.Eq{"e.id": employeeID}).
		ToSql()
}

func buildSelectEmployeeByUserIDQuery(userID int64) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From("employees e").
		LeftJoin("users u ON e.user_id = u.id").
		Where(sq.Eq{"e.user_id": userID}).
		ToSql()
}

func buildInsertEmployeeQuery(employee models.Employee) (string, []any, error) {
	return psql.Insert("employees").
		Columns("name", "hire_date", "position", "department", "user_id").
		Values(employee.Name, employee.HireDate, employee.Position, employee.Department, employee.UserID).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateEmployeeQuery builds a dynamic UPDATE covering only the fields
// present in the partial update. Returns ErrNothingToUpdate when the update
// carries no changed fields.
func buildUpdateEmployeeQuery(employeeID int64, update models.EmployeeUpdate) (string, []any, error) {
	setMap := map[string]any{}

	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.HireDate != nil {
		setMap["hire_date"] = *update.HireDate
	}
	if update.Position != nil {
		setMap["position"] = *update.Position
	}
	if update.Department != nil {
		setMap["department"] = *update.Department
	}
	if update.UserID != nil {
		setMap["user_id"] = *update.UserID
	}

	if len(setMap) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return psql.Update("employees").
		SetMap(setMap).
		Where(sq.Eq{"id": employeeID}).
		ToSql()
}

func buildDeleteEmployeeQuery(employeeID int64) (string, []any, error) {
	return psql.Delete("employees").
		Where(sq.Eq{"id": employeeID}).
		ToSql()
}
