package service

import (
	"context"

	"github.com/dquintero/hr-records/models"
)

// AuthService composes the credential store, password hashing, and the token
// codec into the login and token-verification flows.
type AuthService interface {
	// Login authenticates the given credentials and, on success, returns a
	// signed token together with the public view of the account.
	Login(ctx context.Context, username, password string) (models.Token, models.User, error)

	// VerifyToken validates a raw token string and re-resolves the account
	// it references, requiring the account to still be active.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserFromToken is VerifyToken plus a re-fetch of the full public
	// identity view of the account.
	UserFromToken(ctx context.Context, tokenString string) (models.User, error)
}

// EmployeeService exposes CRUD over employee records plus the payroll view
// for the employee linked to the authenticated account.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, employeeID int64) (models.Employee, error)

	// CreateEmployee validates and persists a new record, returning the
	// canonical stored representation.
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)

	// UpdateEmployee applies a partial update and returns the updated
	// record. An update with zero changed fields is a usage error.
	UpdateEmployee(ctx context.Context, employeeID int64, update models.EmployeeUpdate) (models.Employee, error)

	DeleteEmployee(ctx context.Context, employeeID int64) error

	// Payroll returns the simulated salary view for the employee linked to
	// the given account.
	Payroll(ctx context.Context, userID int64) (models.Payroll, error)
}
