package store

import (
	"context"

	"github.com/dquintero/hr-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it persists accounts and their
// password hashes and tracks the last successful login.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its unique username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up an account by its identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateLastLogin sets the account's last_login to the current time.
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// EmployeeRepository is the record store offering CRUD over employee
// records keyed by integer identifier.
type EmployeeRepository interface {
	// ListEmployees returns all employee records ordered by name, with the
	// linked account's username joined in.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// GetEmployeeByID returns a single employee record.
	GetEmployeeByID(ctx context.Context, employeeID int64) (models.Employee, error)

	// GetEmployeeByUserID returns the employee record linked to the given
	// account, if any.
	GetEmployeeByUserID(ctx context.Context, userID int64) (models.Employee, error)

	// CreateEmployee persists a new employee record and returns its id.
	CreateEmployee(ctx context.Context, employee models.Employee) (int64, error)

	// UpdateEmployee applies a partial update. An update with zero changed
	// fields is rejected with ErrNothingToUpdate.
	UpdateEmployee(ctx context.Context, employeeID int64, update models.EmployeeUpdate) error

	// DeleteEmployee removes an employee record.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}
