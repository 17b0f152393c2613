package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/models"
	"github.com/jackc/pgerrcode"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository]. Read queries join the users table so each record
// carries the username of its linked account; all SQL is generated with
// squirrel so the partial-update statement covers exactly the changed fields.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// ListEmployees returns every employee record ordered by name.
func (r *employeeRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.EmployeeID, &employee.Name, &employee.HireDate,
			&employee.Position, &employee.Department, &employee.UserID, &employee.Username); err != nil {
			log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error scanning employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, nil
}

// GetEmployeeByID returns the employee record with the given id, or
// [ErrEmployeeNotFound] when no such record exists.
func (r *employeeRepository) GetEmployeeByID(ctx context.Context, employeeID int64) (models.Employee, error) {
	query, args, err := buildSelectEmployeeByIDQuery(employeeID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOneEmployee(ctx, query, args)
}

// GetEmployeeByUserID returns the employee record linked to the given
// account, or [ErrEmployeeNotFound] when the account has no employee record.
func (r *employeeRepository) GetEmployeeByUserID(ctx context.Context, userID int64) (models.Employee, error) {
	query, args, err := buildSelectEmployeeByUserIDQuery(userID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOneEmployee(ctx, query, args)
}

func (r *employeeRepository) scanOneEmployee(ctx context.Context, query string, args []any) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var employee models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&employee.EmployeeID, &employee.Name, &employee.HireDate,
		&employee.Position, &employee.Department, &employee.UserID, &employee.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}

		log.Err(err).Str("func", "*employeeRepository.scanOneEmployee").Msg("error scanning employee row")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

// CreateEmployee inserts a new employee record and returns the
// server-assigned id.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on user_id →
//     [ErrInvalidUserReference].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(employee)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employeeID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&employeeID); err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("error inserting employee")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return 0, ErrInvalidUserReference
		default:
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return employeeID, nil
}

// UpdateEmployee applies a partial update to the employee record.
//
// The UPDATE statement is generated from the non-nil fields of update;
// an empty update is rejected with [ErrNothingToUpdate] before touching
// the database. A zero affected-row count maps to [ErrEmployeeNotFound].
func (r *employeeRepository) UpdateEmployee(ctx context.Context, employeeID int64, update models.EmployeeUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(employeeID, update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateEmployee").Msg("error executing update")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidUserReference
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// DeleteEmployee removes the employee record with the given id. Deleting a
// record that does not exist yields [ErrEmployeeNotFound].
func (r *employeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmployeeQuery(employeeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteEmployee").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
