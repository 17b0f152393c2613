package service

import (
	"context"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/models"
)

// Simulated payroll figures. Real hour tracking and salary calculation live
// in an external payroll system; these constants stand in for its output.
const (
	payrollEstimatedHours = 160
	payrollWorkedHours    = 150
	payrollGrossSalary    = 1000
	payrollNetSalary      = 900
)

// employeeService is the concrete implementation of EmployeeService.
type employeeService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

// NewEmployeeService constructs a new EmployeeService backed by the given
// repository.
func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// ListEmployees returns every employee record ordered by name.
func (e *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	employees, err := e.employeeRepository.ListEmployees(ctx)
	if err != nil {
		log.Err(err).Msg("employee list failed")
		return nil, err
	}

	return employees, nil
}

// GetEmployee returns a single employee by its identifier.
// Returns store.ErrEmployeeNotFound when no record matches.
func (e *employeeService) GetEmployee(ctx context.Context, employeeID int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	employee, err := e.employeeRepository.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee lookup failed")
		return models.Employee{}, err
	}

	return employee, nil
}

// CreateEmployee validates and persists a new employee record, then
// re-fetches it so the returned value carries the joined account username.
//
// Returns ErrInvalidDataProvided when a required field is missing and
// store.ErrInvalidUserReference when the linked account does not exist.
func (e *employeeService) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if err := validateEmployee(employee); err != nil {
		log.Error().Str("name", employee.Name).Msg("invalid employee data provided")
		return models.Employee{}, err
	}

	employeeID, err := e.employeeRepository.CreateEmployee(ctx, employee)
	if err != nil {
		log.Err(err).Str("name", employee.Name).Msg("employee creation failed")
		return models.Employee{}, err
	}

	created, err := e.employeeRepository.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("created employee re-fetch failed")
		return models.Employee{}, err
	}

	return created, nil
}

// UpdateEmployee applies a partial update and returns the updated record.
//
// Returns store.ErrNothingToUpdate when the update carries no fields and
// store.ErrEmployeeNotFound when the identifier does not match a record.
func (e *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, update models.EmployeeUpdate) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		log.Error().Int64("employee_id", employeeID).Msg("empty employee update")
		return models.Employee{}, store.ErrNothingToUpdate
	}

	if err := e.employeeRepository.UpdateEmployee(ctx, employeeID, update); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee update failed")
		return models.Employee{}, err
	}

	updated, err := e.employeeRepository.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("updated employee re-fetch failed")
		return models.Employee{}, err
	}

	return updated, nil
}

// DeleteEmployee removes an employee record.
// Returns store.ErrEmployeeNotFound when the identifier does not match.
func (e *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	log := logger.FromContext(ctx)

	if err := e.employeeRepository.DeleteEmployee(ctx, employeeID); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee deletion failed")
		return err
	}

	return nil
}

// Payroll returns the simulated payroll summary for the employee record
// linked to the given account. Returns store.ErrEmployeeNotFound when the
// account has no linked employee record.
func (e *employeeService) Payroll(ctx context.Context, userID int64) (models.Payroll, error) {
	log := logger.FromContext(ctx)

	employee, err := e.employeeRepository.GetEmployeeByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("payroll employee lookup failed")
		return models.Payroll{}, err
	}

	return models.Payroll{
		EmployeeID:     employee.EmployeeID,
		Name:           employee.Name,
		Position:       employee.Position,
		EstimatedHours: payrollEstimatedHours,
		WorkedHours:    payrollWorkedHours,
		GrossSalary:    payrollGrossSalary,
		NetSalary:      payrollNetSalary,
	}, nil
}

// validateEmployee checks the fields required to persist a new record.
func validateEmployee(employee models.Employee) error {
	if employee.Name == "" || employee.HireDate.IsZero() || employee.Position == "" || employee.Department == "" {
		return ErrInvalidDataProvided
	}
	return nil
}
