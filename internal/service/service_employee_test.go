package service

import (
	"context"
	"testing"
	"time"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/mock"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEmployeeSvc(t *testing.T, ctrl *gomock.Controller) (*employeeService, *mock.MockEmployeeRepository) {
	t.Helper()
	mockEmployees := mock.NewMockEmployeeRepository(ctrl)
	svc := NewEmployeeService(mockEmployees, logger.Nop()).(*employeeService)
	return svc, mockEmployees
}

func sampleEmployee() models.Employee {
	username := "jperez"
	userID := int64(3)
	return models.Employee{
		EmployeeID: 42,
		Name:       "Juan Perez",
		HireDate:   time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		Position:   "Backend Developer",
		Department: "Engineering",
		UserID:     &userID,
		Username:   &username,
	}
}

// ── ListEmployees ────────────────────────────────────────────────────────────

func TestEmployeeService_ListEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	want := []models.Employee{sampleEmployee()}

	mockEmployees.EXPECT().ListEmployees(ctx).Return(want, nil)

	got, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEmployeeService_ListEmployees_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockEmployees.EXPECT().ListEmployees(ctx).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListEmployees(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── GetEmployee ──────────────────────────────────────────────────────────────

func TestEmployeeService_GetEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	want := sampleEmployee()

	mockEmployees.EXPECT().GetEmployeeByID(ctx, want.EmployeeID).Return(want, nil)

	got, err := svc.GetEmployee(ctx, want.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockEmployees.EXPECT().
		GetEmployeeByID(ctx, int64(999)).
		Return(models.Employee{}, store.ErrEmployeeNotFound)

	_, err := svc.GetEmployee(ctx, 999)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

// ── CreateEmployee ───────────────────────────────────────────────────────────

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	created := sampleEmployee()

	newEmployee := created
	newEmployee.EmployeeID = 0
	newEmployee.Username = nil

	gomock.InOrder(
		mockEmployees.EXPECT().CreateEmployee(ctx, newEmployee).Return(created.EmployeeID, nil),
		mockEmployees.EXPECT().GetEmployeeByID(ctx, created.EmployeeID).Return(created, nil),
	)

	got, err := svc.CreateEmployee(ctx, newEmployee)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.Username, "joined username must come back on the re-fetch")
}

func TestEmployeeService_CreateEmployee_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	valid := sampleEmployee()

	tests := []struct {
		name   string
		mutate func(e *models.Employee)
	}{
		{name: "no name", mutate: func(e *models.Employee) { e.Name = "" }},
		{name: "no hire date", mutate: func(e *models.Employee) { e.HireDate = time.Time{} }},
		{name: "no position", mutate: func(e *models.Employee) { e.Position = "" }},
		{name: "no department", mutate: func(e *models.Employee) { e.Department = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee := valid
			tt.mutate(&employee)

			_, err := svc.CreateEmployee(ctx, employee)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestEmployeeService_CreateEmployee_BadUserReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	employee := sampleEmployee()

	mockEmployees.EXPECT().
		CreateEmployee(ctx, employee).
		Return(int64(0), store.ErrInvalidUserReference)

	_, err := svc.CreateEmployee(ctx, employee)
	assert.ErrorIs(t, err, store.ErrInvalidUserReference)
}

// ── UpdateEmployee ───────────────────────────────────────────────────────────

func TestEmployeeService_UpdateEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	updated := sampleEmployee()
	updated.Position = "Staff Engineer"
	update := models.EmployeeUpdate{Position: &updated.Position}

	gomock.InOrder(
		mockEmployees.EXPECT().UpdateEmployee(ctx, updated.EmployeeID, update).Return(nil),
		mockEmployees.EXPECT().GetEmployeeByID(ctx, updated.EmployeeID).Return(updated, nil),
	)

	got, err := svc.UpdateEmployee(ctx, updated.EmployeeID, update)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Position)
}

func TestEmployeeService_UpdateEmployee_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEmployeeSvc(t, ctrl)

	_, err := svc.UpdateEmployee(context.Background(), 42, models.EmployeeUpdate{})
	assert.ErrorIs(t, err, store.ErrNothingToUpdate)
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	name := "Nobody"
	update := models.EmployeeUpdate{Name: &name}

	mockEmployees.EXPECT().
		UpdateEmployee(ctx, int64(999), update).
		Return(store.ErrEmployeeNotFound)

	_, err := svc.UpdateEmployee(ctx, 999, update)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

// ── DeleteEmployee ───────────────────────────────────────────────────────────

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockEmployees.EXPECT().DeleteEmployee(ctx, int64(42)).Return(nil)

	require.NoError(t, svc.DeleteEmployee(ctx, 42))
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockEmployees.EXPECT().
		DeleteEmployee(ctx, int64(999)).
		Return(store.ErrEmployeeNotFound)

	err := svc.DeleteEmployee(ctx, 999)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

// ── Payroll ──────────────────────────────────────────────────────────────────

func TestEmployeeService_Payroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()
	employee := sampleEmployee()

	mockEmployees.EXPECT().
		GetEmployeeByUserID(ctx, *employee.UserID).
		Return(employee, nil)

	payroll, err := svc.Payroll(ctx, *employee.UserID)
	require.NoError(t, err)
	assert.Equal(t, employee.EmployeeID, payroll.EmployeeID)
	assert.Equal(t, employee.Name, payroll.Name)
	assert.Equal(t, employee.Position, payroll.Position)
	assert.Equal(t, payrollEstimatedHours, payroll.EstimatedHours)
	assert.Equal(t, payrollWorkedHours, payroll.WorkedHours)
	assert.Greater(t, payroll.GrossSalary, payroll.NetSalary)
}

func TestEmployeeService_Payroll_NoLinkedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockEmployees := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockEmployees.EXPECT().
		GetEmployeeByUserID(ctx, int64(77)).
		Return(models.Employee{}, store.ErrEmployeeNotFound)

	_, err := svc.Payroll(ctx, 77)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}
