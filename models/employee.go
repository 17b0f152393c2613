package models

import "time"

// Employee represents a single HR record.
type Employee struct {
	// EmployeeID is the internal unique identifier of the employee record.
	EmployeeID int64 `json:"id"`

	// Name is the employee's full name.
	Name string `json:"name"`

	// HireDate is the date the employee joined the company.
	HireDate time.Time `json:"hire_date"`

	// Position is the employee's job title.
	Position string `json:"position"`

	// Department is the organizational unit the employee belongs to.
	Department string `json:"department"`

	// UserID links the employee to an account, nil when the employee
	// has no login.
	UserID *int64 `json:"user_id,omitempty"`

	// Username is the login of the linked account, populated by list/get
	// queries via a join. Read-only, never written back.
	Username *string `json:"username,omitempty"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// EmployeeUpdate describes a partial update of an employee record.
// Nil fields are left untouched. An update with no non-nil field is a
// usage error and is rejected before reaching the database.
type EmployeeUpdate struct {
	Name       *string    `json:"name,omitempty"`
	HireDate   *time.Time `json:"hire_date,omitempty"`
	Position   *string    `json:"position,omitempty"`
	Department *string    `json:"department,omitempty"`
	UserID     *int64     `json:"user_id,omitempty"`
}

// IsEmpty reports whether the update contains no changed fields.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.HireDate == nil && u.Position == nil &&
		u.Department == nil && u.UserID == nil
}

// Payroll is the simulated salary view returned for the employee linked
// to the authenticated account. Hours and amounts are placeholder figures
// until time tracking is integrated.
type Payroll struct {
	EmployeeID     int64   `json:"id"`
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	EstimatedHours int     `json:"estimated_hours"`
	WorkedHours    int     `json:"worked_hours"`
	GrossSalary    float64 `json:"gross_salary"`
	NetSalary      float64 `json:"net_salary"`
}
