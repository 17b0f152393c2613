package store

import (
	"strings"
	"testing"
	"time"

	"github.com/dquintero/hr-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectEmployeesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectEmployeesQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from employees e")
	require.Contains(t, q, "left join users u on e.user_id = u.id")
	require.Contains(t, q, "order by e.name")

	// columns presence (subset / key columns)
	require.Contains(t, q, "e.hire_date")
	require.Contains(t, q, "e.department")
	require.Contains(t, q, "u.username")
}

func Test_buildSelectEmployeeByIDQuery(t *testing.T) {
	query, args, err := buildSelectEmployeeByIDQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, strings.ToLower(query), "e.id = $1")
}

func Test_buildSelectEmployeeByUserIDQuery(t *testing.T) {
	query, args, err := buildSelectEmployeeByUserIDQuery(7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])
	require.Contains(t, strings.ToLower(query), "e.user_id = $1")
}

func Test_buildInsertEmployeeQuery(t *testing.T) {
	hired := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	userID := int64(3)
	employee := models.Employee{
		Name:       "Alice Doe",
		HireDate:   hired,
		Position:   "Engineer",
		Department: "R&D",
		UserID:     &userID,
	}

	query, args, err := buildInsertEmployeeQuery(employee)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into employees")
	require.Contains(t, q, "returning id")

	require.Len(t, args, 5)
	assert.Equal(t, "Alice Doe", args[0])
	assert.Equal(t, hired, args[1])
	assert.Equal(t, "Engineer", args[2])
	assert.Equal(t, "R&D", args[3])
	assert.Equal(t, &userID, args[4])
}

func Test_buildUpdateEmployeeQuery(t *testing.T) {
	name := "Renamed"
	position := "Lead"

	tests := []struct {
		name     string
		update   models.EmployeeUpdate
		wantArgs int
		wantErr  error
		contains []string
	}{
		{
			name:     "single field",
			update:   models.EmployeeUpdate{Name: &name},
			wantArgs: 2, // set value + where id
			contains: []string{"update employees", "name = $1", "id = $2"},
		},
		{
			name:     "two fields",
			update:   models.EmployeeUpdate{Name: &name, Position: &position},
			wantArgs: 3,
			contains: []string{"update employees", "name =", "position ="},
		},
		{
			name:    "empty update rejected",
			update:  models.EmployeeUpdate{},
			wantErr: ErrNothingToUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateEmployeeQuery(1, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, args, tt.wantArgs)

			q := strings.ToLower(query)
			for _, part := range tt.contains {
				assert.Contains(t, q, part)
			}
		})
	}
}

func Test_buildDeleteEmployeeQuery(t *testing.T) {
	query, args, err := buildDeleteEmployeeQuery(9)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(9), args[0])
	require.Contains(t, strings.ToLower(query), "delete from employees")
	require.Contains(t, query, "$1")
}
