package services

import (
	"context"
	"testing"
	"time"

	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEmployeeCode(t *testing.T) {
	tests := []struct {
		last string
		want string
	}{
		{last: "", want: "EMP001"},
		{last: "EMP001", want: "EMP002"},
		{last: "EMP099", want: "EMP100"},
		{last: "EMP999", want: "EMP1000"},
		{last: "garbage", want: "EMP001"},
	}

	for _, tt := range tests {
		t.Run(tt.last, func(t *testing.T) {
			assert.Equal(t, tt.want, NextEmployeeCode(tt.last))
		})
	}
}

func TestEmployeeService_CreateGeneratesCodes(t *testing.T) {
	env := newTestEnv(t)
	dept := env.department(t, "Operations")

	first := env.employee(t, dept.ID, "one@valiant.ph")
	second := env.employee(t, dept.ID, "two@valiant.ph")

	assert.Equal(t, "EMP001", first.EmployeeCode)
	assert.Equal(t, "EMP002", second.EmployeeCode)
	assert.Equal(t, domain.EmployeeActive, first.Status)
	assert.False(t, first.HireDate.IsZero())
	require.NotNil(t, first.Department)
	assert.Equal(t, "Operations", first.Department.Name)
}

func TestEmployeeService_CreateSkipsNonNumericCodes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	env.employee(t, dept.ID, "one@valiant.ph")

	custom, err := env.employees.Create(ctx, &CreateEmployeeInput{
		EmployeeID: "EMPTEMP01", FirstName: "Pedro", LastName: "Reyes", Email: "temp@valiant.ph",
		Phone: "1", DepartmentID: dept.ID, Position: "Signalman", Salary: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPTEMP01", custom.EmployeeCode)

	next := env.employee(t, dept.ID, "three@valiant.ph")
	assert.Equal(t, "EMP002", next.EmployeeCode)
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	dept := env.department(t, "Operations")
	env.employee(t, dept.ID, "same@valiant.ph")

	_, err := env.employees.Create(context.Background(), &CreateEmployeeInput{
		FirstName: "Pedro", LastName: "Reyes", Email: "same@valiant.ph", Phone: "1",
		DepartmentID: dept.ID, Position: "Signalman", Salary: 90,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeExists)
}

func TestEmployeeService_Validation(t *testing.T) {
	env := newTestEnv(t)
	dept := env.department(t, "Operations")
	ctx := context.Background()

	valid := func() *CreateEmployeeInput {
		return &CreateEmployeeInput{
			FirstName: "Pedro", LastName: "Reyes", Email: "pedro@valiant.ph", Phone: "1",
			DepartmentID: dept.ID, Position: "Signalman", Salary: 90,
		}
	}

	tests := []struct {
		name   string
		mutate func(in *CreateEmployeeInput)
		kind   error
	}{
		{name: "missing first name", mutate: func(in *CreateEmployeeInput) { in.FirstName = " " }, kind: domain.ErrInvalidInput},
		{name: "unknown position", mutate: func(in *CreateEmployeeInput) { in.Position = "Captain" }, kind: domain.ErrInvalidInput},
		{name: "bad status", mutate: func(in *CreateEmployeeInput) { in.Status = "Retired" }, kind: domain.ErrInvalidInput},
		{name: "zero salary", mutate: func(in *CreateEmployeeInput) { in.Salary = 0 }, kind: domain.ErrInvalidInput},
		{name: "unknown department", mutate: func(in *CreateEmployeeInput) { in.DepartmentID = "nope" }, kind: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			_, err := env.employees.Create(ctx, in)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestEmployeeService_UpdateAndFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ops := env.department(t, "Operations")
	emp := env.employee(t, ops.ID, "upd@valiant.ph")
	env.employee(t, ops.ID, "other@valiant.ph")

	updated, err := env.employees.Update(ctx, emp.ID, &UpdateEmployeeInput{
		Status:   strp(domain.EmployeeOnLeave),
		Position: strp("Gangboss"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EmployeeOnLeave, updated.Status)
	assert.Equal(t, "Gangboss", updated.Position)
	assert.Equal(t, "upd@valiant.ph", updated.Email)

	onLeave, err := env.employees.List(ctx, repositories.EmployeeFilter{Status: domain.EmployeeOnLeave})
	require.NoError(t, err)
	require.Len(t, onLeave, 1)
	assert.Equal(t, emp.ID, onLeave[0].ID)

	_, err = env.employees.Update(ctx, "missing", &UpdateEmployeeInput{})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestDepartmentService_Initialize(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.department(t, "Legacy")

	departments, err := env.departments.Initialize(ctx)
	require.NoError(t, err)
	require.Len(t, departments, len(DefaultDepartments))

	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{"Operations", "Logistics", "HR", "Finance", "IT"}, names)
	assert.NotContains(t, names, "Legacy")
}

func TestDepartmentService_Manager(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	emp := env.employee(t, dept.ID, "mgr@valiant.ph")

	updated, err := env.departments.Update(ctx, dept.ID, &DepartmentInput{ManagerID: strp(emp.ID)})
	require.NoError(t, err)
	require.NotNil(t, updated.Manager)
	assert.Equal(t, emp.ID, updated.Manager.ID)

	_, err = env.departments.Update(ctx, dept.ID, &DepartmentInput{ManagerID: strp("missing")})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = env.departments.Create(ctx, &DepartmentInput{Name: strp("Operations")})
	assert.ErrorIs(t, err, domain.ErrDepartmentExists)
}

func TestVesselService_Assignments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	emp := env.employee(t, dept.ID, "crew@valiant.ph")
	vessel := env.vessel(t, "VSL-001", "IMO1000001")

	assert.Equal(t, domain.VesselActive, vessel.Status)

	withCrew, err := env.vessels.AssignEmployee(ctx, vessel.ID, emp.ID)
	require.NoError(t, err)
	require.Len(t, withCrew.AssignedEmployees, 1)

	_, err = env.vessels.AssignEmployee(ctx, vessel.ID, emp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)

	_, err = env.vessels.AssignEmployee(ctx, vessel.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = env.vessels.AssignEmployee(ctx, "missing", emp.ID)
	assert.ErrorIs(t, err, domain.ErrVesselNotFound)

	empty, err := env.vessels.RemoveEmployee(ctx, vessel.ID, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.AssignedEmployees)

	_, err = env.vessels.RemoveEmployee(ctx, vessel.ID, emp.ID)
	assert.ErrorIs(t, err, domain.ErrNotAssigned)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVesselService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.vessels.Create(ctx, &VesselInput{VesselID: strp("VSL-009")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	vessel := env.vessel(t, "VSL-001", "IMO1")
	_, err = env.vessels.Update(ctx, vessel.ID, &VesselInput{Type: strp("Submarine")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.vessels.Update(ctx, vessel.ID, &VesselInput{Capacity: f64(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := env.vessels.Update(ctx, vessel.ID, &VesselInput{Status: strp(domain.VesselMaintenance)})
	require.NoError(t, err)
	assert.Equal(t, domain.VesselMaintenance, updated.Status)
}

func TestAttendanceService_DayPrecision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	emp := env.employee(t, dept.ID, "att@valiant.ph")

	morning := &domain.Time{Time: time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC)}
	evening := &domain.Time{Time: time.Date(2024, 3, 4, 19, 0, 0, 0, time.UTC)}

	record, err := env.attendance.Create(ctx, &AttendanceInput{
		EmployeeID: strp(emp.ID), Date: morning, Status: strp("Present"), Day: boolp(true),
	})
	require.NoError(t, err)
	assert.True(t, record.Date.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, record.Day)

	_, err = env.attendance.Create(ctx, &AttendanceInput{
		EmployeeCode: strp(emp.EmployeeCode), Date: evening, Status: strp("Late"),
	})
	assert.ErrorIs(t, err, domain.ErrAttendanceExists)

	_, err = env.attendance.Create(ctx, &AttendanceInput{EmployeeID: strp(emp.ID), Date: evening, Status: strp("Sleeping")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAttendanceService_Bulk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	emp := env.employee(t, dept.ID, "bulk@valiant.ph")

	created, failures, err := env.attendance.Bulk(ctx, []*AttendanceInput{
		{EmployeeID: strp(emp.ID), Date: day(2024, 3, 4), Status: strp("Present")},
		{EmployeeID: strp(emp.ID), Date: day(2024, 3, 4), Status: strp("Present")},
		{EmployeeID: strp("missing"), Date: day(2024, 3, 5), Status: strp("Present")},
		{EmployeeID: strp(emp.ID), Date: day(2024, 3, 5), Status: strp("Absent")},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.Equal(t, 2, failures[1].Index)

	_, _, err = env.attendance.Bulk(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func boolp(b bool) *bool { return &b }
