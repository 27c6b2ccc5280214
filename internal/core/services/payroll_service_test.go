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

func march(employeeID string) *PayrollInput {
	return &PayrollInput{
		Employee:  employeeID,
		PayPeriod: PayPeriodInput{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 15)},
		Rate:      100,
	}
}

func TestPayrollService_ComputesGrossAndNet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "pay@valiant.ph")

	in := march(emp.ID)
	in.RegularHours = 40
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, record.GrossPay)
	assert.Equal(t, 4000.0, record.NetPay)
	assert.Equal(t, domain.PayrollPending, record.Status)
	require.NotNil(t, record.Employee)
	assert.Equal(t, emp.EmployeeCode, record.Employee.EmployeeCode)
}

func TestPayrollService_OvertimeAndDeductions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "ot@valiant.ph")

	in := march(emp.ID)
	in.OvertimeHours = 10
	in.Deductions = DeductionsInput{SSS: 50, Tax: 100}
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 1250.0, record.GrossPay)
	assert.Equal(t, 1100.0, record.NetPay)
	assert.Equal(t, 50.0, record.Deductions.SSS)
}

func TestPayrollService_TrustsSuppliedPay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "trust@valiant.ph")

	in := march(emp.ID)
	in.RegularHours = 40
	in.GrossPay = f64(5000)
	in.NetPay = f64(4321)
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, record.GrossPay)
	assert.Equal(t, 4321.0, record.NetPay)
}

func TestPayrollService_ZeroPayIsTrusted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "zero@valiant.ph")

	in := march(emp.ID)
	in.RegularHours = 40
	in.GrossPay = f64(0)
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, record.GrossPay)
	assert.Equal(t, 0.0, record.NetPay)

	in = march(emp.ID)
	in.PayPeriod = PayPeriodInput{StartDate: day(2024, 3, 16), EndDate: day(2024, 3, 31)}
	in.RegularHours = 40
	in.NetPay = f64(0)
	record, err = env.payroll.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, record.GrossPay)
	assert.Equal(t, 0.0, record.NetPay)
}

func TestPayrollService_DuplicatePeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "dup@valiant.ph")

	_, err := env.payroll.Create(ctx, march(emp.ID))
	require.NoError(t, err)

	_, err = env.payroll.Create(ctx, march(emp.ID))
	assert.ErrorIs(t, err, domain.ErrPayrollExists)
	assert.Equal(t, "Payroll for this employee and pay period already exists", err.Error())
}

func TestPayrollService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "val@valiant.ph")

	tests := []struct {
		name   string
		mutate func(in *PayrollInput)
		kind   error
	}{
		{name: "zero rate", mutate: func(in *PayrollInput) { in.Rate = 0 }, kind: domain.ErrInvalidInput},
		{name: "negative hours", mutate: func(in *PayrollInput) { in.OvertimeHours = -1 }, kind: domain.ErrInvalidInput},
		{name: "negative deduction", mutate: func(in *PayrollInput) { in.Deductions.Other = -5 }, kind: domain.ErrInvalidInput},
		{name: "missing period", mutate: func(in *PayrollInput) { in.PayPeriod.EndDate = nil }, kind: domain.ErrInvalidInput},
		{name: "start after end", mutate: func(in *PayrollInput) {
			in.PayPeriod = PayPeriodInput{StartDate: day(2024, 3, 16), EndDate: day(2024, 3, 1)}
		}, kind: domain.ErrInvalidInput},
		{name: "bad status", mutate: func(in *PayrollInput) { in.Status = "Void" }, kind: domain.ErrInvalidInput},
		{name: "missing employee", mutate: func(in *PayrollInput) { in.Employee = "" }, kind: domain.ErrInvalidInput},
		{name: "unknown employee", mutate: func(in *PayrollInput) { in.Employee = "missing" }, kind: domain.ErrNotFound},
		{name: "unknown vessel", mutate: func(in *PayrollInput) { in.VesselCode = "VSL-404" }, kind: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := march(emp.ID)
			tt.mutate(in)
			_, err := env.payroll.Create(ctx, in)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestPayrollService_UpdateRecomputes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "upd@valiant.ph")

	in := march(emp.ID)
	in.RegularHours = 40
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)

	updated, err := env.payroll.Update(ctx, record.ID, &UpdatePayrollInput{
		OvertimeHours: f64(10),
		Deductions:    &DeductionsInput{Tax: 250},
	})
	require.NoError(t, err)
	assert.Equal(t, 5250.0, updated.GrossPay)
	assert.Equal(t, 5000.0, updated.NetPay)

	// status-only updates leave pay alone
	updated, err = env.payroll.Update(ctx, record.ID, &UpdatePayrollInput{Status: strp(domain.PayrollProcessed)})
	require.NoError(t, err)
	assert.Equal(t, 5250.0, updated.GrossPay)
	assert.Equal(t, domain.PayrollProcessed, updated.Status)

	// supplied gross is kept while net follows it
	updated, err = env.payroll.Update(ctx, record.ID, &UpdatePayrollInput{GrossPay: f64(6000)})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, updated.GrossPay)
	assert.Equal(t, 5750.0, updated.NetPay)

	_, err = env.payroll.Update(ctx, record.ID, &UpdatePayrollInput{Rate: f64(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayrollService_Bulk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "bulk@valiant.ph")
	vessel := env.vessel(t, "VSL-001", "IMO1")

	byCode := &PayrollInput{
		EmployeeCode: emp.EmployeeCode,
		VesselCode:   vessel.VesselCode,
		PayPeriod:    PayPeriodInput{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 15)},
		RegularHours: 10,
		Rate:         100,
	}
	duplicate := *byCode
	unknown := *byCode
	unknown.EmployeeCode = "EMP999"
	second := *byCode
	second.PayPeriod = PayPeriodInput{StartDate: day(2024, 3, 16), EndDate: day(2024, 3, 31)}

	created, failures, err := env.payroll.Bulk(ctx, []*PayrollInput{byCode, &duplicate, &unknown, &second})
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.Equal(t, "Payroll for this employee and pay period already exists", failures[0].Message)
	assert.Equal(t, 2, failures[1].Index)

	require.NotNil(t, created[0].VesselID)
	assert.Equal(t, vessel.ID, *created[0].VesselID)
	assert.Equal(t, 1000.0, created[0].GrossPay)
}

func TestPayrollService_ListByVessel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dept := env.department(t, "Operations")
	emp := env.employee(t, dept.ID, "crew@valiant.ph")
	vessel := env.vessel(t, "VSL-001", "IMO1")
	_, err := env.vessels.AssignEmployee(ctx, vessel.ID, emp.ID)
	require.NoError(t, err)

	records, templates, err := env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: vessel.ID})
	require.NoError(t, err)
	assert.True(t, templates)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].ID)
	assert.Equal(t, emp.ID, records[0].EmployeeID)
	assert.Equal(t, emp.Salary, records[0].Rate)
	assert.Zero(t, records[0].GrossPay)

	in := march(emp.ID)
	in.Vessel = vessel.ID
	_, err = env.payroll.Create(ctx, in)
	require.NoError(t, err)

	records, templates, err = env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: vessel.ID})
	require.NoError(t, err)
	assert.False(t, templates)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)

	_, _, err = env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: "missing"})
	assert.ErrorIs(t, err, domain.ErrVesselNotFound)
}

func TestPayrollService_ListByVesselDateRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "range@valiant.ph")
	vessel := env.vessel(t, "VSL-001", "IMO1")

	first := march(emp.ID)
	first.Vessel = vessel.ID
	_, err := env.payroll.Create(ctx, first)
	require.NoError(t, err)

	second := march(emp.ID)
	second.Vessel = vessel.ID
	second.PayPeriod = PayPeriodInput{StartDate: day(2024, 3, 16), EndDate: day(2024, 3, 31)}
	_, err = env.payroll.Create(ctx, second)
	require.NoError(t, err)

	records, templates, err := env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: vessel.ID})
	require.NoError(t, err)
	assert.False(t, templates)
	require.Len(t, records, 2)
	assert.Equal(t, 31, records[0].PayPeriod.EndDate.Day())
	assert.Equal(t, 15, records[1].PayPeriod.EndDate.Day())

	from := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	records, templates, err = env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: vessel.ID, From: &from, To: &to})
	require.NoError(t, err)
	assert.False(t, templates)
	require.Len(t, records, 1)
	assert.Equal(t, 16, records[0].PayPeriod.StartDate.Day())

	_, _, err = env.payroll.ListByVessel(ctx, repositories.PayrollFilter{VesselID: vessel.ID, From: &to, To: &from})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayrollService_ExpiredContextIsTimeout(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := env.payroll.Get(ctx, "any")
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = env.payroll.List(ctx, repositories.PayrollFilter{})
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestPayrollService_ListRangeValidation(t *testing.T) {
	env := newTestEnv(t)
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := env.payroll.List(context.Background(), repositories.PayrollFilter{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettlementService_RunOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.employee(t, env.department(t, "Operations").ID, "settle@valiant.ph")

	in := march(emp.ID)
	in.Status = domain.PayrollProcessed
	in.PaymentDate = day(2024, 3, 20)
	record, err := env.payroll.Create(ctx, in)
	require.NoError(t, err)

	env.settlement.now = func() time.Time { return time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC) }
	n, err := env.settlement.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	env.settlement.now = func() time.Time { return time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC) }
	n, err = env.settlement.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := env.payroll.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayrollPaid, got.Status)
}

func TestSettlementService_InvalidSchedule(t *testing.T) {
	env := newTestEnv(t)
	s := NewSettlementService(env.payrollRepo, "not a schedule")
	assert.Error(t, s.Start())
}
