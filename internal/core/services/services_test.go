package services

import (
	"context"
	"testing"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/jwt"
	"valiant-hris/internal/pkg/password"
	"valiant-hris/internal/testutil"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	auth        *AuthService
	users       *UserService
	employees   *EmployeeService
	departments *DepartmentService
	vessels     *VesselService
	attendance  *AttendanceService
	payroll     *PayrollService
	settlement  *SettlementService
	issuer      *jwt.Issuer
	userRepo    repositories.UserRepository
	payrollRepo repositories.PayrollRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)

	userRepo := repositories.NewUserRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	departmentRepo := repositories.NewDepartmentRepository(db)
	vesselRepo := repositories.NewVesselRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	payrollRepo := repositories.NewPayrollRepository(db)

	hasher := password.NewHasher(password.MinCost)
	issuer := jwt.NewIssuer(jwt.Config{Secret: "test-secret", Expiry: time.Hour})

	return &testEnv{
		auth:        NewAuthService(userRepo, hasher, issuer),
		users:       NewUserService(userRepo, hasher),
		employees:   NewEmployeeService(employeeRepo, departmentRepo),
		departments: NewDepartmentService(departmentRepo, employeeRepo),
		vessels:     NewVesselService(vesselRepo, employeeRepo),
		attendance:  NewAttendanceService(attendanceRepo, employeeRepo, vesselRepo),
		payroll:     NewPayrollService(payrollRepo, employeeRepo, vesselRepo),
		settlement:  NewSettlementService(payrollRepo, ""),
		issuer:      issuer,
		userRepo:    userRepo,
		payrollRepo: payrollRepo,
	}
}

func strp(s string) *string { return &s }

func f64(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) *domain.Time {
	return &domain.Time{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (e *testEnv) department(t *testing.T, name string) *models.Department {
	t.Helper()
	d, err := e.departments.Create(context.Background(), &DepartmentInput{Name: strp(name)})
	require.NoError(t, err)
	return d
}

func (e *testEnv) employee(t *testing.T, departmentID, email string) *models.Employee {
	t.Helper()
	emp, err := e.employees.Create(context.Background(), &CreateEmployeeInput{
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Email:        email,
		Phone:        "09170000000",
		DepartmentID: departmentID,
		Position:     "Stevedor",
		Salary:       100,
	})
	require.NoError(t, err)
	return emp
}

func (e *testEnv) vessel(t *testing.T, code, imo string) *models.Vessel {
	t.Helper()
	v, err := e.vessels.Create(context.Background(), &VesselInput{
		VesselID:         strp(code),
		VesselName:       strp("Valiant"),
		IMO:              strp(imo),
		DeliveryDate:     day(2020, 1, 15),
		RegistrationDate: day(2020, 2, 1),
		Capacity:         f64(5000),
		Type:             strp("Cargo"),
		Flag:             strp("Philippines"),
	})
	require.NoError(t, err)
	return v
}
