package repositories

import (
	"context"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// EmployeeFilter narrows employee listings. Empty fields match everything.
type EmployeeFilter struct {
	DepartmentID string
	Status       string
	Position     string
}

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByCode(ctx context.Context, code string) (*models.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id string) error
	LastCode(ctx context.Context, prefix string) (string, error)
}

// DepartmentRepository defines department repository interface
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id string) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, departments []*models.Department) error
	Count(ctx context.Context) (int64, error)
}

// VesselRepository defines vessel repository interface
type VesselRepository interface {
	Create(ctx context.Context, vessel *models.Vessel) error
	GetByID(ctx context.Context, id string) (*models.Vessel, error)
	GetByCode(ctx context.Context, code string) (*models.Vessel, error)
	List(ctx context.Context, status string) ([]*models.Vessel, error)
	Update(ctx context.Context, vessel *models.Vessel) error
	Delete(ctx context.Context, id string) error
	IsAssigned(ctx context.Context, vesselID, employeeID string) (bool, error)
	AssignEmployee(ctx context.Context, vessel *models.Vessel, employee *models.Employee) error
	UnassignEmployee(ctx context.Context, vessel *models.Vessel, employee *models.Employee) error
	Count(ctx context.Context) (int64, error)
}

// AttendanceFilter narrows attendance listings. Zero fields match everything.
type AttendanceFilter struct {
	From       *time.Time
	To         *time.Time
	Status     string
	VesselID   string
	EmployeeID string
}

// AttendanceRepository defines attendance repository interface
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	GetByID(ctx context.Context, id string) (*models.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error)
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id string) error
}

// PayrollFilter narrows payroll listings. Zero fields match everything.
type PayrollFilter struct {
	VesselID   string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

// PayrollRepository defines payroll repository interface
type PayrollRepository interface {
	Create(ctx context.Context, payroll *models.Payroll) error
	GetByID(ctx context.Context, id string) (*models.Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]*models.Payroll, error)
	Update(ctx context.Context, payroll *models.Payroll) error
	Delete(ctx context.Context, id string) error
	MarkPaidDue(ctx context.Context, now time.Time) (int64, error)
}
