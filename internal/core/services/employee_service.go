package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
)

const (
	employeeCodePrefix = "EMP"
	maxCodeAttempts    = 5
)

// EmployeeService handles employee records
type EmployeeService struct {
	employeeRepo   repositories.EmployeeRepository
	departmentRepo repositories.DepartmentRepository
	now            func() time.Time
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository, departmentRepo repositories.DepartmentRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
	}
}

// CreateEmployeeInput represents a new employee
type CreateEmployeeInput struct {
	EmployeeID       string                  `json:"employeeId"`
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	DepartmentID     string                  `json:"departmentId"`
	Position         string                  `json:"position"`
	HireDate         *domain.Time            `json:"hireDate"`
	Salary           float64                 `json:"salary"`
	Status           string                  `json:"status"`
	Address          models.Address          `json:"address"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
}

// UpdateEmployeeInput changes the supplied fields only
type UpdateEmployeeInput struct {
	FirstName        *string                  `json:"firstName"`
	LastName         *string                  `json:"lastName"`
	Email            *string                  `json:"email"`
	Phone            *string                  `json:"phone"`
	DepartmentID     *string                  `json:"departmentId"`
	Position         *string                  `json:"position"`
	HireDate         *domain.Time             `json:"hireDate"`
	Salary           *float64                 `json:"salary"`
	Status           *string                  `json:"status"`
	Address          *models.Address          `json:"address"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact"`
}

// List returns employees matching the filter
func (s *EmployeeService) List(ctx context.Context, filter repositories.EmployeeFilter) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, filter)
}

// Get returns an employee by ID
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// Create validates and stores a new employee, generating the employee code when absent
func (s *EmployeeService) Create(ctx context.Context, input *CreateEmployeeInput) (*models.Employee, error) {
	employee := &models.Employee{
		EmployeeCode:     strings.TrimSpace(input.EmployeeID),
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Email:            NormalizeEmail(input.Email),
		Phone:            strings.TrimSpace(input.Phone),
		DepartmentID:     strings.TrimSpace(input.DepartmentID),
		Position:         input.Position,
		HireDate:         s.now().UTC(),
		Salary:           input.Salary,
		Status:           input.Status,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
	}
	if input.HireDate != nil && !input.HireDate.IsZero() {
		employee.HireDate = input.HireDate.Time
	}
	if employee.Status == "" {
		employee.Status = domain.EmployeeActive
	}

	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}

	if employee.EmployeeCode != "" {
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return nil, err
		}
	} else if err := s.createWithGeneratedCode(ctx, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee created: %s %s", employee.EmployeeCode, employee.FullName())
	return s.employeeRepo.GetByID(ctx, employee.ID)
}

// createWithGeneratedCode assigns the next free code. A concurrent insert that
// takes the same code loses on the unique index and retries with a fresh one.
func (s *EmployeeService) createWithGeneratedCode(ctx context.Context, employee *models.Employee) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		last, err := s.employeeRepo.LastCode(ctx, employeeCodePrefix)
		if err != nil {
			return err
		}
		employee.EmployeeCode = NextEmployeeCode(last)
		employee.ID = ""

		err = s.employeeRepo.Create(ctx, employee)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}

		// retry only when the code collided, not the email
		if _, lookupErr := s.employeeRepo.GetByCode(ctx, employee.EmployeeCode); lookupErr != nil {
			return err
		}
	}
	return domain.ErrEmployeeExists
}

// NextEmployeeCode returns the code following last (EMP001 when last is empty)
func NextEmployeeCode(last string) string {
	n, err := strconv.Atoi(strings.TrimPrefix(last, employeeCodePrefix))
	if err != nil || n < 0 {
		n = 0
	}
	return fmt.Sprintf("%s%03d", employeeCodePrefix, n+1)
}

// Update applies the supplied fields to an employee
func (s *EmployeeService) Update(ctx context.Context, id string, input *UpdateEmployeeInput) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.FirstName = strings.TrimSpace(pick(employee.FirstName, input.FirstName))
	employee.LastName = strings.TrimSpace(pick(employee.LastName, input.LastName))
	employee.Email = NormalizeEmail(pick(employee.Email, input.Email))
	employee.Phone = strings.TrimSpace(pick(employee.Phone, input.Phone))
	employee.DepartmentID = strings.TrimSpace(pick(employee.DepartmentID, input.DepartmentID))
	employee.Position = pick(employee.Position, input.Position)
	employee.Salary = pick(employee.Salary, input.Salary)
	employee.Status = pick(employee.Status, input.Status)
	employee.Address = pick(employee.Address, input.Address)
	employee.EmergencyContact = pick(employee.EmergencyContact, input.EmergencyContact)
	if input.HireDate != nil && !input.HireDate.IsZero() {
		employee.HireDate = input.HireDate.Time
	}
	employee.Department = nil

	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee updated: %s", employee.EmployeeCode)
	return s.employeeRepo.GetByID(ctx, employee.ID)
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ Employee deleted: %s", id)
	return nil
}

func (s *EmployeeService) validate(ctx context.Context, e *models.Employee) error {
	if err := required(
		[2]string{"firstName", e.FirstName},
		[2]string{"lastName", e.LastName},
		[2]string{"email", e.Email},
		[2]string{"phone", e.Phone},
		[2]string{"departmentId", e.DepartmentID},
		[2]string{"position", e.Position},
	); err != nil {
		return err
	}
	if !strings.Contains(e.Email, "@") {
		return domain.Validation("email is invalid")
	}
	if err := checkEnum("position", e.Position, domain.EmployeePositions); err != nil {
		return err
	}
	if err := checkEnum("status", e.Status, domain.EmployeeStatuses); err != nil {
		return err
	}
	if !positive(e.Salary) {
		return domain.Validation("salary must be greater than 0")
	}

	if _, err := s.departmentRepo.GetByID(ctx, e.DepartmentID); err != nil {
		return err
	}
	return nil
}
