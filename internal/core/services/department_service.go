package services

import (
	"context"
	"log"
	"strings"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
)

// DefaultDepartments is the sample set installed by Initialize
var DefaultDepartments = []models.Department{
	{Name: "Operations", Description: "Port and vessel operations"},
	{Name: "Logistics", Description: "Cargo handling and delivery"},
	{Name: "HR", Description: "Human resources"},
	{Name: "Finance", Description: "Payroll and accounting"},
	{Name: "IT", Description: "Information technology"},
}

// DepartmentService handles departments
type DepartmentService struct {
	departmentRepo repositories.DepartmentRepository
	employeeRepo   repositories.EmployeeRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo repositories.DepartmentRepository, employeeRepo repositories.EmployeeRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// DepartmentInput represents a department create or update
type DepartmentInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId"`
}

func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Create stores a department. Name is required and unique.
func (s *DepartmentService) Create(ctx context.Context, input *DepartmentInput) (*models.Department, error) {
	department := &models.Department{}
	if err := s.apply(ctx, department, input); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	log.Printf("✅ Department created: %s", department.Name)
	return s.departmentRepo.GetByID(ctx, department.ID)
}

// Update applies the supplied fields. An empty managerId clears the manager.
func (s *DepartmentService) Update(ctx context.Context, id string, input *DepartmentInput) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, department, input); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return s.departmentRepo.GetByID(ctx, department.ID)
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ Department deleted: %s", id)
	return nil
}

// Initialize replaces every department with DefaultDepartments
func (s *DepartmentService) Initialize(ctx context.Context) ([]*models.Department, error) {
	departments := make([]*models.Department, len(DefaultDepartments))
	for i := range DefaultDepartments {
		d := DefaultDepartments[i]
		departments[i] = &d
	}

	if err := s.departmentRepo.ReplaceAll(ctx, departments); err != nil {
		return nil, err
	}

	log.Printf("✅ Departments initialized: %d", len(departments))
	return s.departmentRepo.List(ctx)
}

func (s *DepartmentService) apply(ctx context.Context, d *models.Department, input *DepartmentInput) error {
	d.Name = strings.TrimSpace(pick(d.Name, input.Name))
	d.Description = pick(d.Description, input.Description)
	d.Manager = nil

	if input.ManagerID != nil {
		managerID := strings.TrimSpace(*input.ManagerID)
		if managerID == "" {
			d.ManagerID = nil
		} else {
			if _, err := s.employeeRepo.GetByID(ctx, managerID); err != nil {
				return err
			}
			d.ManagerID = &managerID
		}
	}

	if d.Name == "" {
		return domain.Validation("Department name is required")
	}
	return nil
}
