package repositories

import (
	"context"
	"strconv"
	"strings"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts an employee. Email and employee code are unique.
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(employee).Error
	return translate(err, domain.ErrEmployeeNotFound, domain.ErrEmployeeExists)
}

// GetByID gets an employee with its department
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Preload("Department").Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound, err)
	}
	return &employee, nil
}

// GetByCode gets an employee by employee code (EMP001)
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("employee_code = ?", code).First(&employee).Error
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound, err)
	}
	return &employee, nil
}

// List returns employees matching the filter, ordered by code
func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]*models.Employee, error) {
	query := r.db.WithContext(ctx).Preload("Department")

	if filter.DepartmentID != "" {
		query = query.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}

	var employees []*models.Employee
	if err := query.Order("employee_code ASC").Find(&employees).Error; err != nil {
		return nil, translate(err, nil, err)
	}
	return employees, nil
}

// Update saves all employee columns
func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(employee).Error
	return translate(err, domain.ErrEmployeeNotFound, domain.ErrEmployeeExists)
}

// Delete removes an employee and its vessel assignments
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM vessel_employees WHERE employee_id = ?", id).Error; err != nil {
			return translate(err, nil, err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Employee{})
		return requireAffected(result, domain.ErrEmployeeNotFound)
	})
}

// LastCode returns the code with the highest numeric suffix after prefix, or ""
// when none exist. Codes whose suffix is not a number are ignored.
func (r *employeeRepository) LastCode(ctx context.Context, prefix string) (string, error) {
	var codes []string
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_code LIKE ?", prefix+"%").
		Pluck("employee_code", &codes).Error
	if err != nil {
		return "", translate(err, nil, err)
	}

	last, best := "", -1
	for _, code := range codes {
		n, err := strconv.Atoi(strings.TrimPrefix(code, prefix))
		if err != nil || n < 0 {
			continue
		}
		if n > best {
			last, best = code, n
		}
	}
	return last, nil
}
