package repositories

import (
	"context"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// departmentRepository implements DepartmentRepository interface
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(department).Error
	return translate(err, domain.ErrDepartmentNotFound, domain.ErrDepartmentExists)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).Preload("Manager").Where("id = ?", id).First(&department).Error
	if err != nil {
		return nil, translate(err, domain.ErrDepartmentNotFound, err)
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	err := r.db.WithContext(ctx).Preload("Manager").Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, translate(err, nil, err)
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(department).Error
	return translate(err, domain.ErrDepartmentNotFound, domain.ErrDepartmentExists)
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Department{})
	return requireAffected(result, domain.ErrDepartmentNotFound)
}

// ReplaceAll deletes every department and inserts the given set in one transaction
func (r *departmentRepository) ReplaceAll(ctx context.Context, departments []*models.Department) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Department{}).Error; err != nil {
			return translate(err, nil, err)
		}
		if len(departments) == 0 {
			return nil
		}
		err := tx.Omit(clause.Associations).Create(&departments).Error
		return translate(err, domain.ErrDepartmentNotFound, domain.ErrDepartmentExists)
	})
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Department{}).Count(&count).Error
	return count, translate(err, nil, err)
}
