package repositories

import (
	"context"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vesselRepository implements VesselRepository interface
type vesselRepository struct {
	db *gorm.DB
}

// NewVesselRepository creates a new vessel repository
func NewVesselRepository(db *gorm.DB) VesselRepository {
	return &vesselRepository{db: db}
}

// Create inserts a vessel. Vessel code and IMO number are unique.
func (r *vesselRepository) Create(ctx context.Context, vessel *models.Vessel) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(vessel).Error
	return translate(err, domain.ErrVesselNotFound, domain.ErrVesselExists)
}

// GetByID gets a vessel with its assigned employees
func (r *vesselRepository) GetByID(ctx context.Context, id string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.WithContext(ctx).Preload("AssignedEmployees").Where("id = ?", id).First(&vessel).Error
	if err != nil {
		return nil, translate(err, domain.ErrVesselNotFound, err)
	}
	return &vessel, nil
}

// GetByCode gets a vessel by vessel code (VSL-001)
func (r *vesselRepository) GetByCode(ctx context.Context, code string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.WithContext(ctx).Where("vessel_code = ?", code).First(&vessel).Error
	if err != nil {
		return nil, translate(err, domain.ErrVesselNotFound, err)
	}
	return &vessel, nil
}

// List returns vessels, optionally only those with the given status
func (r *vesselRepository) List(ctx context.Context, status string) ([]*models.Vessel, error) {
	query := r.db.WithContext(ctx).Preload("AssignedEmployees")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var vessels []*models.Vessel
	if err := query.Order("vessel_code ASC").Find(&vessels).Error; err != nil {
		return nil, translate(err, nil, err)
	}
	return vessels, nil
}

// Update saves vessel columns. Assignments are changed through AssignEmployee.
func (r *vesselRepository) Update(ctx context.Context, vessel *models.Vessel) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(vessel).Error
	return translate(err, domain.ErrVesselNotFound, domain.ErrVesselExists)
}

// Delete removes a vessel and its assignments
func (r *vesselRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM vessel_employees WHERE vessel_id = ?", id).Error; err != nil {
			return translate(err, nil, err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Vessel{})
		return requireAffected(result, domain.ErrVesselNotFound)
	})
}

func (r *vesselRepository) IsAssigned(ctx context.Context, vesselID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("vessel_employees").
		Where("vessel_id = ? AND employee_id = ?", vesselID, employeeID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, nil, err)
	}
	return count > 0, nil
}

// AssignEmployee adds the employee to the vessel crew.
// The join table primary key rejects a second assignment.
func (r *vesselRepository) AssignEmployee(ctx context.Context, vessel *models.Vessel, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO vessel_employees (vessel_id, employee_id) VALUES (?, ?)",
		vessel.ID, employee.ID,
	).Error
	return translate(err, domain.ErrVesselNotFound, domain.ErrAlreadyAssigned)
}

// UnassignEmployee removes the employee from the vessel crew
func (r *vesselRepository) UnassignEmployee(ctx context.Context, vessel *models.Vessel, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM vessel_employees WHERE vessel_id = ? AND employee_id = ?",
		vessel.ID, employee.ID,
	)
	return requireAffected(result, domain.ErrNotAssigned)
}

func (r *vesselRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vessel{}).Count(&count).Error
	return count, translate(err, nil, err)
}
