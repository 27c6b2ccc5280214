package repositories

import (
	"context"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// payrollRepository implements PayrollRepository interface
type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

// Create inserts a payroll record. The (employee, pay period) index rejects duplicates.
func (r *payrollRepository) Create(ctx context.Context, payroll *models.Payroll) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(payroll).Error
	return translate(err, domain.ErrPayrollNotFound, domain.ErrPayrollExists)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*models.Payroll, error) {
	var payroll models.Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Vessel").
		Where("id = ?", id).
		First(&payroll).Error
	if err != nil {
		return nil, translate(err, domain.ErrPayrollNotFound, err)
	}
	return &payroll, nil
}

// List returns records matching the filter, latest period end first.
// From and To select periods that lie entirely inside the range.
func (r *payrollRepository) List(ctx context.Context, filter PayrollFilter) ([]*models.Payroll, error) {
	query := r.db.WithContext(ctx).Preload("Employee").Preload("Vessel")

	if filter.VesselID != "" {
		query = query.Where("vessel_id = ?", filter.VesselID)
	}
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("period_start_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("period_end_date <= ?", *filter.To)
	}

	var payrolls []*models.Payroll
	if err := query.Order("period_end_date DESC").Order("created_at DESC").Find(&payrolls).Error; err != nil {
		return nil, translate(err, nil, err)
	}
	return payrolls, nil
}

func (r *payrollRepository) Update(ctx context.Context, payroll *models.Payroll) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(payroll).Error
	return translate(err, domain.ErrPayrollNotFound, domain.ErrPayrollExists)
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Payroll{})
	return requireAffected(result, domain.ErrPayrollNotFound)
}

// MarkPaidDue moves processed records whose payment date has passed to paid
func (r *payrollRepository) MarkPaidDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Payroll{}).
		Where("status = ? AND payment_date IS NOT NULL AND payment_date <= ?", domain.PayrollProcessed, now).
		Update("status", domain.PayrollPaid)
	if result.Error != nil {
		return 0, translate(result.Error, nil, result.Error)
	}
	return result.RowsAffected, nil
}
