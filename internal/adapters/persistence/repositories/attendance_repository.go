package repositories

import (
	"context"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts a record. A second record for the same employee and day is a conflict.
func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
	return translate(err, domain.ErrAttendanceNotFound, domain.ErrAttendanceExists)
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Vessel").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, translate(err, domain.ErrAttendanceNotFound, err)
	}
	return &record, nil
}

// List returns records matching the filter, newest day first
func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error) {
	query := r.db.WithContext(ctx).Preload("Employee").Preload("Vessel")

	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VesselID != "" {
		query = query.Where("vessel_id = ?", filter.VesselID)
	}
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}

	var records []*models.Attendance
	if err := query.Order("date DESC").Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, translate(err, nil, err)
	}
	return records, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
	return translate(err, domain.ErrAttendanceNotFound, domain.ErrAttendanceExists)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Attendance{})
	return requireAffected(result, domain.ErrAttendanceNotFound)
}
