package services

import (
	"context"
	"log"
	"strings"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
)

// AttendanceService handles daily attendance records
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	employeeRepo   repositories.EmployeeRepository
	vesselRepo     repositories.VesselRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	employeeRepo repositories.EmployeeRepository,
	vesselRepo repositories.VesselRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		vesselRepo:     vesselRepo,
	}
}

// AttendanceInput represents an attendance create or update. Update applies supplied fields only.
type AttendanceInput struct {
	EmployeeID   *string      `json:"employeeId"`
	EmployeeCode *string      `json:"employeeCode"`
	VesselID     *string      `json:"vessel"`
	Date         *domain.Time `json:"date"`
	Status       *string      `json:"status"`
	TimeIn       *domain.Time `json:"timeIn"`
	TimeOut      *domain.Time `json:"timeOut"`
	Day          *bool        `json:"day"`
	Night        *bool        `json:"night"`
	OTDay        *bool        `json:"otDay"`
	OTNight      *bool        `json:"otNight"`
	NP           *bool        `json:"np"`
	Remarks      *string      `json:"remarks"`
}

// BulkError reports one rejected item of a bulk request
type BulkError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// List returns records matching the filter
func (s *AttendanceService) List(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, error) {
	return s.attendanceRepo.List(ctx, filter)
}

func (s *AttendanceService) Get(ctx context.Context, id string) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// Create stores one record. The date is kept at day precision.
func (s *AttendanceService) Create(ctx context.Context, input *AttendanceInput) (*models.Attendance, error) {
	employee, err := s.resolveEmployee(ctx, input)
	if err != nil {
		return nil, err
	}

	record := &models.Attendance{EmployeeID: employee.ID}
	if err := s.apply(ctx, record, input); err != nil {
		return nil, err
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByID(ctx, record.ID)
}

// Bulk creates each item independently and reports the ones that failed
func (s *AttendanceService) Bulk(ctx context.Context, inputs []*AttendanceInput) ([]*models.Attendance, []BulkError, error) {
	if len(inputs) == 0 {
		return nil, nil, domain.Validation("records must be a non-empty array")
	}

	created := make([]*models.Attendance, 0, len(inputs))
	failures := []BulkError{}
	for i, input := range inputs {
		record, err := s.Create(ctx, input)
		if err != nil {
			if !isClientError(err) {
				return nil, nil, err
			}
			failures = append(failures, BulkError{Index: i, Message: err.Error()})
			continue
		}
		created = append(created, record)
	}

	log.Printf("✅ Bulk attendance: %d created, %d failed", len(created), len(failures))
	return created, failures, nil
}

// Update applies the supplied fields to a record
func (s *AttendanceService) Update(ctx context.Context, id string, input *AttendanceInput) (*models.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, record, input); err != nil {
		return nil, err
	}
	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByID(ctx, record.ID)
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceService) resolveEmployee(ctx context.Context, input *AttendanceInput) (*models.Employee, error) {
	switch {
	case input.EmployeeID != nil && strings.TrimSpace(*input.EmployeeID) != "":
		return s.employeeRepo.GetByID(ctx, strings.TrimSpace(*input.EmployeeID))
	case input.EmployeeCode != nil && strings.TrimSpace(*input.EmployeeCode) != "":
		return s.employeeRepo.GetByCode(ctx, strings.TrimSpace(*input.EmployeeCode))
	default:
		return nil, domain.Validation("employeeId is required")
	}
}

func (s *AttendanceService) apply(ctx context.Context, a *models.Attendance, input *AttendanceInput) error {
	a.Employee = nil
	a.Vessel = nil

	if input.Date != nil && !input.Date.IsZero() {
		a.Date = domain.StartOfDay(input.Date.Time)
	}
	a.Status = pick(a.Status, input.Status)
	if input.TimeIn != nil {
		a.TimeIn = timePtr(input.TimeIn)
	}
	if input.TimeOut != nil {
		a.TimeOut = timePtr(input.TimeOut)
	}
	a.Day = pick(a.Day, input.Day)
	a.Night = pick(a.Night, input.Night)
	a.OTDay = pick(a.OTDay, input.OTDay)
	a.OTNight = pick(a.OTNight, input.OTNight)
	a.NP = pick(a.NP, input.NP)
	a.Remarks = pick(a.Remarks, input.Remarks)

	if input.VesselID != nil {
		vesselID := strings.TrimSpace(*input.VesselID)
		if vesselID == "" {
			a.VesselID = nil
		} else {
			if _, err := s.vesselRepo.GetByID(ctx, vesselID); err != nil {
				return err
			}
			a.VesselID = &vesselID
		}
	}

	if a.Date.IsZero() {
		return domain.Validation("date is required")
	}
	if a.Status == "" {
		return domain.Validation("status is required")
	}
	if err := checkEnum("status", a.Status, domain.AttendanceStatuses); err != nil {
		return err
	}
	if a.TimeIn != nil && a.TimeOut != nil && a.TimeOut.Before(*a.TimeIn) {
		return domain.Validation("timeOut must not be before timeIn")
	}
	return nil
}

func timePtr(t *domain.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}
