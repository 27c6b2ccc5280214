package services

import (
	"context"
	"log"
	"strings"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
)

// VesselService handles vessels and their crew assignments
type VesselService struct {
	vesselRepo   repositories.VesselRepository
	employeeRepo repositories.EmployeeRepository
}

// NewVesselService creates a new vessel service
func NewVesselService(vesselRepo repositories.VesselRepository, employeeRepo repositories.EmployeeRepository) *VesselService {
	return &VesselService{
		vesselRepo:   vesselRepo,
		employeeRepo: employeeRepo,
	}
}

// VesselInput represents a vessel create or update. Update applies supplied fields only.
type VesselInput struct {
	VesselID         *string      `json:"vesselId"`
	VesselName       *string      `json:"vesselName"`
	IMO              *string      `json:"imo"`
	DeliveryDate     *domain.Time `json:"deliveryDate"`
	RegistrationDate *domain.Time `json:"registrationDate"`
	Status           *string      `json:"status"`
	Capacity         *float64     `json:"capacity"`
	Type             *string      `json:"type"`
	Flag             *string      `json:"flag"`
}

// List returns vessels, optionally filtered by status
func (s *VesselService) List(ctx context.Context, status string) ([]*models.Vessel, error) {
	return s.vesselRepo.List(ctx, status)
}

func (s *VesselService) Get(ctx context.Context, id string) (*models.Vessel, error) {
	return s.vesselRepo.GetByID(ctx, id)
}

func (s *VesselService) Create(ctx context.Context, input *VesselInput) (*models.Vessel, error) {
	vessel := &models.Vessel{Status: domain.VesselActive}
	applyVessel(vessel, input)

	if err := validateVessel(vessel); err != nil {
		return nil, err
	}
	if err := s.vesselRepo.Create(ctx, vessel); err != nil {
		return nil, err
	}

	log.Printf("✅ Vessel created: %s %s", vessel.VesselCode, vessel.VesselName)
	return s.vesselRepo.GetByID(ctx, vessel.ID)
}

func (s *VesselService) Update(ctx context.Context, id string, input *VesselInput) (*models.Vessel, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyVessel(vessel, input)

	if err := validateVessel(vessel); err != nil {
		return nil, err
	}
	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		return nil, err
	}
	return s.vesselRepo.GetByID(ctx, vessel.ID)
}

func (s *VesselService) Delete(ctx context.Context, id string) error {
	if err := s.vesselRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ Vessel deleted: %s", id)
	return nil
}

// AssignEmployee adds an employee to the vessel crew
func (s *VesselService) AssignEmployee(ctx context.Context, vesselID, employeeID string) (*models.Vessel, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, domain.Validation("employeeId is required")
	}
	vessel, employee, err := s.load(ctx, vesselID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.vesselRepo.AssignEmployee(ctx, vessel, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee %s assigned to vessel %s", employee.EmployeeCode, vessel.VesselCode)
	return s.vesselRepo.GetByID(ctx, vessel.ID)
}

// RemoveEmployee removes an employee from the vessel crew
func (s *VesselService) RemoveEmployee(ctx context.Context, vesselID, employeeID string) (*models.Vessel, error) {
	vessel, employee, err := s.load(ctx, vesselID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.vesselRepo.UnassignEmployee(ctx, vessel, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee %s removed from vessel %s", employee.EmployeeCode, vessel.VesselCode)
	return s.vesselRepo.GetByID(ctx, vessel.ID)
}

func (s *VesselService) load(ctx context.Context, vesselID, employeeID string) (*models.Vessel, *models.Employee, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, vesselID)
	if err != nil {
		return nil, nil, err
	}
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}
	return vessel, employee, nil
}

func applyVessel(v *models.Vessel, input *VesselInput) {
	v.VesselCode = strings.TrimSpace(pick(v.VesselCode, input.VesselID))
	v.VesselName = strings.TrimSpace(pick(v.VesselName, input.VesselName))
	v.IMO = strings.TrimSpace(pick(v.IMO, input.IMO))
	v.Status = pick(v.Status, input.Status)
	v.Capacity = pick(v.Capacity, input.Capacity)
	v.Type = pick(v.Type, input.Type)
	v.Flag = strings.TrimSpace(pick(v.Flag, input.Flag))
	if input.DeliveryDate != nil {
		v.DeliveryDate = input.DeliveryDate.Time
	}
	if input.RegistrationDate != nil {
		v.RegistrationDate = input.RegistrationDate.Time
	}
	v.AssignedEmployees = nil
}

func validateVessel(v *models.Vessel) error {
	if err := required(
		[2]string{"vesselId", v.VesselCode},
		[2]string{"vesselName", v.VesselName},
		[2]string{"imo", v.IMO},
		[2]string{"type", v.Type},
		[2]string{"flag", v.Flag},
	); err != nil {
		return err
	}
	if v.DeliveryDate.IsZero() {
		return domain.Validation("deliveryDate is required")
	}
	if v.RegistrationDate.IsZero() {
		return domain.Validation("registrationDate is required")
	}
	if err := checkEnum("status", v.Status, domain.VesselStatuses); err != nil {
		return err
	}
	if err := checkEnum("type", v.Type, domain.VesselTypes); err != nil {
		return err
	}
	if !positive(v.Capacity) {
		return domain.Validation("capacity must be greater than 0")
	}
	return nil
}
