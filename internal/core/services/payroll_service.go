package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/payroll"

	"golang.org/x/sync/errgroup"
)

// PayrollService handles payroll records
type PayrollService struct {
	payrollRepo  repositories.PayrollRepository
	employeeRepo repositories.EmployeeRepository
	vesselRepo   repositories.VesselRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	payrollRepo repositories.PayrollRepository,
	employeeRepo repositories.EmployeeRepository,
	vesselRepo repositories.VesselRepository,
) *PayrollService {
	return &PayrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		vesselRepo:   vesselRepo,
	}
}

// PayPeriodInput bounds a pay period
type PayPeriodInput struct {
	StartDate *domain.Time `json:"startDate"`
	EndDate   *domain.Time `json:"endDate"`
}

// DeductionsInput lists deductions; omitted entries are 0
type DeductionsInput struct {
	SSS        float64 `json:"sss"`
	PhilHealth float64 `json:"philhealth"`
	PagIBIG    float64 `json:"pagibig"`
	Tax        float64 `json:"tax"`
	Other      float64 `json:"other"`
}

// PayrollInput represents a new payroll record. The employee and vessel are
// referenced by ID or by code. GrossPay and NetPay are computed when omitted.
type PayrollInput struct {
	Employee               string          `json:"employee"`
	EmployeeCode           string          `json:"employeeCode"`
	Vessel                 string          `json:"vessel"`
	VesselCode             string          `json:"vesselCode"`
	PayPeriod              PayPeriodInput  `json:"payPeriod"`
	RegularHours           float64         `json:"regularHours"`
	OvertimeHours          float64         `json:"overtimeHours"`
	NightDifferentialHours float64         `json:"nightDifferentialHours"`
	SundayHours            float64         `json:"sundayHours"`
	SundayOvertimeHours    float64         `json:"sundayOvertimeHours"`
	HolidayHours           float64         `json:"holidayHours"`
	HolidayOvertimeHours   float64         `json:"holidayOvertimeHours"`
	Rate                   float64         `json:"rate"`
	GrossPay               *float64        `json:"grossPay"`
	Deductions             DeductionsInput `json:"deductions"`
	NetPay                 *float64        `json:"netPay"`
	Status                 string          `json:"status"`
	PaymentDate            *domain.Time    `json:"paymentDate"`
	Remarks                string          `json:"remarks"`
}

// UpdatePayrollInput changes the supplied fields only. Derived pay is
// recomputed when hours, rate or deductions change and it is not supplied.
type UpdatePayrollInput struct {
	Vessel                 *string          `json:"vessel"`
	PayPeriod              *PayPeriodInput  `json:"payPeriod"`
	RegularHours           *float64         `json:"regularHours"`
	OvertimeHours          *float64         `json:"overtimeHours"`
	NightDifferentialHours *float64         `json:"nightDifferentialHours"`
	SundayHours            *float64         `json:"sundayHours"`
	SundayOvertimeHours    *float64         `json:"sundayOvertimeHours"`
	HolidayHours           *float64         `json:"holidayHours"`
	HolidayOvertimeHours   *float64         `json:"holidayOvertimeHours"`
	Rate                   *float64         `json:"rate"`
	GrossPay               *float64         `json:"grossPay"`
	Deductions             *DeductionsInput `json:"deductions"`
	NetPay                 *float64         `json:"netPay"`
	Status                 *string          `json:"status"`
	PaymentDate            *domain.Time     `json:"paymentDate"`
	Remarks                *string          `json:"remarks"`
}

// List returns records matching the filter, latest period end first
func (s *PayrollService) List(ctx context.Context, filter repositories.PayrollFilter) ([]*models.Payroll, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.Validation("startDate must not be after endDate")
	}
	return s.payrollRepo.List(ctx, filter)
}

// ListByVessel returns the payroll of filter.VesselID, optionally bounded by
// filter.From and filter.To. When nothing matches, it returns unsaved zero-hour
// templates for the assigned crew and templates is true.
func (s *PayrollService) ListByVessel(ctx context.Context, filter repositories.PayrollFilter) (records []*models.Payroll, templates bool, err error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, false, domain.Validation("startDate must not be after endDate")
	}
	vesselID := filter.VesselID
	filter.EmployeeID = ""

	var vessel *models.Vessel

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vessel, err = s.vesselRepo.GetByID(gctx, vesselID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.payrollRepo.List(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	if len(records) > 0 {
		return records, false, nil
	}

	records = make([]*models.Payroll, 0, len(vessel.AssignedEmployees))
	for i := range vessel.AssignedEmployees {
		employee := vessel.AssignedEmployees[i]
		records = append(records, &models.Payroll{
			EmployeeID: employee.ID,
			Employee:   &employee,
			VesselID:   &vessel.ID,
			Rate:       employee.Salary,
			Status:     domain.PayrollPending,
		})
	}
	return records, true, nil
}

func (s *PayrollService) Get(ctx context.Context, id string) (*models.Payroll, error) {
	return s.payrollRepo.GetByID(ctx, id)
}

// Create validates, computes derived pay and stores a record
func (s *PayrollService) Create(ctx context.Context, input *PayrollInput) (*models.Payroll, error) {
	employee, vessel, err := s.resolveRefs(ctx, input)
	if err != nil {
		return nil, err
	}

	record := &models.Payroll{
		EmployeeID:             employee.ID,
		RegularHours:           input.RegularHours,
		OvertimeHours:          input.OvertimeHours,
		NightDifferentialHours: input.NightDifferentialHours,
		SundayHours:            input.SundayHours,
		SundayOvertimeHours:    input.SundayOvertimeHours,
		HolidayHours:           input.HolidayHours,
		HolidayOvertimeHours:   input.HolidayOvertimeHours,
		Rate:                   input.Rate,
		Deductions:             models.Deductions(input.Deductions),
		Status:                 input.Status,
		PaymentDate:            timePtr(input.PaymentDate),
		Remarks:                input.Remarks,
	}
	if vessel != nil {
		record.VesselID = &vessel.ID
	}
	if record.Status == "" {
		record.Status = domain.PayrollPending
	}

	if err := setPeriod(record, &input.PayPeriod); err != nil {
		return nil, err
	}
	if err := derivePay(record, input.GrossPay, input.NetPay, true); err != nil {
		return nil, err
	}
	if err := checkEnum("status", record.Status, domain.PayrollStatuses); err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Payroll created: %s %s..%s gross=%.2f net=%.2f",
		employee.EmployeeCode,
		record.PayPeriod.StartDate.Format("2006-01-02"),
		record.PayPeriod.EndDate.Format("2006-01-02"),
		record.GrossPay,
		record.NetPay,
	)
	return s.payrollRepo.GetByID(ctx, record.ID)
}

// Bulk creates each item independently and reports the ones that failed
func (s *PayrollService) Bulk(ctx context.Context, inputs []*PayrollInput) ([]*models.Payroll, []BulkError, error) {
	if len(inputs) == 0 {
		return nil, nil, domain.Validation("payrolls must be a non-empty array")
	}

	created := make([]*models.Payroll, 0, len(inputs))
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

	log.Printf("✅ Bulk payroll: %d created, %d failed", len(created), len(failures))
	return created, failures, nil
}

// Update applies the supplied fields to a record
func (s *PayrollService) Update(ctx context.Context, id string, input *UpdatePayrollInput) (*models.Payroll, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Employee = nil
	record.Vessel = nil

	if input.Vessel != nil {
		vesselID := strings.TrimSpace(*input.Vessel)
		if vesselID == "" {
			record.VesselID = nil
		} else {
			if _, err := s.vesselRepo.GetByID(ctx, vesselID); err != nil {
				return nil, err
			}
			record.VesselID = &vesselID
		}
	}
	if input.PayPeriod != nil {
		period := PayPeriodInput{StartDate: input.PayPeriod.StartDate, EndDate: input.PayPeriod.EndDate}
		if period.StartDate == nil {
			period.StartDate = &domain.Time{Time: record.PayPeriod.StartDate}
		}
		if period.EndDate == nil {
			period.EndDate = &domain.Time{Time: record.PayPeriod.EndDate}
		}
		if err := setPeriod(record, &period); err != nil {
			return nil, err
		}
	}

	record.RegularHours = pick(record.RegularHours, input.RegularHours)
	record.OvertimeHours = pick(record.OvertimeHours, input.OvertimeHours)
	record.NightDifferentialHours = pick(record.NightDifferentialHours, input.NightDifferentialHours)
	record.SundayHours = pick(record.SundayHours, input.SundayHours)
	record.SundayOvertimeHours = pick(record.SundayOvertimeHours, input.SundayOvertimeHours)
	record.HolidayHours = pick(record.HolidayHours, input.HolidayHours)
	record.HolidayOvertimeHours = pick(record.HolidayOvertimeHours, input.HolidayOvertimeHours)
	record.Rate = pick(record.Rate, input.Rate)
	if input.Deductions != nil {
		record.Deductions = models.Deductions(*input.Deductions)
	}
	record.Status = pick(record.Status, input.Status)
	record.Remarks = pick(record.Remarks, input.Remarks)
	if input.PaymentDate != nil {
		record.PaymentDate = timePtr(input.PaymentDate)
	}

	inputsChanged := input.RegularHours != nil || input.OvertimeHours != nil ||
		input.NightDifferentialHours != nil || input.SundayHours != nil ||
		input.SundayOvertimeHours != nil || input.HolidayHours != nil ||
		input.HolidayOvertimeHours != nil || input.Rate != nil || input.Deductions != nil

	if inputsChanged || input.GrossPay != nil || input.NetPay != nil {
		if err := derivePay(record, input.GrossPay, input.NetPay, inputsChanged || input.GrossPay != nil); err != nil {
			return nil, err
		}
	}
	if err := checkEnum("status", record.Status, domain.PayrollStatuses); err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Payroll updated: %s", record.ID)
	return s.payrollRepo.GetByID(ctx, record.ID)
}

func (s *PayrollService) Delete(ctx context.Context, id string) error {
	if err := s.payrollRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ Payroll deleted: %s", id)
	return nil
}

// resolveRefs looks up the employee and the optional vessel concurrently
func (s *PayrollService) resolveRefs(ctx context.Context, input *PayrollInput) (*models.Employee, *models.Vessel, error) {
	employeeID := strings.TrimSpace(input.Employee)
	employeeCode := strings.TrimSpace(input.EmployeeCode)
	vesselID := strings.TrimSpace(input.Vessel)
	vesselCode := strings.TrimSpace(input.VesselCode)

	if employeeID == "" && employeeCode == "" {
		return nil, nil, domain.Validation("employee is required")
	}

	var employee *models.Employee
	var vessel *models.Vessel

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if employeeID != "" {
			employee, err = s.employeeRepo.GetByID(gctx, employeeID)
		} else {
			employee, err = s.employeeRepo.GetByCode(gctx, employeeCode)
		}
		return err
	})
	if vesselID != "" || vesselCode != "" {
		g.Go(func() error {
			var err error
			if vesselID != "" {
				vessel, err = s.vesselRepo.GetByID(gctx, vesselID)
			} else {
				vessel, err = s.vesselRepo.GetByCode(gctx, vesselCode)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return employee, vessel, nil
}

func setPeriod(p *models.Payroll, period *PayPeriodInput) error {
	if period.StartDate == nil || period.StartDate.IsZero() ||
		period.EndDate == nil || period.EndDate.IsZero() {
		return domain.Validation("Pay period start and end dates are required")
	}
	start := domain.StartOfDay(period.StartDate.Time)
	end := domain.StartOfDay(period.EndDate.Time)
	if start.After(end) {
		return domain.Validation("Pay period start date must not be after end date")
	}
	p.PayPeriod = models.PayPeriod{StartDate: start, EndDate: end}
	return nil
}

// derivePay validates pay inputs and fills GrossPay and NetPay.
// Supplied values, 0 included, are stored as given; omitted values are computed.
// recomputeGross controls whether an omitted gross replaces the stored one.
func derivePay(p *models.Payroll, gross, net *float64, recomputeGross bool) error {
	hours := payroll.Hours{
		Regular:           p.RegularHours,
		Overtime:          p.OvertimeHours,
		NightDifferential: p.NightDifferentialHours,
		Sunday:            p.SundayHours,
		SundayOvertime:    p.SundayOvertimeHours,
		Holiday:           p.HolidayHours,
		HolidayOvertime:   p.HolidayOvertimeHours,
	}
	deductions := payroll.Deductions(p.Deductions)

	if err := payroll.ValidateDeductions(deductions); err != nil {
		return calculatorError(err)
	}
	computed, err := payroll.Gross(p.Rate, hours)
	if err != nil {
		return calculatorError(err)
	}

	switch {
	case supplied(gross):
		if !finite(*gross) || *gross < 0 {
			return domain.Validation("grossPay must be 0 or greater")
		}
		p.GrossPay = *gross
	case recomputeGross:
		p.GrossPay = computed
	}

	if supplied(net) {
		if !finite(*net) {
			return domain.Validation("netPay must be a number")
		}
		p.NetPay = *net
	} else {
		p.NetPay = payroll.Net(p.GrossPay, deductions)
	}
	return nil
}

func supplied(v *float64) bool {
	return v != nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func calculatorError(err error) error {
	var verr *payroll.ValidationError
	if errors.As(err, &verr) {
		return domain.Validation("%s", verr.Error())
	}
	return err
}
