package handlers

import (
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PayrollHandler handles payroll endpoints
type PayrollHandler struct {
	payrollService *services.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// BulkPayrollRequest carries several payroll records
type BulkPayrollRequest struct {
	Payrolls []*services.PayrollInput `json:"payrolls"`
}

// ListPayroll returns payroll records, latest period end first
// @Summary List payroll
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Param vesselId query string false "Vessel ID"
// @Param startDate query string false "Earliest period start (YYYY-MM-DD)"
// @Param endDate query string false "Latest period end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payroll [get]
func (h *PayrollHandler) ListPayroll(c *fiber.Ctx) error {
	filter := repositories.PayrollFilter{VesselID: filterParam(c, "vesselId")}

	var err error
	if filter.From, err = dateParam(c, "startDate"); err != nil {
		return response.FromError(c, err)
	}
	if filter.To, err = dateParam(c, "endDate"); err != nil {
		return response.FromError(c, err)
	}

	records, err := h.payrollService.List(c.UserContext(), filter)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, records, len(records))
}

// ListVesselPayroll returns the payroll of a vessel, or unsaved templates for
// its crew when none has been recorded
// @Summary List vessel payroll
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Param vesselId path string true "Vessel ID"
// @Param startDate query string false "Earliest period start (YYYY-MM-DD)"
// @Param endDate query string false "Latest period end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payroll/vessel/{vesselId} [get]
func (h *PayrollHandler) ListVesselPayroll(c *fiber.Ctx) error {
	filter := repositories.PayrollFilter{VesselID: c.Params("vesselId")}

	var err error
	if filter.From, err = dateParam(c, "startDate"); err != nil {
		return response.FromError(c, err)
	}
	if filter.To, err = dateParam(c, "endDate"); err != nil {
		return response.FromError(c, err)
	}

	records, templates, err := h.payrollService.ListByVessel(c.UserContext(), filter)
	if err != nil {
		return response.FromError(c, err)
	}

	count := len(records)
	res := response.Response{Success: true, Count: &count, Data: records}
	if templates {
		res.Message = "No payroll recorded yet, showing templates for the assigned crew"
	}
	return c.JSON(res)
}

// GetPayroll returns one payroll record
// @Summary Get payroll record
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payroll ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payroll/{id} [get]
func (h *PayrollHandler) GetPayroll(c *fiber.Ctx) error {
	record, err := h.payrollService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "", record)
}

// CreatePayroll creates a payroll record
// @Summary Create payroll record
// @Description Gross and net pay are computed when omitted
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PayrollInput true "Payroll data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payroll [post]
func (h *PayrollHandler) CreatePayroll(c *fiber.Ctx) error {
	var req services.PayrollInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.payrollService.Create(c.UserContext(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Payroll created successfully", record)
}

// BulkCreatePayroll creates several payroll records
// @Summary Bulk create payroll
// @Description Items may reference employeeCode and vesselCode; rejected items are listed in errors
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkPayrollRequest true "Payroll records"
// @Success 201 {object} response.BulkResponse
// @Failure 400 {object} response.Response
// @Router /payroll/bulk [post]
func (h *PayrollHandler) BulkCreatePayroll(c *fiber.Ctx) error {
	var req BulkPayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, failures, err := h.payrollService.Bulk(c.UserContext(), req.Payrolls)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Bulk(c, created, len(created), failures)
}

// UpdatePayroll updates a payroll record
// @Summary Update payroll record
// @Description Derived pay is recomputed when hours, rate or deductions change
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payroll ID"
// @Param body body services.UpdatePayrollInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payroll/{id} [put]
func (h *PayrollHandler) UpdatePayroll(c *fiber.Ctx) error {
	var req services.UpdatePayrollInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.payrollService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Payroll updated successfully", record)
}

// DeletePayroll deletes a payroll record
// @Summary Delete payroll record
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payroll ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payroll/{id} [delete]
func (h *PayrollHandler) DeletePayroll(c *fiber.Ctx) error {
	if err := h.payrollService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Payroll deleted successfully", nil)
}
