package handlers

import (
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VesselHandler handles vessel endpoints
type VesselHandler struct {
	vesselService *services.VesselService
}

// NewVesselHandler creates a new vessel handler
func NewVesselHandler(vesselService *services.VesselService) *VesselHandler {
	return &VesselHandler{vesselService: vesselService}
}

// AssignEmployeeRequest names the employee to assign
type AssignEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

// ListVessels returns vessels
// @Summary List vessels
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Param status query string false "Vessel status"
// @Success 200 {object} response.Response
// @Router /vessels [get]
func (h *VesselHandler) ListVessels(c *fiber.Ctx) error {
	vessels, err := h.vesselService.List(c.UserContext(), filterParam(c, "status"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, vessels, len(vessels))
}

// GetVessel returns one vessel with its crew
// @Summary Get vessel
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vessel ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vessels/{id} [get]
func (h *VesselHandler) GetVessel(c *fiber.Ctx) error {
	vessel, err := h.vesselService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "", vessel)
}

// CreateVessel creates a vessel
// @Summary Create vessel
// @Tags Vessels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.VesselInput true "Vessel data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vessels [post]
func (h *VesselHandler) CreateVessel(c *fiber.Ctx) error {
	var req services.VesselInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	vessel, err := h.vesselService.Create(c.UserContext(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Vessel created successfully", vessel)
}

// UpdateVessel updates a vessel
// @Summary Update vessel
// @Tags Vessels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vessel ID"
// @Param body body services.VesselInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vessels/{id} [put]
func (h *VesselHandler) UpdateVessel(c *fiber.Ctx) error {
	var req services.VesselInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	vessel, err := h.vesselService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Vessel updated successfully", vessel)
}

// DeleteVessel deletes a vessel
// @Summary Delete vessel
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vessel ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vessels/{id} [delete]
func (h *VesselHandler) DeleteVessel(c *fiber.Ctx) error {
	if err := h.vesselService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Vessel deleted successfully", nil)
}

// AssignEmployee adds an employee to the vessel crew
// @Summary Assign employee to vessel
// @Tags Vessels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vessel ID"
// @Param body body AssignEmployeeRequest true "Employee to assign"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vessels/{id}/employees [post]
func (h *VesselHandler) AssignEmployee(c *fiber.Ctx) error {
	var req AssignEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	vessel, err := h.vesselService.AssignEmployee(c.UserContext(), c.Params("id"), req.EmployeeID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Employee assigned successfully", vessel)
}

// RemoveEmployee removes an employee from the vessel crew
// @Summary Remove employee from vessel
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vessel ID"
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vessels/{id}/employees/{employeeId} [delete]
func (h *VesselHandler) RemoveEmployee(c *fiber.Ctx) error {
	vessel, err := h.vesselService.RemoveEmployee(c.UserContext(), c.Params("id"), c.Params("employeeId"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Employee removed successfully", vessel)
}
