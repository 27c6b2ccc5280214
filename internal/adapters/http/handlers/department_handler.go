package handlers

import (
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DepartmentHandler handles department endpoints
type DepartmentHandler struct {
	departmentService *services.DepartmentService
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// ListDepartments returns all departments
// @Summary List departments
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.departmentService.List(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, departments, len(departments))
}

// GetDepartment returns one department
// @Summary Get department
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *fiber.Ctx) error {
	department, err := h.departmentService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "", department)
}

// CreateDepartment creates a department
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DepartmentInput true "Department data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var req services.DepartmentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	department, err := h.departmentService.Create(c.UserContext(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Department created successfully", department)
}

// UpdateDepartment updates a department
// @Summary Update department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param body body services.DepartmentInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	var req services.DepartmentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	department, err := h.departmentService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Department updated successfully", department)
}

// DeleteDepartment deletes a department
// @Summary Delete department
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	if err := h.departmentService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Department deleted successfully", nil)
}

// InitializeDepartments replaces all departments with the default set
// @Summary Initialize departments
// @Description Replace every department with Operations, Logistics, HR, Finance and IT
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Router /departments/initialize [post]
func (h *DepartmentHandler) InitializeDepartments(c *fiber.Ctx) error {
	departments, err := h.departmentService.Initialize(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Departments initialized successfully", departments)
}
