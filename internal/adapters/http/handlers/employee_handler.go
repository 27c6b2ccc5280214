package handlers

import (
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListEmployees returns employees
// @Summary List employees
// @Description List employees, optionally filtered by department, status and position
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department ID"
// @Param status query string false "Status"
// @Param position query string false "Position"
// @Success 200 {object} response.Response
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeService.List(c.UserContext(), repositories.EmployeeFilter{
		DepartmentID: filterParam(c, "department"),
		Status:       filterParam(c, "status"),
		Position:     filterParam(c, "position"),
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, employees, len(employees))
}

// GetEmployee returns one employee
// @Summary Get employee
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	employee, err := h.employeeService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "", employee)
}

// CreateEmployee creates an employee
// @Summary Create employee
// @Description Create an employee. The employee code is generated when omitted.
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEmployeeInput true "Employee data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req services.CreateEmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	employee, err := h.employeeService.Create(c.UserContext(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Employee created successfully", employee)
}

// UpdateEmployee updates an employee
// @Summary Update employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param body body services.UpdateEmployeeInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req services.UpdateEmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	employee, err := h.employeeService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Employee updated successfully", employee)
}

// DeleteEmployee deletes an employee
// @Summary Delete employee
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.employeeService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Employee deleted successfully", nil)
}
