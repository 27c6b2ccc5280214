package handlers

import (
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// BulkAttendanceRequest carries several attendance records
type BulkAttendanceRequest struct {
	Records []*services.AttendanceInput `json:"records"`
}

// ListAttendance returns attendance records
// @Summary List attendance
// @Description List attendance records. A value of "all" disables a filter.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "First day of range"
// @Param to query string false "Last day of range"
// @Param status query string false "Status"
// @Param vessel query string false "Vessel ID"
// @Param employee query string false "Employee ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *fiber.Ctx) error {
	filter := repositories.AttendanceFilter{
		Status:     filterParam(c, "status"),
		VesselID:   filterParam(c, "vessel"),
		EmployeeID: filterParam(c, "employee"),
	}

	day, err := dateParam(c, "date")
	if err != nil {
		return response.FromError(c, err)
	}
	if day != nil {
		filter.From, filter.To = day, day
	} else {
		if filter.From, err = dateParam(c, "from"); err != nil {
			return response.FromError(c, err)
		}
		if filter.To, err = dateParam(c, "to"); err != nil {
			return response.FromError(c, err)
		}
	}

	records, err := h.attendanceService.List(c.UserContext(), filter)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, records, len(records))
}

// GetAttendance returns one attendance record
// @Summary Get attendance record
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/{id} [get]
func (h *AttendanceHandler) GetAttendance(c *fiber.Ctx) error {
	record, err := h.attendanceService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "", record)
}

// CreateAttendance records attendance for one employee and day
// @Summary Create attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AttendanceInput true "Attendance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance [post]
func (h *AttendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	var req services.AttendanceInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Create(c.UserContext(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Attendance recorded successfully", record)
}

// BulkCreateAttendance records several attendance entries
// @Summary Bulk create attendance
// @Description Create each record independently; rejected items are listed in errors
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkAttendanceRequest true "Attendance records"
// @Success 201 {object} response.BulkResponse
// @Failure 400 {object} response.Response
// @Router /attendance/bulk [post]
func (h *AttendanceHandler) BulkCreateAttendance(c *fiber.Ctx) error {
	var req BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, failures, err := h.attendanceService.Bulk(c.UserContext(), req.Records)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Bulk(c, created, len(created), failures)
}

// UpdateAttendance updates an attendance record
// @Summary Update attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Param body body services.AttendanceInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	var req services.AttendanceInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Attendance updated successfully", record)
}

// DeleteAttendance deletes an attendance record
// @Summary Delete attendance record
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	if err := h.attendanceService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Attendance deleted successfully", nil)
}
