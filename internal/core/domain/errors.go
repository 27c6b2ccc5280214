package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error that crosses the HTTP boundary is classified by one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("duplicate entry")
	ErrTimeout      = errors.New("data store timeout")
)

// Error is a classified error with a client-safe message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError creates a classified error
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation creates a validation error with a formatted message
func Validation(format string, args ...interface{}) error {
	return NewError(ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Auth errors
var (
	ErrInvalidCredentials = NewError(ErrUnauthorized, "Invalid credentials")
	ErrUserGone           = NewError(ErrUnauthorized, "User no longer exists")
	ErrWrongPassword      = NewError(ErrInvalidInput, "Current password is incorrect")
)

// User errors
var (
	ErrUserNotFound      = NewError(ErrNotFound, "User not found")
	ErrUserAlreadyExists = NewError(ErrConflict, "User with this email already exists")
	ErrCannotDeleteSelf  = NewError(ErrInvalidInput, "Cannot delete your own account")
)

// Employee errors
var (
	ErrEmployeeNotFound = NewError(ErrNotFound, "Employee not found")
	ErrEmployeeExists   = NewError(ErrConflict, "Employee with this email or employee ID already exists")
)

// Department errors
var (
	ErrDepartmentNotFound = NewError(ErrNotFound, "Department not found")
	ErrDepartmentExists   = NewError(ErrConflict, "Department with this name already exists")
)

// Vessel errors
var (
	ErrVesselNotFound  = NewError(ErrNotFound, "Vessel not found")
	ErrVesselExists    = NewError(ErrConflict, "Vessel with this ID or IMO number already exists")
	ErrAlreadyAssigned = NewError(ErrConflict, "Employee is already assigned to this vessel")
	ErrNotAssigned     = NewError(ErrInvalidInput, "Employee is not assigned to this vessel")
)

// Attendance errors
var (
	ErrAttendanceNotFound = NewError(ErrNotFound, "Attendance record not found")
	ErrAttendanceExists   = NewError(ErrConflict, "Attendance record already exists for this employee on this date")
)

// Payroll errors
var (
	ErrPayrollNotFound = NewError(ErrNotFound, "Payroll not found")
	ErrPayrollExists   = NewError(ErrConflict, "Payroll for this employee and pay period already exists")
)
