package response

import (
	"context"
	"errors"
	"log"
	"time"

	"valiant-hris/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AuthResponse is returned by login and registration
type AuthResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      interface{} `json:"user"`
}

// BulkResponse reports a bulk create. Errors lists the rejected items.
type BulkResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List sends a success response carrying a collection and its size
func List(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Bulk sends a 201 response for a bulk create
func Bulk(c *fiber.Ctx, data interface{}, count int, failures interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(BulkResponse{
		Success: true,
		Count:   count,
		Data:    data,
		Errors:  failures,
	})
}

// Token sends an authentication response
func Token(c *fiber.Ctx, status int, message, token string, expiresAt time.Time, user interface{}) error {
	return c.Status(status).JSON(AuthResponse{
		Success:   true,
		Message:   message,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusServiceUnavailable, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// FromError maps a classified error to its HTTP response.
// Unclassified errors are logged and answered with a generic 500.
func FromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return BadRequest(c, messageOf(err))
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized(c, messageOf(err))
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(c, messageOf(err))
	case errors.Is(err, domain.ErrNotFound):
		return NotFound(c, messageOf(err))
	case errors.Is(err, domain.ErrConflict):
		return Conflict(c, messageOf(err))
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		log.Printf("⚠️ %s %s: %v", c.Method(), c.Path(), err)
		return ServiceUnavailable(c, "Service temporarily unavailable, please retry")
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return InternalServerError(c, "Internal server error")
	}
}

func messageOf(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	for _, kind := range []error{
		domain.ErrInvalidInput,
		domain.ErrUnauthorized,
		domain.ErrForbidden,
		domain.ErrNotFound,
		domain.ErrConflict,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "Internal server error"
}
