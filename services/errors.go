package services

import "github.com/gofiber/fiber/v2"

// SpinError is the single structured error type for domain failures. The
// transport layer renders it uniformly via helpers.JSONFail.
type SpinError struct {
	Message string
	Status  int
}

func (e *SpinError) Error() string {
	return e.Message
}

func (e *SpinError) StatusCode() int {
	return e.Status
}

func NewNotFound(message string) *SpinError {
	return &SpinError{Message: message, Status: fiber.StatusNotFound}
}

func NewInvalid(message string) *SpinError {
	return &SpinError{Message: message, Status: fiber.StatusBadRequest}
}

func NewUnauthorized(message string) *SpinError {
	return &SpinError{Message: message, Status: fiber.StatusUnauthorized}
}

func NewServerError(message string) *SpinError {
	return &SpinError{Message: message, Status: fiber.StatusInternalServerError}
}
