package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode classifies an AppError into the application's error taxonomy.
type ErrorCode string

const (
	CodeAuthRequired ErrorCode = "AUTH_REQUIRED"
	CodeAuthInvalid  ErrorCode = "AUTH_INVALID"
	CodeValidation   ErrorCode = "VALIDATION_FAILED"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeNotOwner     ErrorCode = "NOT_OWNER"
	CodeUnexpected   ErrorCode = "UNEXPECTED"
)

// ErrorResponse is the standardized API error body.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// AppError is a classified application error.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAuthRequiredError() *AppError {
	return &AppError{Code: CodeAuthRequired, Message: "login required"}
}

func NewAuthInvalidError() *AppError {
	return &AppError{Code: CodeAuthInvalid, Message: "authentication failed"}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewNotOwnerError(message string) *AppError {
	return &AppError{Code: CodeNotOwner, Message: message}
}

func NewUnexpectedError(err error) *AppError {
	return &AppError{Code: CodeUnexpected, Message: "request could not be processed", Err: err}
}

// CodeOf extracts the taxonomy code from an error, defaulting to UNEXPECTED
// for anything that is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnexpected
}

// RespondWithError writes a standardized error response. Internal detail on
// UNEXPECTED errors is never surfaced to the caller.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(status).JSON(ErrorResponse{ErrorMessage: appErr.Message})
	}
	return c.Status(status).JSON(ErrorResponse{ErrorMessage: "request could not be processed"})
}
