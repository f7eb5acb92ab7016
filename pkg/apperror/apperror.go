package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	JsonAppError       = "JsonAppError"
	ServerAppError     = "ServerAppError"
	HttpError          = "HttpError"
	ValidationAppError = "ValidationAppError"
	NotFoundAppError   = "NotFoundAppError"
)

type AppError struct {
	Type    string
	Message string
	Status  int
	Err     error
}

func NewError(errType, message string, status int, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status reports the http status carried by err, 500 for anything that is not an AppError.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// Message is the client-facing text for err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
