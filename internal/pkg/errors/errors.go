package errors

import (
	"errors"
	"fmt"
)

// AppError - типизированная ошибка приложения.
// Вид ошибки определяется полем Code, а не текстом сообщения:
// классификация происходит в точке возникновения и дальше не пересматривается.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Retryable  bool                   `json:"retryable"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails возвращает копию ошибки с деталями,
// чтобы не мутировать общие sentinel-значения.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage возвращает копию ошибки с уточнённым сообщением.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is с sentinel-значениями.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

// IsRetryable сообщает, имеет ли смысл повторять операцию после этой ошибки.
func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}

// CodeOf возвращает код типизированной ошибки или пустую строку.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
