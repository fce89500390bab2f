package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the HTTP layer itself
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back to prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Resource errors
	"NOT_FOUND":               http.StatusNotFound,
	"CONFIGURATION_NOT_FOUND": http.StatusNotFound,
	"ALREADY_EXISTS":          http.StatusConflict,
	"CONCURRENCY_CONFLICT":    http.StatusConflict,

	// Business rule violations
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":       http.StatusUnprocessableEntity,
	"SERIAL_SHORTFALL":         http.StatusUnprocessableEntity,
	"SERIAL_NOT_AVAILABLE":     http.StatusUnprocessableEntity,
	"SERIAL_NOT_CONSUMED":      http.StatusUnprocessableEntity,
	"SERIAL_NOT_SOLD":          http.StatusUnprocessableEntity,
	"WARRANTY_EXPIRED":         http.StatusUnprocessableEntity,
	"PROMOTION_EXPIRED":        http.StatusUnprocessableEntity,
	"PROMOTION_NOT_APPLICABLE": http.StatusUnprocessableEntity,
	"NO_DETAILS":               http.StatusUnprocessableEntity,
	"NO_ITEMS":                 http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unlisted INVALID_* codes map to 400 and DUPLICATE_* codes to 409; anything
// else is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	if strings.HasPrefix(code, "DUPLICATE_") {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
