package dto

import (
	"net/http"
	"strings"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// The INVALID_ family of validation codes is not enumerated here: any
// INVALID_-prefixed code not in the table maps to 400. Everything else
// unlisted falls back to 500.
var domainErrorHTTPStatus = map[string]int{
	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Input errors
	"VALIDATION_ERROR": http.StatusBadRequest,

	// Auth errors
	"UNAUTHORIZED": http.StatusUnauthorized,
	"FORBIDDEN":    http.StatusForbidden,

	// State and concurrency errors
	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"DUPLICATE_PRODUCT":       http.StatusUnprocessableEntity,
	"CONCURRENT_MODIFICATION": http.StatusConflict,
	"CONCURRENCY_CONFLICT":    http.StatusConflict,

	// Marketplace errors
	"OUT_OF_STOCK":    http.StatusConflict,
	"PARTIAL_FAILURE": http.StatusMultiStatus,

	// Infrastructure errors
	"SERVICE_UNAVAILABLE": http.StatusServiceUnavailable,
	"TIMEOUT":             http.StatusGatewayTimeout,
}

// HTTPStatusForCode returns the HTTP status for a domain error code,
// 500 when the code is unknown
func HTTPStatusForCode(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
