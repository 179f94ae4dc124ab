package errors

import "net/http"

// Ошибки транспортного уровня. Возникают в retrying-клиенте
// после исчерпания всех попыток.
var (
	ErrTimeout = &AppError{
		Code:       "TIMEOUT",
		Message:    "Upstream request timed out after all retries",
		StatusCode: http.StatusGatewayTimeout,
		Retryable:  true,
	}

	ErrNetwork = &AppError{
		Code:       "NETWORK_ERROR",
		Message:    "Upstream request failed at transport level after all retries",
		StatusCode: http.StatusBadGateway,
		Retryable:  true,
	}
)

// Ошибки, выведенные из HTTP-статуса ответа upstream. Не повторяются
// (5xx повторяется только при включённом флаге Retry5xx).
var (
	ErrUpstreamBadRequest = New(
		"UPSTREAM_BAD_REQUEST",
		"Upstream rejected the request (400)",
		http.StatusBadGateway,
	)

	ErrUpstreamUnauthorized = New(
		"UPSTREAM_UNAUTHORIZED",
		"Upstream rejected the service credential (401)",
		http.StatusBadGateway,
	)

	ErrUpstreamForbidden = New(
		"UPSTREAM_FORBIDDEN",
		"Upstream denied access (403)",
		http.StatusBadGateway,
	)

	ErrUpstreamNotFound = New(
		"UPSTREAM_NOT_FOUND",
		"Upstream endpoint not found (404)",
		http.StatusBadGateway,
	)

	ErrUpstreamServer = &AppError{
		Code:       "UPSTREAM_SERVER_ERROR",
		Message:    "Upstream internal error (5xx)",
		StatusCode: http.StatusBadGateway,
		Retryable:  true,
	}

	ErrUpstreamHTTP = New(
		"UPSTREAM_HTTP_ERROR",
		"Upstream returned an unexpected HTTP status",
		http.StatusBadGateway,
	)
)

// Ошибки, выведенные из resultCode в теле ответа upstream.
// Указывают на постоянную проблему запроса или квоты, никогда не повторяются.
var (
	ErrMissingParameter = New(
		"UPSTREAM_MISSING_PARAMETER",
		"Upstream reports a required parameter is missing",
		http.StatusBadGateway,
	)

	ErrInvalidParameter = New(
		"UPSTREAM_INVALID_PARAMETER",
		"Upstream reports an invalid request parameter",
		http.StatusBadGateway,
	)

	ErrAccessDenied = New(
		"UPSTREAM_ACCESS_DENIED",
		"Upstream denied access for the service credential",
		http.StatusBadGateway,
	)

	ErrQuotaExceeded = New(
		"UPSTREAM_QUOTA_EXCEEDED",
		"Upstream daily request quota exceeded",
		http.StatusTooManyRequests,
	)

	ErrServiceUnavailable = New(
		"UPSTREAM_SERVICE_UNAVAILABLE",
		"Upstream service is temporarily unavailable",
		http.StatusBadGateway,
	)

	ErrUpstreamGeneric = New(
		"UPSTREAM_ERROR",
		"Upstream returned an error result code",
		http.StatusBadGateway,
	)
)

// Локальные ошибки.
var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrBlankKeyword = New(
		"VALIDATION_ERROR",
		"Search keyword must not be blank",
		http.StatusBadRequest,
	)

	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrAggregateFailure = New(
		"AGGREGATE_FAILURE",
		"All statistics probes failed",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrAuthRequired = New(
		"AUTH_REQUIRED",
		"Authenticated user identity required",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
