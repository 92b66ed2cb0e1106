package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
	ErrStatusUnavailable    = http.StatusServiceUnavailable
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrNotFound       = errors.New("Resource not found")
	ErrConflict       = errors.New("Conflicting record found")
	ErrUpstream       = errors.New("Upstream service returned an error")
	ErrUpstreamDown   = errors.New("Upstream service is unavailable")
	ErrMissingSetting = errors.New("Required setting is missing")
	ErrInvalidOrderID = errors.New("Order ID is required")
	ErrInvalidUserID  = errors.New("User ID is required")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrNotFound:       ErrStatusNotFound,
	ErrConflict:       ErrStatusConflict,
	ErrUpstream:       ErrStatusBadGateway,
	ErrUpstreamDown:   ErrStatusUnavailable,
	ErrMissingSetting: ErrStatusInternalServer,
	ErrInvalidOrderID: ErrStatusClient,
	ErrInvalidUserID:  ErrStatusClient,
}

// GetErrorStatusCode maps err, or any sentinel it wraps, to an HTTP status.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return errorMap[ErrInternalServer]
}
