package response

import (
	"net/http"

	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta accompanies list payloads.
type Meta struct {
	Count int `json:"count"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Status: statusSuccess, Message: message, Data: data})
}

// WriteListResponse writes items with their count. A nil slice is sent as
// an empty array.
func WriteListResponse[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status: statusSuccess,
		Data:   items,
		Meta:   &Meta{Count: len(items)},
	})
}

// WriteErrorResponse picks the status from the sentinel err wraps; errors
// carries optional per-field details.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	return c.JSON(errs.GetErrorStatusCode(err), ErrorResponse{
		Status:  statusError,
		Message: err.Error(),
		Errors:  errors,
	})
}
