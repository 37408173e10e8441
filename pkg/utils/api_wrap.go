package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// clientErrors maps sentinels to status codes. Entries with detail answer with the
// full wrapped message so the caller sees which value was rejected.
var clientErrors = []struct {
	err    error
	code   int
	detail bool
}{
	{ErrInvalidDate, http.StatusBadRequest, true},
	{ErrInvalidTime, http.StatusBadRequest, true},
	{ErrInvalidRequest, http.StatusBadRequest, false},
	{ErrIncompleteSelection, http.StatusBadRequest, false},
	{ErrUnknownOption, http.StatusBadRequest, true},
	{ErrInvalidShareToken, http.StatusBadRequest, false},
	{ErrSuggestionNotAcceptable, http.StatusUnprocessableEntity, false},
	{ErrVenueNotFound, http.StatusNotFound, false},
	{ErrEventNotFound, http.StatusNotFound, false},
	{ErrItemNotFound, http.StatusNotFound, false},
	{ErrSuggestionNotFound, http.StatusNotFound, false},
	{ErrInvalidSessionState, http.StatusConflict, false},
}

// HandleServiceError answers with the status mapped from err. Anything unmapped is a
// 500 whose cause is attached to the gin context for the request logger.
func HandleServiceError(c *gin.Context, err error) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			msg := ce.err.Error()
			if ce.detail {
				msg = err.Error()
			}
			RespondError(c, ce.code, msg)
			return
		}
	}

	_ = c.Error(err)
	if errors.Is(err, ErrDatabaseError) {
		RespondError(c, http.StatusServiceUnavailable, "Storage is temporarily unavailable")
		return
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
