package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, data any, message string) {
	status := "success"
	if code >= http.StatusBadRequest {
		status = "error"
	}
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: c.GetString(traceIDKey),
		Data:    data,
	})
}

func respondSuccess(c *gin.Context, data any, message string) {
	respond(c, http.StatusOK, data, message)
}

func respondError(c *gin.Context, code int, message string) {
	respond(c, code, nil, message)
}

// handleServiceError maps engine and store errors to status codes.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidAnswer),
		errors.Is(err, core.ErrUnknownQuestion),
		errors.Is(err, core.ErrMissingIdentity):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrNotReady):
		respondError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		contract.Logger().Errorw("Request failed", "trace_id", c.GetString(traceIDKey), "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
