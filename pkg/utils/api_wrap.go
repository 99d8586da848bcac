package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
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

// StatusFor maps a service error onto the HTTP status the API answers with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrInferenceAuth),
		errors.Is(err, ErrInferenceTransport),
		errors.Is(err, ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError || code == http.StatusBadGateway {
		log.Error("request failed",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	RespondError(c, code, UserMessage(err))
}
