// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"heartlink/internal/transport/httpdto"
	heartlink_errors "heartlink/pkg/errors"
	"heartlink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error to a response. Unexpected failures are
// logged with their internal detail and surfaced as a generic server error.
func writeError(c *gin.Context, err error) {
	status := heartlink_errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		if l := logger.GetGlobalLogger(); l != nil {
			l.ErrorfCtx(c.Request.Context(), "unexpected error: %s", err.Error())
		}
		c.JSON(status, httpdto.NewErrorResponse("Internal server error", errorCode(status)))
		return
	}
	c.JSON(status, httpdto.NewErrorResponse(err.Error(), errorCode(status)))
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}
