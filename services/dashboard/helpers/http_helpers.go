package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, dashboarderrors.ErrMountMissing):
		return http.StatusNotFound, "mount point not found"
	case errors.Is(err, dashboarderrors.ErrInvalidSelection):
		return http.StatusBadRequest, "invalid selection key"
	case errors.Is(err, dashboarderrors.ErrNotLoaded):
		return http.StatusServiceUnavailable, "data not loaded yet"
	case errors.Is(err, dashboarderrors.ErrHTTP), errors.Is(err, dashboarderrors.ErrNetwork):
		return http.StatusBadGateway, "auction service unavailable"
	case errors.Is(err, dashboarderrors.ErrDecode), errors.Is(err, dashboarderrors.ErrShape):
		return http.StatusBadGateway, "unexpected response from auction service"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Debug(handlerName+": "+message, ctx)
}
