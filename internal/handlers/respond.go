package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusDeleted = "deleted"

	errNotFoundMsg = "not found"
	errGenericMsg  = "something went wrong"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// writeServiceError maps domain errors to HTTP statuses. NotFound and
// Forbidden collapse to the same 404: the response never reveals whether a
// resource exists under another account.
func (h *Handler) writeServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFoundMsg})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errGenericMsg, logKey, err, kv...)
	}
}

// idParam parses the :id path segment. Non-numeric ids get the same 404 as
// absent resources. Returns false if the request was already handled.
func (h *Handler) idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFoundMsg})
		return 0, false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
