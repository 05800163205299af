package handler

import (
	"errors"
	"net/http"
	"strconv"

	"jobflow/internal/logger"
	"jobflow/internal/middleware"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

func userID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// fail maps store/service errors to status codes: missing rows are the
// caller's 404, everything else is an infrastructure 500 that gets logged.
func fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msg + " not found"})
		return
	}
	logger.Error(msg+" failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
}
