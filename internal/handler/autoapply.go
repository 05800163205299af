package handler

import (
	"errors"
	"fmt"
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/service"

	"github.com/gin-gonic/gin"
)

type AutoApplyHandler struct {
	autoApply *service.AutoApplyService
}

func NewAutoApplyHandler(autoApply *service.AutoApplyService) *AutoApplyHandler {
	return &AutoApplyHandler{autoApply: autoApply}
}

// POST /api/auto-apply/toggle
func (h *AutoApplyHandler) Toggle(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.autoApply.Toggle(c.Request.Context(), userID(c), req.Enabled); err != nil {
		fail(c, err, "toggle auto-apply")
		return
	}
	state := "disabled"
	if req.Enabled {
		state = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Auto-apply %s successfully", state)})
}

// GET /api/auto-apply/search
func (h *AutoApplyHandler) Search(c *gin.Context) {
	jobs, err := h.autoApply.Search(c.Request.Context(), userID(c))
	if errors.Is(err, service.ErrAutoApplyDisabled) || errors.Is(err, service.ErrSettingsMissing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Auto-apply is not enabled"})
		return
	}
	if err != nil {
		fail(c, err, "search jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// POST /api/auto-apply/apply
func (h *AutoApplyHandler) Apply(c *gin.Context) {
	var req model.AutoApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.autoApply.Apply(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "apply to job")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}
