package handler

import (
	"errors"
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler { return &SettingsHandler{store: st} }

// GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.GetUserSettings(c.Request.Context(), userID(c))
	if errors.Is(err, store.ErrNotFound) {
		// No settings yet is a normal state for a fresh account.
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		fail(c, err, "fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// POST /api/settings
func (h *SettingsHandler) Upsert(c *gin.Context) {
	var req model.SettingsPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	settings, err := h.store.UpsertUserSettings(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
