package handler

import (
	"errors"
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/service"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	store    *store.Store
	campaign *service.CampaignService
}

func NewCampaignHandler(st *store.Store, campaign *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{store: st, campaign: campaign}
}

// GET /api/email-campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.store.ListEmailCampaigns(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch campaigns")
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// POST /api/email-campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var req model.CampaignCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	campaign, err := h.store.CreateEmailCampaign(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "create campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// PUT /api/email-campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.CampaignPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	campaign, err := h.store.UpdateEmailCampaign(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, "update campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DELETE /api/email-campaigns/:id
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteEmailCampaign(c.Request.Context(), id); err != nil {
		fail(c, err, "delete campaign")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// POST /api/email-campaigns/:id/send
func (h *CampaignHandler) Send(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.campaign.Send(c.Request.Context(), userID(c), id)
	if errors.Is(err, service.ErrNoContacts) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid contacts found for this campaign"})
		return
	}
	if err != nil {
		fail(c, err, "send campaign")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Email campaign sent successfully",
		"sent":    result.Sent,
		"failed":  result.Failed,
		"total":   result.Total,
	})
}
