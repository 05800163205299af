package handler

import (
	"net/http"
	"strconv"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	store *store.Store
}

func NewEmailHandler(st *store.Store) *EmailHandler { return &EmailHandler{store: st} }

// GET /api/emails/job/:jobId
func (h *EmailHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	emails, err := h.store.ListEmailsForJob(c.Request.Context(), jobID)
	if err != nil {
		fail(c, err, "fetch emails")
		return
	}
	c.JSON(http.StatusOK, emails)
}

// GET /api/emails/unread
func (h *EmailHandler) ListUnread(c *gin.Context) {
	emails, err := h.store.ListUnreadEmails(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch unread emails")
		return
	}
	c.JSON(http.StatusOK, emails)
}

// POST /api/emails
func (h *EmailHandler) Create(c *gin.Context) {
	var req model.EmailTrackingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	email, err := h.store.CreateEmailTracking(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "create email tracking")
		return
	}
	c.JSON(http.StatusOK, email)
}

// PUT /api/emails/:id
func (h *EmailHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.EmailTrackingPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	email, err := h.store.UpdateEmailTracking(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, "update email")
		return
	}
	c.JSON(http.StatusOK, email)
}
