package handler

import (
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	store *store.Store
}

func NewContactHandler(st *store.Store) *ContactHandler { return &ContactHandler{store: st} }

// GET /api/contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.store.ListContacts(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.ContactCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	contact, err := h.store.CreateContact(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "create contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// PUT /api/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.ContactPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	contact, err := h.store.UpdateContact(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, "update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteContact(c.Request.Context(), id); err != nil {
		fail(c, err, "delete contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
