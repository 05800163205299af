package handler

import (
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	store *store.Store
}

func NewTemplateHandler(st *store.Store) *TemplateHandler { return &TemplateHandler{store: st} }

// GET /api/resume-templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.store.ListResumeTemplates(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch resume templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// POST /api/resume-templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req model.TemplateCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tmpl, err := h.store.CreateResumeTemplate(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "create resume template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// PUT /api/resume-templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.TemplatePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tmpl, err := h.store.UpdateResumeTemplate(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, "update resume template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// DELETE /api/resume-templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteResumeTemplate(c.Request.Context(), id); err != nil {
		fail(c, err, "delete resume template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume template deleted successfully"})
}
