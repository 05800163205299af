package handler

import (
	"net/http"
	"strings"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	store *store.Store
}

func NewApplicationHandler(st *store.Store) *ApplicationHandler {
	return &ApplicationHandler{store: st}
}

// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.store.ListApplications(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GET /api/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	app, err := h.store.GetApplication(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "fetch application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req model.ApplicationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.store.CreateApplication(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "create application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// PUT /api/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.ApplicationPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.store.UpdateApplication(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, "update application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteApplication(c.Request.Context(), id); err != nil {
		fail(c, err, "delete application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// GET /api/export/applications?format=csv|json
func (h *ApplicationHandler) Export(c *gin.Context) {
	apps, err := h.store.ListApplications(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "export applications")
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="job_applications.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte(applicationsCSV(apps)))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="job_applications.json"`)
	c.JSON(http.StatusOK, apps)
}

// applicationsCSV renders the pinned export format: bare comma-joined fields,
// no quoting. Embedded commas break columns; consumers accept that.
func applicationsCSV(apps []model.JobApplication) string {
	rows := make([]string, 0, len(apps)+1)
	rows = append(rows, "Title,Company,Platform,Status,Applied Date,Pay Rate,URL")
	for _, app := range apps {
		rows = append(rows, strings.Join([]string{
			app.Title,
			app.Company,
			app.Platform,
			app.Status,
			app.AppliedAt.Format("2006-01-02"),
			app.PayRate,
			app.URL,
		}, ","))
	}
	return strings.Join(rows, "\n")
}
