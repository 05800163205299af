package handler

import (
	"errors"
	"net/http"
	"time"

	"jobflow/internal/model"
	"jobflow/internal/service"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	store     *store.Store
	dashboard *service.DashboardService
}

func NewStatsHandler(st *store.Store, dashboard *service.DashboardService) *StatsHandler {
	return &StatsHandler{store: st, dashboard: dashboard}
}

// GET /api/dashboard/stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.DashboardStats(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/stats/daily/:date
func (h *StatsHandler) Daily(c *gin.Context) {
	stats, err := h.store.GetDailyStats(c.Request.Context(), userID(c), c.Param("date"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		fail(c, err, "fetch daily stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/stats/weekly
func (h *StatsHandler) Weekly(c *gin.Context) {
	stats, err := h.dashboard.WeeklyStats(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch weekly stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /api/stats/daily
func (h *StatsHandler) Upsert(c *gin.Context) {
	var req model.DailyStatsUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	stats, err := h.store.UpsertDailyStats(c.Request.Context(), userID(c), req)
	if err != nil {
		fail(c, err, "update daily stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/stats/today
func (h *StatsHandler) Today(c *gin.Context) {
	uid := userID(c)
	today := time.Now().Format("2006-01-02")

	applicationsCount, target := 0, 7
	stats, err := h.store.GetDailyStats(c.Request.Context(), uid, today)
	switch {
	case err == nil:
		applicationsCount = stats.ApplicationsCount
		target = stats.Target
	case !errors.Is(err, store.ErrNotFound):
		fail(c, err, "fetch stats")
		return
	}

	dashboard, err := h.dashboard.DashboardStats(c.Request.Context(), uid)
	if err != nil {
		fail(c, err, "fetch stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applicationsCount": applicationsCount,
		"responseRate":      dashboard.ResponseRate,
		"totalResponses":    dashboard.TotalResponses,
		"target":            target,
	})
}
