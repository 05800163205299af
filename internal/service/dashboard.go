package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"jobflow/internal/model"
	"jobflow/internal/store"
)

// DashboardService computes derived metrics on read. Nothing is maintained
// incrementally; read volume is a single user's dashboard.
type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

func (s *DashboardService) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	today := time.Now().Format("2006-01-02")

	todayApplications := 0
	todayStats, err := s.store.GetDailyStats(ctx, userID, today)
	switch {
	case err == nil:
		todayApplications = todayStats.ApplicationsCount
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("today stats: %w", err)
	}

	totalApplications, err := s.store.CountApplications(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalResponses, err := s.store.CountResponses(ctx, userID)
	if err != nil {
		return nil, err
	}

	responseRate := 0
	if totalApplications > 0 {
		responseRate = int(math.Round(float64(totalResponses) / float64(totalApplications) * 100))
	}

	weekly, err := s.store.ListWeeklyStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	var weeklyEarnings float64
	for _, day := range weekly {
		weeklyEarnings += day.Earnings
	}

	return &model.DashboardStats{
		TodayApplications: todayApplications,
		TotalApplications: totalApplications,
		ResponseRate:      responseRate,
		TotalResponses:    totalResponses,
		WeeklyEarnings:    weeklyEarnings,
	}, nil
}

// WeeklyStats returns stored rows for the trailing week, newest first. Days
// without a row are absent; the front end renders those as zeros.
func (s *DashboardService) WeeklyStats(ctx context.Context, userID string) ([]model.DailyStats, error) {
	return s.store.ListWeeklyStats(ctx, userID)
}
