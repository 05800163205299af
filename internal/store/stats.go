package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"

	"gorm.io/gorm/clause"
)

func (s *Store) GetDailyStats(ctx context.Context, userID, date string) (*model.DailyStats, error) {
	var stats model.DailyStats
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&stats).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &stats, nil
}

// UpsertDailyStats inserts or replaces the row for (user, date). Counter
// fields are assigned, not accumulated; the transactional apply flow is the
// only path that increments.
func (s *Store) UpsertDailyStats(ctx context.Context, userID string, in model.DailyStatsUpsert) (*model.DailyStats, error) {
	stats := &model.DailyStats{
		UserID:            userID,
		Date:              in.Date,
		ApplicationsCount: in.ApplicationsCount,
		ResponsesCount:    in.ResponsesCount,
		Target:            in.Target,
		Earnings:          in.Earnings,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"applications_count", "responses_count", "target", "earnings",
		}),
	}).Create(stats).Error
	if err != nil {
		return nil, fmt.Errorf("upsert daily stats: %w", err)
	}
	return s.GetDailyStats(ctx, userID, in.Date)
}

// ListWeeklyStats returns the stored rows for the trailing week, most recent
// first. Missing days are not synthesized here; callers render gaps as zero.
func (s *Store) ListWeeklyStats(ctx context.Context, userID string) ([]model.DailyStats, error) {
	weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	stats := []model.DailyStats{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, weekAgo).
		Order("date DESC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("list weekly stats: %w", err)
	}
	return stats, nil
}
