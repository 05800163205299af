package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"

	"gorm.io/gorm"
)

func (s *Store) ListApplications(ctx context.Context, userID string) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *Store) GetApplication(ctx context.Context, id int) (*model.JobApplication, error) {
	var app model.JobApplication
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &app, nil
}

func (s *Store) CreateApplication(ctx context.Context, userID string, in model.ApplicationCreate) (*model.JobApplication, error) {
	app := newApplication(userID, in)
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return s.GetApplication(ctx, app.ID)
}

// CreateApplicationWithDailyStats inserts the application and bumps today's
// applications count in one transaction, so a crash between the two writes
// cannot leave the counter behind.
func (s *Store) CreateApplicationWithDailyStats(ctx context.Context, userID string, in model.ApplicationCreate) (*model.JobApplication, error) {
	app := newApplication(userID, in)
	today := time.Now().Format("2006-01-02")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		var stats model.DailyStats
		err := tx.Where("user_id = ? AND date = ?", userID, today).First(&stats).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			return tx.Create(&model.DailyStats{
				UserID:            userID,
				Date:              today,
				ApplicationsCount: 1,
				Target:            7,
			}).Error
		case err != nil:
			return fmt.Errorf("query daily stats: %w", err)
		default:
			return tx.Model(&stats).
				Update("applications_count", stats.ApplicationsCount+1).Error
		}
	})
	if err != nil {
		return nil, err
	}
	return s.GetApplication(ctx, app.ID)
}

func (s *Store) UpdateApplication(ctx context.Context, id int, p model.ApplicationPatch) (*model.JobApplication, error) {
	var app model.JobApplication
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.Title != nil {
		app.Title = *p.Title
	}
	if p.Company != nil {
		app.Company = *p.Company
	}
	if p.Platform != nil {
		app.Platform = *p.Platform
	}
	if p.URL != nil {
		app.URL = *p.URL
	}
	if p.Description != nil {
		app.Description = *p.Description
	}
	if p.PayRate != nil {
		app.PayRate = *p.PayRate
	}
	if p.Location != nil {
		app.Location = *p.Location
	}
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.RequiresInterview != nil {
		app.RequiresInterview = *p.RequiresInterview
	}
	if p.JobType != nil {
		app.JobType = *p.JobType
	}
	if p.Skills != nil {
		app.Skills = *p.Skills
	}
	if p.MatchingScore != nil {
		app.MatchingScore = *p.MatchingScore
	}
	if p.Notes != nil {
		app.Notes = *p.Notes
	}
	app.LastUpdated = time.Now()

	if err := s.db.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return &app, nil
}

// DeleteApplication removes the row and its tracked emails together. Deleting
// an absent id is a no-op.
func (s *Store) DeleteApplication(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_application_id = ?", id).Delete(&model.EmailTracking{}).Error; err != nil {
			return fmt.Errorf("delete tracked emails: %w", err)
		}
		if err := tx.Delete(&model.JobApplication{}, id).Error; err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		return nil
	})
}

func (s *Store) CountApplications(ctx context.Context, userID string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return int(n), nil
}

// CountResponses counts applications whose status has moved past "pending".
func (s *Store) CountResponses(ctx context.Context, userID string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("user_id = ? AND status <> ?", userID, model.StatusPending).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return int(n), nil
}

func newApplication(userID string, in model.ApplicationCreate) *model.JobApplication {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	jobType := in.JobType
	if jobType == "" {
		jobType = "contract"
	}
	return &model.JobApplication{
		UserID:            userID,
		Title:             in.Title,
		Company:           in.Company,
		Platform:          in.Platform,
		URL:               in.URL,
		Description:       in.Description,
		PayRate:           in.PayRate,
		Location:          in.Location,
		Status:            status,
		RequiresInterview: in.RequiresInterview,
		JobType:           jobType,
		Skills:            in.Skills,
		MatchingScore:     in.MatchingScore,
		AppliedAt:         now,
		LastUpdated:       now,
		Notes:             in.Notes,
	}
}
