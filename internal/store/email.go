package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"
)

func (s *Store) ListEmailsForJob(ctx context.Context, jobApplicationID int) ([]model.EmailTracking, error) {
	emails := []model.EmailTracking{}
	err := s.db.WithContext(ctx).
		Where("job_application_id = ?", jobApplicationID).
		Order("received_at DESC").
		Find(&emails).Error
	if err != nil {
		return nil, fmt.Errorf("list emails for job: %w", err)
	}
	return emails, nil
}

func (s *Store) ListUnreadEmails(ctx context.Context, userID string) ([]model.EmailTracking, error) {
	emails := []model.EmailTracking{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("received_at DESC").
		Find(&emails).Error
	if err != nil {
		return nil, fmt.Errorf("list unread emails: %w", err)
	}
	return emails, nil
}

func (s *Store) GetEmailTracking(ctx context.Context, id int) (*model.EmailTracking, error) {
	var email model.EmailTracking
	if err := s.db.WithContext(ctx).First(&email, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &email, nil
}

func (s *Store) CreateEmailTracking(ctx context.Context, userID string, in model.EmailTrackingCreate) (*model.EmailTracking, error) {
	email := &model.EmailTracking{
		JobApplicationID: in.JobApplicationID,
		UserID:           userID,
		MessageID:        in.MessageID,
		Subject:          in.Subject,
		Sender:           in.Sender,
		Content:          in.Content,
		Category:         in.Category,
		ReceivedAt:       time.Now(),
		IsRead:           in.IsRead,
		AutoReplied:      in.AutoReplied,
	}
	if err := s.db.WithContext(ctx).Create(email).Error; err != nil {
		return nil, fmt.Errorf("create email tracking: %w", err)
	}
	return email, nil
}

func (s *Store) UpdateEmailTracking(ctx context.Context, id int, p model.EmailTrackingPatch) (*model.EmailTracking, error) {
	var email model.EmailTracking
	if err := s.db.WithContext(ctx).First(&email, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.JobApplicationID != nil {
		email.JobApplicationID = p.JobApplicationID
	}
	if p.Subject != nil {
		email.Subject = *p.Subject
	}
	if p.Sender != nil {
		email.Sender = *p.Sender
	}
	if p.Content != nil {
		email.Content = *p.Content
	}
	if p.Category != nil {
		email.Category = *p.Category
	}
	if p.IsRead != nil {
		email.IsRead = *p.IsRead
	}
	if p.AutoReplied != nil {
		email.AutoReplied = *p.AutoReplied
	}

	if err := s.db.WithContext(ctx).Save(&email).Error; err != nil {
		return nil, fmt.Errorf("update email tracking: %w", err)
	}
	return &email, nil
}
