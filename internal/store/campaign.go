package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"
)

func (s *Store) ListEmailCampaigns(ctx context.Context, userID string) ([]model.EmailCampaign, error) {
	campaigns := []model.EmailCampaign{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *Store) GetEmailCampaign(ctx context.Context, id int) (*model.EmailCampaign, error) {
	var campaign model.EmailCampaign
	if err := s.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &campaign, nil
}

func (s *Store) CreateEmailCampaign(ctx context.Context, userID string, in model.CampaignCreate) (*model.EmailCampaign, error) {
	ids := in.ContactIDs
	if ids == nil {
		ids = []int{}
	}
	campaign := &model.EmailCampaign{
		UserID:       userID,
		Name:         in.Name,
		Subject:      in.Subject,
		Template:     in.Template,
		ContactIDs:   ids,
		Status:       model.CampaignDraft,
		ScheduledFor: in.ScheduledFor,
	}
	if err := s.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

func (s *Store) UpdateEmailCampaign(ctx context.Context, id int, p model.CampaignPatch) (*model.EmailCampaign, error) {
	var campaign model.EmailCampaign
	if err := s.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.Name != nil {
		campaign.Name = *p.Name
	}
	if p.Subject != nil {
		campaign.Subject = *p.Subject
	}
	if p.Template != nil {
		campaign.Template = *p.Template
	}
	if p.ContactIDs != nil {
		campaign.ContactIDs = *p.ContactIDs
	}
	if p.SentCount != nil {
		campaign.SentCount = *p.SentCount
	}
	if p.ResponseCount != nil {
		campaign.ResponseCount = *p.ResponseCount
	}
	if p.Status != nil {
		campaign.Status = *p.Status
	}
	if p.ScheduledFor != nil {
		campaign.ScheduledFor = p.ScheduledFor
	}
	campaign.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&campaign).Error; err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return &campaign, nil
}

func (s *Store) DeleteEmailCampaign(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&model.EmailCampaign{}, id).Error; err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
