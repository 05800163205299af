package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"

	"gorm.io/gorm"
)

func (s *Store) GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &settings, nil
}

// UpsertUserSettings creates the single settings row for the user, or
// overwrites the supplied fields on the existing one. Omitted fields keep
// their stored values.
func (s *Store) UpsertUserSettings(ctx context.Context, userID string, p model.SettingsPatch) (*model.UserSettings, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings model.UserSettings
		err := tx.Where("user_id = ?", userID).First(&settings).Error
		if err == gorm.ErrRecordNotFound {
			settings = defaultSettings(userID)
			applySettingsPatch(&settings, p)
			return tx.Create(&settings).Error
		}
		if err != nil {
			return fmt.Errorf("query settings: %w", err)
		}
		applySettingsPatch(&settings, p)
		settings.UpdatedAt = time.Now()
		return tx.Save(&settings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return s.GetUserSettings(ctx, userID)
}

func defaultSettings(userID string) model.UserSettings {
	return model.UserSettings{
		UserID:            userID,
		DailyTarget:       7,
		PreferredLocation: "Remote",
		MinPayRate:        50,
		AutoApplyEnabled:  true,
		InterviewFreeOnly: true,
		PreferredJobTypes: []string{"contract", "freelance"},
		UserSkills:        []string{},
	}
}

func applySettingsPatch(settings *model.UserSettings, p model.SettingsPatch) {
	if p.DailyTarget != nil {
		settings.DailyTarget = *p.DailyTarget
	}
	if p.PreferredLocation != nil {
		settings.PreferredLocation = *p.PreferredLocation
	}
	if p.MinPayRate != nil {
		settings.MinPayRate = *p.MinPayRate
	}
	if p.AutoApplyEnabled != nil {
		settings.AutoApplyEnabled = *p.AutoApplyEnabled
	}
	if p.EmailIntegrationEnabled != nil {
		settings.EmailIntegrationEnabled = *p.EmailIntegrationEnabled
	}
	if p.InterviewFreeOnly != nil {
		settings.InterviewFreeOnly = *p.InterviewFreeOnly
	}
	if p.PreferredJobTypes != nil {
		settings.PreferredJobTypes = *p.PreferredJobTypes
	}
	if p.UserSkills != nil {
		settings.UserSkills = *p.UserSkills
	}
	if p.ResumeText != nil {
		settings.ResumeText = *p.ResumeText
	}
	if p.CoverLetterTemplate != nil {
		settings.CoverLetterTemplate = *p.CoverLetterTemplate
	}
	if p.EmailSignature != nil {
		settings.EmailSignature = *p.EmailSignature
	}
	if p.BankAccountDetails != nil {
		settings.BankAccountDetails = *p.BankAccountDetails
	}
}
