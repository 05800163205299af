package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"

	"gorm.io/gorm"
)

func (s *Store) ListResumeTemplates(ctx context.Context, userID string) ([]model.ResumeTemplate, error) {
	templates := []model.ResumeTemplate{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("list resume templates: %w", err)
	}
	return templates, nil
}

func (s *Store) GetResumeTemplate(ctx context.Context, id int) (*model.ResumeTemplate, error) {
	var tmpl model.ResumeTemplate
	if err := s.db.WithContext(ctx).First(&tmpl, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &tmpl, nil
}

// CreateResumeTemplate inserts the template; when it is marked default, the
// user's previous default is cleared in the same transaction so at most one
// template per user carries the flag.
func (s *Store) CreateResumeTemplate(ctx context.Context, userID string, in model.TemplateCreate) (*model.ResumeTemplate, error) {
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	tmpl := &model.ResumeTemplate{
		UserID:    userID,
		Name:      in.Name,
		Industry:  in.Industry,
		Skills:    skills,
		Content:   in.Content,
		IsDefault: in.IsDefault,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tmpl.IsDefault {
			if err := clearDefaultTemplate(tx, userID); err != nil {
				return err
			}
		}
		return tx.Create(tmpl).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create resume template: %w", err)
	}
	return tmpl, nil
}

func (s *Store) UpdateResumeTemplate(ctx context.Context, id int, p model.TemplatePatch) (*model.ResumeTemplate, error) {
	var tmpl model.ResumeTemplate
	if err := s.db.WithContext(ctx).First(&tmpl, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.Name != nil {
		tmpl.Name = *p.Name
	}
	if p.Industry != nil {
		tmpl.Industry = *p.Industry
	}
	if p.Skills != nil {
		tmpl.Skills = *p.Skills
	}
	if p.Content != nil {
		tmpl.Content = *p.Content
	}
	if p.IsDefault != nil {
		tmpl.IsDefault = *p.IsDefault
	}
	tmpl.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.IsDefault != nil && *p.IsDefault {
			if err := clearDefaultTemplate(tx, tmpl.UserID); err != nil {
				return err
			}
		}
		return tx.Save(&tmpl).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update resume template: %w", err)
	}
	return &tmpl, nil
}

func (s *Store) DeleteResumeTemplate(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&model.ResumeTemplate{}, id).Error; err != nil {
		return fmt.Errorf("delete resume template: %w", err)
	}
	return nil
}

func clearDefaultTemplate(tx *gorm.DB, userID string) error {
	return tx.Model(&model.ResumeTemplate{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
