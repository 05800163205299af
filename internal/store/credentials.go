package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"
)

func (s *Store) ListPlatformCredentials(ctx context.Context, userID string) ([]model.PlatformCredentials, error) {
	creds := []model.PlatformCredentials{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&creds).Error
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return creds, nil
}

func (s *Store) GetPlatformCredentials(ctx context.Context, id int) (*model.PlatformCredentials, error) {
	var cred model.PlatformCredentials
	if err := s.db.WithContext(ctx).First(&cred, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &cred, nil
}

// CreatePlatformCredentials stores a ciphertext produced by the vault. The
// store never sees plaintext.
func (s *Store) CreatePlatformCredentials(ctx context.Context, userID, platform, ciphertext string) (*model.PlatformCredentials, error) {
	cred := &model.PlatformCredentials{
		UserID:               userID,
		Platform:             platform,
		EncryptedCredentials: ciphertext,
		IsActive:             true,
	}
	if err := s.db.WithContext(ctx).Create(cred).Error; err != nil {
		return nil, fmt.Errorf("create credentials: %w", err)
	}
	return cred, nil
}

func (s *Store) UpdatePlatformCredentials(ctx context.Context, id int, p model.CredentialsPatch) (*model.PlatformCredentials, error) {
	var cred model.PlatformCredentials
	if err := s.db.WithContext(ctx).First(&cred, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.Platform != nil {
		cred.Platform = *p.Platform
	}
	if p.IsActive != nil {
		cred.IsActive = *p.IsActive
	}
	if p.LastUsed != nil {
		cred.LastUsed = p.LastUsed
	}
	cred.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&cred).Error; err != nil {
		return nil, fmt.Errorf("update credentials: %w", err)
	}
	return &cred, nil
}

func (s *Store) DeletePlatformCredentials(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&model.PlatformCredentials{}, id).Error; err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}
