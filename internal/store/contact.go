package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"
)

func (s *Store) ListContacts(ctx context.Context, userID string) ([]model.Contact, error) {
	contacts := []model.Contact{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *Store) GetContact(ctx context.Context, id int) (*model.Contact, error) {
	var contact model.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &contact, nil
}

func (s *Store) CreateContact(ctx context.Context, userID string, in model.ContactCreate) (*model.Contact, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	contact := &model.Contact{
		UserID:           userID,
		Name:             in.Name,
		Email:            in.Email,
		Company:          in.Company,
		JobTitle:         in.JobTitle,
		Industry:         in.Industry,
		Notes:            in.Notes,
		Tags:             tags,
		LastContacted:    in.LastContacted,
		ResponseReceived: in.ResponseReceived,
	}
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *Store) UpdateContact(ctx context.Context, id int, p model.ContactPatch) (*model.Contact, error) {
	var contact model.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, mapErr(err)
	}

	if p.Name != nil {
		contact.Name = *p.Name
	}
	if p.Email != nil {
		contact.Email = *p.Email
	}
	if p.Company != nil {
		contact.Company = *p.Company
	}
	if p.JobTitle != nil {
		contact.JobTitle = *p.JobTitle
	}
	if p.Industry != nil {
		contact.Industry = *p.Industry
	}
	if p.Notes != nil {
		contact.Notes = *p.Notes
	}
	if p.Tags != nil {
		contact.Tags = *p.Tags
	}
	if p.LastContacted != nil {
		contact.LastContacted = p.LastContacted
	}
	if p.ResponseReceived != nil {
		contact.ResponseReceived = *p.ResponseReceived
	}
	contact.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return &contact, nil
}

func (s *Store) DeleteContact(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&model.Contact{}, id).Error; err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
