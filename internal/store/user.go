package store

import (
	"context"
	"fmt"
	"time"

	"jobflow/internal/model"

	"gorm.io/gorm/clause"
)

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// UpsertUser creates the row or refreshes profile fields when the id already
// exists. Identity rows originate from external auth claims.
func (s *Store) UpsertUser(ctx context.Context, u model.User) (*model.User, error) {
	u.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&u).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return s.GetUser(ctx, u.ID)
}
