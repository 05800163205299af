package store

import (
	"errors"

	"jobflow/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the typed persistence layer over the relational schema. All
// operations hit the database directly; there is no write-behind caching.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// AutoMigrate creates or updates the nine application tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.JobApplication{},
		&model.EmailTracking{},
		&model.UserSettings{},
		&model.PlatformCredentials{},
		&model.DailyStats{},
		&model.Contact{},
		&model.ResumeTemplate{},
		&model.EmailCampaign{},
	)
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
