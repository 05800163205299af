package service

import (
	"context"
	"testing"

	"jobflow/internal/model"
	"jobflow/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func seedUser(t *testing.T, st *store.Store, id string) {
	t.Helper()
	_, err := st.UpsertUser(context.Background(), model.User{ID: id, Email: id + "@example.com"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}
