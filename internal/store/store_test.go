package store

import (
	"context"
	"testing"
	"time"

	"jobflow/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
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
	// A pooled second connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	st := New(db)
	if err := st.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func seedUser(t *testing.T, st *Store, id string) {
	t.Helper()
	_, err := st.UpsertUser(context.Background(), model.User{ID: id, Email: id + "@example.com"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestUpsertUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u, err := st.UpsertUser(ctx, model.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if u.FirstName != "Ada" {
		t.Errorf("first name = %q, want Ada", u.FirstName)
	}

	u, err = st.UpsertUser(ctx, model.User{ID: "u1", Email: "ada@example.com", FirstName: "Adaline"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if u.FirstName != "Adaline" {
		t.Errorf("first name after upsert = %q, want Adaline", u.FirstName)
	}

	var n int64
	if err := st.db.Model(&model.User{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("user rows = %d, want 1", n)
	}
}

func TestCreateApplicationDefaults(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	app, err := st.CreateApplication(ctx, "u1", model.ApplicationCreate{
		Title:    "Go Developer",
		Company:  "Acme",
		Platform: "Upwork",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.ID == 0 {
		t.Error("id not assigned")
	}
	if app.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", app.Status)
	}
	if app.AppliedAt.IsZero() {
		t.Error("appliedAt not set")
	}
}

func TestUpdateApplicationPartial(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	app, err := st.CreateApplication(ctx, "u1", model.ApplicationCreate{
		Title:    "Go Developer",
		Company:  "Acme",
		Platform: "Upwork",
		PayRate:  "$80/hr",
		Skills:   []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := model.StatusInterview
	updated, err := st.UpdateApplication(ctx, app.ID, model.ApplicationPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != model.StatusInterview {
		t.Errorf("status = %q, want interview", updated.Status)
	}
	if updated.Title != app.Title || updated.Company != app.Company || updated.PayRate != app.PayRate {
		t.Error("unrelated fields changed")
	}
	if len(updated.Skills) != 2 || updated.Skills[0] != "Go" {
		t.Errorf("skills changed: %v", updated.Skills)
	}
	if !updated.LastUpdated.After(app.LastUpdated) && !updated.LastUpdated.Equal(app.LastUpdated) {
		t.Error("lastUpdated went backwards")
	}
	if !updated.AppliedAt.Equal(app.AppliedAt) {
		t.Error("appliedAt changed on update")
	}
}

func TestUpdateApplicationNotFound(t *testing.T) {
	st := newTestStore(t)
	status := model.StatusOffer
	_, err := st.UpdateApplication(context.Background(), 9999, model.ApplicationPatch{Status: &status})
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListApplicationsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	first, _ := st.CreateApplication(ctx, "u1", model.ApplicationCreate{Title: "A", Company: "c", Platform: "p"})
	// Push the first row an hour back so ordering is deterministic.
	st.db.Model(&model.JobApplication{}).Where("id = ?", first.ID).
		Update("applied_at", time.Now().Add(-time.Hour))
	second, _ := st.CreateApplication(ctx, "u1", model.ApplicationCreate{Title: "B", Company: "c", Platform: "p"})

	apps, err := st.ListApplications(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("len = %d, want 2", len(apps))
	}
	if apps[0].ID != second.ID {
		t.Errorf("first listed = %d, want newest %d", apps[0].ID, second.ID)
	}
}

func TestDeleteApplicationCascadesEmails(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	app, _ := st.CreateApplication(ctx, "u1", model.ApplicationCreate{Title: "A", Company: "c", Platform: "p"})
	_, err := st.CreateEmailTracking(ctx, "u1", model.EmailTrackingCreate{
		JobApplicationID: &app.ID,
		Subject:          "Re: application",
	})
	if err != nil {
		t.Fatalf("create email: %v", err)
	}

	if err := st.DeleteApplication(ctx, app.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetApplication(ctx, app.ID); err != ErrNotFound {
		t.Errorf("application still present: %v", err)
	}
	emails, err := st.ListEmailsForJob(ctx, app.ID)
	if err != nil {
		t.Fatalf("list emails: %v", err)
	}
	if len(emails) != 0 {
		t.Errorf("orphaned emails = %d, want 0", len(emails))
	}

	// Deleting again is a no-op, not an error.
	if err := st.DeleteApplication(ctx, app.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestUnreadEmails(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	read, _ := st.CreateEmailTracking(ctx, "u1", model.EmailTrackingCreate{Subject: "read", IsRead: true})
	_, _ = st.CreateEmailTracking(ctx, "u1", model.EmailTrackingCreate{Subject: "unread"})

	emails, err := st.ListUnreadEmails(ctx, "u1")
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(emails) != 1 || emails[0].Subject != "unread" {
		t.Fatalf("unread = %+v, want only the unread row", emails)
	}

	isRead := true
	updated, err := st.UpdateEmailTracking(ctx, emails[0].ID, model.EmailTrackingPatch{IsRead: &isRead})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsRead {
		t.Error("isRead not updated")
	}
	_ = read
}

func TestUpsertUserSettingsSingleRow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	enabled := false
	settings, err := st.UpsertUserSettings(ctx, "u1", model.SettingsPatch{AutoApplyEnabled: &enabled})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if settings.AutoApplyEnabled {
		t.Error("autoApplyEnabled = true, want false")
	}
	if settings.DailyTarget != 7 {
		t.Errorf("dailyTarget default = %d, want 7", settings.DailyTarget)
	}

	target := 10
	settings, err = st.UpsertUserSettings(ctx, "u1", model.SettingsPatch{DailyTarget: &target})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if settings.DailyTarget != 10 {
		t.Errorf("dailyTarget = %d, want 10", settings.DailyTarget)
	}
	if settings.AutoApplyEnabled {
		t.Error("earlier toggle lost by later upsert")
	}

	var n int64
	if err := st.db.Model(&model.UserSettings{}).Where("user_id = ?", "u1").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("settings rows = %d, want 1", n)
	}
}

func TestUpsertDailyStatsReplaces(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	_, err := st.UpsertDailyStats(ctx, "u1", model.DailyStatsUpsert{
		Date: "2026-08-27", ApplicationsCount: 3, Target: 7, Earnings: 120,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	stats, err := st.UpsertDailyStats(ctx, "u1", model.DailyStatsUpsert{
		Date: "2026-08-27", ApplicationsCount: 5, Target: 7, Earnings: 200,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if stats.ApplicationsCount != 5 {
		t.Errorf("applicationsCount = %d, want 5 (replace, not accumulate)", stats.ApplicationsCount)
	}
	if stats.Earnings != 200 {
		t.Errorf("earnings = %v, want 200", stats.Earnings)
	}

	var n int64
	if err := st.db.Model(&model.DailyStats{}).Where("user_id = ? AND date = ?", "u1", "2026-08-27").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows for key = %d, want 1", n)
	}
}

func TestCreateApplicationWithDailyStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	today := time.Now().Format("2006-01-02")

	for i := 0; i < 2; i++ {
		_, err := st.CreateApplicationWithDailyStats(ctx, "u1", model.ApplicationCreate{
			Title: "A", Company: "c", Platform: "Upwork",
		})
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	stats, err := st.GetDailyStats(ctx, "u1", today)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ApplicationsCount != 2 {
		t.Errorf("applicationsCount = %d, want 2", stats.ApplicationsCount)
	}
	total, err := st.CountApplications(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Errorf("applications = %d, want 2", total)
	}
}

func TestSingleDefaultTemplate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	first, err := st.CreateResumeTemplate(ctx, "u1", model.TemplateCreate{
		Name: "General", Content: "resume", IsDefault: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := st.CreateResumeTemplate(ctx, "u1", model.TemplateCreate{
		Name: "Fintech", Content: "resume", IsDefault: true,
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	reloaded, err := st.GetResumeTemplate(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.IsDefault {
		t.Error("first template still default after second took the flag")
	}
	if !second.IsDefault {
		t.Error("second template not default")
	}

	var n int64
	if err := st.db.Model(&model.ResumeTemplate{}).
		Where("user_id = ? AND is_default = ?", "u1", true).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("default templates = %d, want 1", n)
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	cred, err := st.CreatePlatformCredentials(ctx, "u1", "upwork", "ciphertext-blob")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !cred.IsActive {
		t.Error("new credentials not active")
	}

	creds, err := st.ListPlatformCredentials(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(creds) != 1 {
		t.Fatalf("len = %d, want 1", len(creds))
	}

	if err := st.DeletePlatformCredentials(ctx, cred.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	creds, _ = st.ListPlatformCredentials(ctx, "u1")
	if len(creds) != 0 {
		t.Errorf("len after delete = %d, want 0", len(creds))
	}
}

func TestContactsCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	contact, err := st.CreateContact(ctx, "u1", model.ContactCreate{
		Name: "Ada", Email: "ada@acme.com", Company: "Acme", Tags: []string{"hiring"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Ada Lovelace"
	updated, err := st.UpdateContact(ctx, contact.ID, model.ContactPatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	if updated.Company != "Acme" {
		t.Error("company changed on partial update")
	}

	if err := st.DeleteContact(ctx, contact.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetContact(ctx, contact.ID); err != ErrNotFound {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
}

func TestCampaignCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedUser(t, st, "u1")

	campaign, err := st.CreateEmailCampaign(ctx, "u1", model.CampaignCreate{
		Name: "Outreach", Subject: "Hello", Template: "Hi [Name]", ContactIDs: []int{1, 2},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campaign.Status != model.CampaignDraft {
		t.Errorf("status = %q, want draft", campaign.Status)
	}

	status := model.CampaignSent
	sent := 2
	updated, err := st.UpdateEmailCampaign(ctx, campaign.ID, model.CampaignPatch{
		Status: &status, SentCount: &sent,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.CampaignSent || updated.SentCount != 2 {
		t.Errorf("after update: status=%q sentCount=%d", updated.Status, updated.SentCount)
	}
	if len(updated.ContactIDs) != 2 {
		t.Errorf("contactIds changed: %v", updated.ContactIDs)
	}
}
