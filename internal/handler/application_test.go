package handler

import (
	"strings"
	"testing"
	"time"

	"jobflow/internal/model"
)

func TestApplicationsCSV(t *testing.T) {
	appliedAt, _ := time.Parse("2006-01-02", "2026-08-20")
	apps := []model.JobApplication{
		{
			Title:     "Go Developer",
			Company:   "Acme",
			Platform:  "Upwork",
			Status:    model.StatusInterview,
			AppliedAt: appliedAt,
			PayRate:   "$80/hr",
			URL:       "https://example.com/job/1",
		},
		{
			Title:     "Backend Engineer",
			Company:   "StartupXYZ",
			Platform:  "LinkedIn",
			Status:    model.StatusPending,
			AppliedAt: appliedAt,
		},
	}

	got := applicationsCSV(apps)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if lines[0] != "Title,Company,Platform,Status,Applied Date,Pay Rate,URL" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Go Developer,Acme,Upwork,interview,2026-08-20,$80/hr,https://example.com/job/1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Empty fields stay as empty columns, never collapsed.
	if lines[2] != "Backend Engineer,StartupXYZ,LinkedIn,pending,2026-08-20,," {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestApplicationsCSVEmpty(t *testing.T) {
	got := applicationsCSV(nil)
	if got != "Title,Company,Platform,Status,Applied Date,Pay Rate,URL" {
		t.Errorf("empty export = %q, want header only", got)
	}
}
