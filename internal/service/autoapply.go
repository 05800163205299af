package service

import (
	"context"
	"errors"
	"fmt"

	"jobflow/internal/model"
	"jobflow/internal/store"
)

var (
	// ErrAutoApplyDisabled means the user has not enabled auto-apply.
	ErrAutoApplyDisabled = errors.New("auto-apply is not enabled")
	// ErrSettingsMissing means the user has no settings row yet.
	ErrSettingsMissing = errors.New("user settings not found")
)

// simulatedListings is the static result set the search simulation filters.
// There is no crawler behind this; the feature demonstrates the apply flow.
var simulatedListings = []model.SimulatedJob{
	{
		ID:              1,
		Title:           "React Developer",
		Company:         "TechCorp",
		PayRate:         75,
		Location:        "Remote",
		Description:     "We need a React developer for our web application",
		Requirements:    []string{"React", "JavaScript", "Node.js"},
		IsInterviewFree: true,
		MatchScore:      85,
	},
	{
		ID:              2,
		Title:           "Full Stack Developer",
		Company:         "StartupXYZ",
		PayRate:         60,
		Location:        "Remote",
		Description:     "Looking for a full-stack developer to join our team",
		Requirements:    []string{"JavaScript", "TypeScript", "PostgreSQL"},
		IsInterviewFree: false,
		MatchScore:      70,
	},
}

type AutoApplyService struct {
	store *store.Store
}

func NewAutoApplyService(st *store.Store) *AutoApplyService {
	return &AutoApplyService{store: st}
}

// Toggle flips the auto-apply flag, creating the settings row if needed.
func (s *AutoApplyService) Toggle(ctx context.Context, userID string, enabled bool) error {
	_, err := s.store.UpsertUserSettings(ctx, userID, model.SettingsPatch{
		AutoApplyEnabled: &enabled,
	})
	return err
}

// Search filters the simulated listings by the user's stored preferences.
func (s *AutoApplyService) Search(ctx context.Context, userID string) ([]model.SimulatedJob, error) {
	settings, err := s.store.GetUserSettings(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSettingsMissing
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !settings.AutoApplyEnabled {
		return nil, ErrAutoApplyDisabled
	}

	jobs := []model.SimulatedJob{}
	for _, job := range simulatedListings {
		if settings.InterviewFreeOnly && !job.IsInterviewFree {
			continue
		}
		if job.PayRate < settings.MinPayRate {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Apply records the application and today's stats bump as one transactional
// unit via the store.
func (s *AutoApplyService) Apply(ctx context.Context, userID string, req model.AutoApplyRequest) (*model.JobApplication, error) {
	url := req.URL
	if url == "" {
		url = fmt.Sprintf("https://upwork.com/job/%d", req.JobID)
	}
	return s.store.CreateApplicationWithDailyStats(ctx, userID, model.ApplicationCreate{
		Title:       req.Title,
		Company:     req.Company,
		Platform:    "Upwork",
		Status:      model.StatusPending,
		PayRate:     req.PayRate,
		URL:         url,
		Location:    "Remote",
		Description: "Auto-applied via JobFlow system",
	})
}
