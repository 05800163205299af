package model

import "time"

// AuthClaims is the identity the middleware extracts from a bearer token.
type AuthClaims struct {
	Sub             string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type ApplicationCreate struct {
	Title             string   `json:"title" binding:"required"`
	Company           string   `json:"company" binding:"required"`
	Platform          string   `json:"platform" binding:"required"`
	URL               string   `json:"url"`
	Description       string   `json:"description"`
	PayRate           string   `json:"payRate"`
	Location          string   `json:"location"`
	Status            string   `json:"status"`
	RequiresInterview bool     `json:"requiresInterview"`
	JobType           string   `json:"jobType"`
	Skills            []string `json:"skills"`
	MatchingScore     int      `json:"matchingScore"`
	Notes             string   `json:"notes"`
}

// Patch structs use pointers so an absent JSON key and an explicit zero value
// stay distinguishable.
type ApplicationPatch struct {
	Title             *string   `json:"title"`
	Company           *string   `json:"company"`
	Platform          *string   `json:"platform"`
	URL               *string   `json:"url"`
	Description       *string   `json:"description"`
	PayRate           *string   `json:"payRate"`
	Location          *string   `json:"location"`
	Status            *string   `json:"status"`
	RequiresInterview *bool     `json:"requiresInterview"`
	JobType           *string   `json:"jobType"`
	Skills            *[]string `json:"skills"`
	MatchingScore     *int      `json:"matchingScore"`
	Notes             *string   `json:"notes"`
}

type EmailTrackingCreate struct {
	JobApplicationID *int    `json:"jobApplicationId"`
	MessageID        *string `json:"messageId"`
	Subject          string  `json:"subject"`
	Sender           string  `json:"sender"`
	Content          string  `json:"content"`
	Category         string  `json:"category"`
	IsRead           bool    `json:"isRead"`
	AutoReplied      bool    `json:"autoReplied"`
}

type EmailTrackingPatch struct {
	JobApplicationID *int    `json:"jobApplicationId"`
	Subject          *string `json:"subject"`
	Sender           *string `json:"sender"`
	Content          *string `json:"content"`
	Category         *string `json:"category"`
	IsRead           *bool   `json:"isRead"`
	AutoReplied      *bool   `json:"autoReplied"`
}

// SettingsPatch doubles as the upsert payload: supplied fields overwrite the
// stored row, omitted fields keep their current (or default) values.
type SettingsPatch struct {
	DailyTarget             *int            `json:"dailyTarget"`
	PreferredLocation       *string         `json:"preferredLocation"`
	MinPayRate              *int            `json:"minPayRate"`
	AutoApplyEnabled        *bool           `json:"autoApplyEnabled"`
	EmailIntegrationEnabled *bool           `json:"emailIntegrationEnabled"`
	InterviewFreeOnly       *bool           `json:"interviewFreeOnly"`
	PreferredJobTypes       *[]string       `json:"preferredJobTypes"`
	UserSkills              *[]string       `json:"userSkills"`
	ResumeText              *string         `json:"resumeText"`
	CoverLetterTemplate     *string         `json:"coverLetterTemplate"`
	EmailSignature          *string         `json:"emailSignature"`
	BankAccountDetails      *map[string]any `json:"bankAccountDetails"`
}

type CredentialsCreate struct {
	Platform    string         `json:"platform" binding:"required"`
	Credentials map[string]any `json:"credentials" binding:"required"`
}

type CredentialsPatch struct {
	Platform *string    `json:"platform"`
	IsActive *bool      `json:"isActive"`
	LastUsed *time.Time `json:"lastUsed"`
}

type DailyStatsUpsert struct {
	Date              string  `json:"date" binding:"required"`
	ApplicationsCount int     `json:"applicationsCount"`
	ResponsesCount    int     `json:"responsesCount"`
	Target            int     `json:"target"`
	Earnings          float64 `json:"earnings"`
}

type ContactCreate struct {
	Name             string     `json:"name" binding:"required"`
	Email            string     `json:"email" binding:"required"`
	Company          string     `json:"company"`
	JobTitle         string     `json:"jobTitle"`
	Industry         string     `json:"industry"`
	Notes            string     `json:"notes"`
	Tags             []string   `json:"tags"`
	LastContacted    *time.Time `json:"lastContacted"`
	ResponseReceived bool       `json:"responseReceived"`
}

type ContactPatch struct {
	Name             *string    `json:"name"`
	Email            *string    `json:"email"`
	Company          *string    `json:"company"`
	JobTitle         *string    `json:"jobTitle"`
	Industry         *string    `json:"industry"`
	Notes            *string    `json:"notes"`
	Tags             *[]string  `json:"tags"`
	LastContacted    *time.Time `json:"lastContacted"`
	ResponseReceived *bool      `json:"responseReceived"`
}

type TemplateCreate struct {
	Name      string   `json:"name" binding:"required"`
	Industry  string   `json:"industry"`
	Skills    []string `json:"skills"`
	Content   string   `json:"content" binding:"required"`
	IsDefault bool     `json:"isDefault"`
}

type TemplatePatch struct {
	Name      *string   `json:"name"`
	Industry  *string   `json:"industry"`
	Skills    *[]string `json:"skills"`
	Content   *string   `json:"content"`
	IsDefault *bool     `json:"isDefault"`
}

type CampaignCreate struct {
	Name         string     `json:"name" binding:"required"`
	Subject      string     `json:"subject" binding:"required"`
	Template     string     `json:"template" binding:"required"`
	ContactIDs   []int      `json:"contactIds"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

type CampaignPatch struct {
	Name          *string    `json:"name"`
	Subject       *string    `json:"subject"`
	Template      *string    `json:"template"`
	ContactIDs    *[]int     `json:"contactIds"`
	SentCount     *int       `json:"sentCount"`
	ResponseCount *int       `json:"responseCount"`
	Status        *string    `json:"status"`
	ScheduledFor  *time.Time `json:"scheduledFor"`
}

// DashboardStats is the aggregation result rendered on the dashboard.
type DashboardStats struct {
	TodayApplications int     `json:"todayApplications"`
	TotalApplications int     `json:"totalApplications"`
	ResponseRate      int     `json:"responseRate"`
	TotalResponses    int     `json:"totalResponses"`
	WeeklyEarnings    float64 `json:"weeklyEarnings"`
}

// CampaignSendResult summarizes one bulk send.
type CampaignSendResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// SimulatedJob is a listing produced by the auto-apply search simulation.
type SimulatedJob struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	PayRate         int      `json:"payRate"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	IsInterviewFree bool     `json:"isInterviewFree"`
	MatchScore      int      `json:"matchScore"`
}

type AutoApplyRequest struct {
	JobID   int    `json:"jobId"`
	Title   string `json:"title" binding:"required"`
	Company string `json:"company" binding:"required"`
	PayRate string `json:"payRate"`
	URL     string `json:"url"`
}
