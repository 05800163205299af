package model

import "time"

// Application status values. Everything that is not "pending" counts as a
// response for dashboard purposes.
const (
	StatusPending   = "pending"
	StatusResponded = "responded"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusDeclined  = "declined"
)

// Campaign status values.
const (
	CampaignDraft     = "draft"
	CampaignSending   = "sending"
	CampaignSent      = "sent"
	CampaignCompleted = "completed"
)

// User identity comes from the external auth provider; rows are upserted from
// token claims, never created locally.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type JobApplication struct {
	ID                int       `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"index;size:64" json:"userId"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Platform          string    `json:"platform"`
	URL               string    `json:"url"`
	Description       string    `json:"description"`
	PayRate           string    `json:"payRate"`
	Location          string    `json:"location"`
	Status            string    `gorm:"default:pending" json:"status"`
	RequiresInterview bool      `json:"requiresInterview"`
	JobType           string    `gorm:"default:contract" json:"jobType"`
	Skills            []string  `gorm:"serializer:json" json:"skills"`
	MatchingScore     int       `json:"matchingScore"`
	AppliedAt         time.Time `json:"appliedAt"`
	LastUpdated       time.Time `json:"lastUpdated"`
	Notes             string    `json:"notes"`
}

// EmailTracking is append-mostly; MessageID is unique when present so inbound
// mail can be ingested idempotently.
type EmailTracking struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	JobApplicationID *int      `gorm:"index" json:"jobApplicationId"`
	UserID           string    `gorm:"index;size:64" json:"userId"`
	MessageID        *string   `gorm:"uniqueIndex;size:255" json:"messageId"`
	Subject          string    `json:"subject"`
	Sender           string    `json:"sender"`
	Content          string    `json:"content"`
	Category         string    `json:"category"`
	ReceivedAt       time.Time `json:"receivedAt"`
	IsRead           bool      `json:"isRead"`
	AutoReplied      bool      `json:"autoReplied"`
}

// UserSettings holds exactly one row per user, enforced by the unique index.
type UserSettings struct {
	ID                      int            `gorm:"primaryKey" json:"id"`
	UserID                  string         `gorm:"uniqueIndex;size:64" json:"userId"`
	DailyTarget             int            `json:"dailyTarget"`
	PreferredLocation       string         `json:"preferredLocation"`
	MinPayRate              int            `json:"minPayRate"`
	AutoApplyEnabled        bool           `json:"autoApplyEnabled"`
	EmailIntegrationEnabled bool           `json:"emailIntegrationEnabled"`
	InterviewFreeOnly       bool           `json:"interviewFreeOnly"`
	PreferredJobTypes       []string       `gorm:"serializer:json" json:"preferredJobTypes"`
	UserSkills              []string       `gorm:"serializer:json" json:"userSkills"`
	ResumeText              string         `json:"resumeText"`
	CoverLetterTemplate     string         `json:"coverLetterTemplate"`
	EmailSignature          string         `json:"emailSignature"`
	BankAccountDetails      map[string]any `gorm:"serializer:json" json:"bankAccountDetails"`
	CreatedAt               time.Time      `json:"createdAt"`
	UpdatedAt               time.Time      `json:"updatedAt"`
}

// PlatformCredentials stores only ciphertext. The field is excluded from JSON
// so no read path can leak it.
type PlatformCredentials struct {
	ID                   int        `gorm:"primaryKey" json:"id"`
	UserID               string     `gorm:"index;size:64" json:"userId"`
	Platform             string     `json:"platform"`
	EncryptedCredentials string     `gorm:"not null" json:"-"`
	IsActive             bool       `json:"isActive"`
	LastUsed             *time.Time `json:"lastUsed"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// DailyStats holds one row per (user, date). Date is kept as an ISO string so
// range queries are plain string comparisons.
type DailyStats struct {
	ID                int     `gorm:"primaryKey" json:"id"`
	UserID            string  `gorm:"size:64;uniqueIndex:uk_user_date" json:"userId"`
	Date              string  `gorm:"type:date;uniqueIndex:uk_user_date" json:"date"`
	ApplicationsCount int     `json:"applicationsCount"`
	ResponsesCount    int     `json:"responsesCount"`
	Target            int     `json:"target"`
	Earnings          float64 `gorm:"type:decimal(10,2)" json:"earnings"`
}

type Contact struct {
	ID               int        `gorm:"primaryKey" json:"id"`
	UserID           string     `gorm:"index;size:64" json:"userId"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Company          string     `json:"company"`
	JobTitle         string     `json:"jobTitle"`
	Industry         string     `json:"industry"`
	Notes            string     `json:"notes"`
	Tags             []string   `gorm:"serializer:json" json:"tags"`
	LastContacted    *time.Time `json:"lastContacted"`
	ResponseReceived bool       `json:"responseReceived"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ResumeTemplate struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:64" json:"userId"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Skills    []string  `gorm:"serializer:json" json:"skills"`
	Content   string    `json:"content"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EmailCampaign struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	UserID        string     `gorm:"index;size:64" json:"userId"`
	Name          string     `json:"name"`
	Subject       string     `json:"subject"`
	Template      string     `json:"template"`
	ContactIDs    []int      `gorm:"serializer:json" json:"contactIds"`
	SentCount     int        `json:"sentCount"`
	ResponseCount int        `json:"responseCount"`
	Status        string     `gorm:"default:draft" json:"status"`
	ScheduledFor  *time.Time `json:"scheduledFor"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (User) TableName() string                { return "users" }
func (JobApplication) TableName() string      { return "job_applications" }
func (EmailTracking) TableName() string       { return "email_tracking" }
func (UserSettings) TableName() string        { return "user_settings" }
func (PlatformCredentials) TableName() string { return "platform_credentials" }
func (DailyStats) TableName() string          { return "daily_stats" }
func (Contact) TableName() string             { return "contacts" }
func (ResumeTemplate) TableName() string      { return "resume_templates" }
func (EmailCampaign) TableName() string       { return "email_campaigns" }
