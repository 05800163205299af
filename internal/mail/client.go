// Package mail is a thin client for a transactional email HTTP API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one outbound email with both body variants.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

// Sender is what the campaign dispatcher depends on; tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	IsConfigured() bool
}

type Config struct {
	BaseURL string // e.g. https://api.sendgrid.com
	APIKey  string
}

// Client sends through the SendGrid v3 mail API. A single configured instance
// is constructed at startup and injected into whatever needs it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.sendgrid.com"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) IsConfigured() bool { return c.apiKey != "" }

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send delivers one message. A rejected recipient or unreachable API surfaces
// as an error; callers decide whether that aborts anything.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if !c.IsConfigured() {
		return fmt.Errorf("mail: transport not configured")
	}

	payload := sendRequest{
		Personalizations: []personalization{{To: []address{{Email: msg.To}}}},
		From:             address{Email: msg.From},
		Subject:          msg.Subject,
		Content: []content{
			{Type: "text/plain", Value: msg.Text},
			{Type: "text/html", Value: msg.HTML},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mail: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail: send to %s: %w", msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail: send to %s: status %d: %s", msg.To, resp.StatusCode, data)
	}
	return nil
}
