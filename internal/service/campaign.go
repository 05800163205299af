package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"jobflow/internal/mail"
	"jobflow/internal/model"
	"jobflow/internal/store"
)

// ErrNoContacts means none of the campaign's contact ids resolve anymore.
var ErrNoContacts = errors.New("no valid contacts for campaign")

// defaultSender is used when no address can be extracted from the user's
// email signature.
const defaultSender = "noreply@jobflow.com"

// interMessageDelay spaces out sequential sends to stay under transport-side
// rate limits. A fixed pause, not backpressure.
const interMessageDelay = 100 * time.Millisecond

var emailAddressRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// CampaignService fans one outreach message out to a campaign's contacts.
type CampaignService struct {
	store  *store.Store
	sender mail.Sender
	delay  time.Duration
}

func NewCampaignService(st *store.Store, sender mail.Sender) *CampaignService {
	return &CampaignService{store: st, sender: sender, delay: interMessageDelay}
}

// Send resolves the campaign's contacts, personalizes the template, and
// drives the bulk send. Individual delivery failures are counted, never
// raised: the batch always runs to completion and reports a summary.
func (s *CampaignService) Send(ctx context.Context, userID string, campaignID int) (*model.CampaignSendResult, error) {
	campaign, err := s.store.GetEmailCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	// Contact ids can go stale after deletions; drop what no longer resolves.
	contacts := make([]model.Contact, 0, len(campaign.ContactIDs))
	for _, id := range campaign.ContactIDs {
		contact, err := s.store.GetContact(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}

	from := s.senderAddress(ctx, userID)

	sent, failed := 0, 0
	for i, contact := range contacts {
		body := personalize(campaign.Template, contact)
		msg := mail.Message{
			To:      contact.Email,
			From:    from,
			Subject: campaign.Subject,
			Text:    body,
			HTML:    strings.ReplaceAll(body, "\n", "<br>"),
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			slog.Warn("campaign send failed", "campaign", campaignID, "to", contact.Email, "err", err)
			failed++
		} else {
			sent++
		}
		if i < len(contacts)-1 {
			time.Sleep(s.delay)
		}
	}

	// Reply correlation is not implemented, so responseCount stays zero.
	status := model.CampaignSent
	zero := 0
	if _, err := s.store.UpdateEmailCampaign(ctx, campaignID, model.CampaignPatch{
		Status:        &status,
		SentCount:     &sent,
		ResponseCount: &zero,
	}); err != nil {
		return nil, err
	}

	return &model.CampaignSendResult{Sent: sent, Failed: failed, Total: len(contacts)}, nil
}

// senderAddress extracts the first email-shaped substring from the user's
// stored signature, falling back to a fixed address.
func (s *CampaignService) senderAddress(ctx context.Context, userID string) string {
	settings, err := s.store.GetUserSettings(ctx, userID)
	if err != nil {
		return defaultSender
	}
	if addr := emailAddressRe.FindString(settings.EmailSignature); addr != "" {
		return addr
	}
	return defaultSender
}

// personalize substitutes the [Name] and [Company] placeholder tokens.
// Literal, case-sensitive replacement of every occurrence.
func personalize(template string, contact model.Contact) string {
	out := template
	if contact.Name != "" {
		out = strings.ReplaceAll(out, "[Name]", contact.Name)
	}
	if contact.Company != "" {
		out = strings.ReplaceAll(out, "[Company]", contact.Company)
	}
	return out
}
