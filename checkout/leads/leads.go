// Package leads sends captured lead records to the CRM/list-management
// collaborator. Delivery is at-most-once: failures are logged by the caller
// and never block the checkout flow.
package leads

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/common"
)

const (
	defaultBaseURL = "https://connect.mailerlite.com/api"

	requestTimeout = 10 * time.Second
)

//go:generate mockery --name Service --output ./mocks
type Service interface {
	CaptureLead(ctx context.Context, input CaptureInput) error
}

// CaptureInput is the lead record plus derived context forwarded to the CRM.
type CaptureInput struct {
	Lead        domain.LeadRecord
	Attribution domain.Attribution
	Behavior    domain.BehaviorSnapshot
	EventID     string
	PageSlug    string
}

type ClientConfig struct {
	BaseURL string
	Token   string
	GroupID string
}

type service struct {
	limiter *rate.Limiter
	client  *resty.Client
	groupID string
}

// NewService builds the CRM client. The MailerLite API allows 120 requests
// per minute; anything above that returns 429s.
func NewService(config *ClientConfig) Service {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(config.Token).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-CCV-Project", common.ProjectID)

	return &service{
		limiter: rate.NewLimiter(rate.Every(time.Minute/120), 1),
		client:  client,
		groupID: config.GroupID,
	}
}

// NewServiceFromEnv reads the CRM credentials from the environment.
func NewServiceFromEnv() Service {
	return NewService(&ClientConfig{
		Token:   common.GetEnv("MAILERLITE_API_TOKEN", ""),
		GroupID: common.GetEnv("MAILERLITE_GROUP_ID", ""),
	})
}

type upsertSubscriberRequest struct {
	Email  string            `json:"email"`
	Fields map[string]string `json:"fields"`
	Groups []string          `json:"groups,omitempty"`
}

// CaptureLead upserts the subscriber on the CRM. No retries: the lead is
// secondary to the structured payment record.
func (s *service) CaptureLead(ctx context.Context, input CaptureInput) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	body := upsertSubscriberRequest{
		Email: input.Lead.Email,
		Fields: map[string]string{
			"name":             input.Lead.FullName,
			"phone":            input.Lead.PhoneCountryCode + input.Lead.PhoneNumber,
			"lead_id":          input.Lead.LeadID,
			"event_id":         input.EventID,
			"page_slug":        input.PageSlug,
			"utm_source":       input.Attribution.UTMSource,
			"utm_medium":       input.Attribution.UTMMedium,
			"utm_campaign":     input.Attribution.UTMCampaign,
			"utm_content":      input.Attribution.UTMContent,
			"utm_term":         input.Attribution.UTMTerm,
			"referrer":         input.Attribution.Referrer,
			"landing_page":     input.Attribution.LandingPage,
			"time_on_page":     fmt.Sprintf("%d", input.Behavior.TimeOnPageSec),
			"scroll_depth":     fmt.Sprintf("%d", input.Behavior.ScrollDepthPct),
			"sections_viewed":  fmt.Sprintf("%d", input.Behavior.SectionsViewed),
		},
	}

	if s.groupID != "" {
		body.Groups = []string{s.groupID}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/subscribers")
	if err != nil {
		return err
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("lead capture failed (%d): %s", resp.StatusCode(), resp.String())
	}

	return nil
}
