package leads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

func testInput() CaptureInput {
	return CaptureInput{
		Lead: domain.LeadRecord{
			LeadID:           "c0ffee00-0000-4000-8000-000000000001",
			FullName:         "Maria Santos",
			Email:            "maria@exemplo.pt",
			PhoneCountryCode: "+351",
			PhoneNumber:      "912345678",
		},
		Attribution: domain.Attribution{
			UTMSource:   "instagram",
			UTMCampaign: "lancamento",
		},
		Behavior: domain.BehaviorSnapshot{
			TimeOnPageSec:  184,
			ScrollDepthPct: 92,
		},
		EventID:  "evt_123",
		PageSlug: "cafe-com-vendas",
	}
}

func TestCaptureLead(t *testing.T) {
	var captured upsertSubscriberRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/subscribers", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	s := NewService(&ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		GroupID: "group-42",
	})

	err := s.CaptureLead(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, "maria@exemplo.pt", captured.Email)
	assert.Equal(t, "Maria Santos", captured.Fields["name"])
	assert.Equal(t, "+351912345678", captured.Fields["phone"])
	assert.Equal(t, "instagram", captured.Fields["utm_source"])
	assert.Equal(t, "184", captured.Fields["time_on_page"])
	assert.Equal(t, []string{"group-42"}, captured.Groups)
}

func TestCaptureLeadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s := NewService(&ClientConfig{BaseURL: server.URL, Token: "test-token"})

	err := s.CaptureLead(context.Background(), testInput())
	assert.Error(t, err)
}

func TestCaptureLeadHonorsContextCancellation(t *testing.T) {
	s := NewService(&ClientConfig{BaseURL: "http://127.0.0.1:1", Token: "test-token"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.CaptureLead(ctx, testInput())
	assert.Error(t, err)
}
