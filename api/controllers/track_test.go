package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vedicwisdom/funnel-backend/internal/leads"
	"github.com/vedicwisdom/funnel-backend/pkg/enums"
)

type stubLeadsService struct {
	mu      sync.Mutex
	tracked []leads.Lead
	done    chan struct{}
}

func newStubLeadsService() *stubLeadsService {
	return &stubLeadsService{done: make(chan struct{}, 1)}
}

func (s *stubLeadsService) Track(_ context.Context, lead leads.Lead) {
	s.mu.Lock()
	s.tracked = append(s.tracked, lead)
	s.mu.Unlock()
	s.done <- struct{}{}
}

func (s *stubLeadsService) Append(_ context.Context, _ leads.Lead) error { return nil }

func (s *stubLeadsService) Update(_ context.Context, _ string, _ leads.Patch) (bool, error) {
	return false, nil
}

func (s *stubLeadsService) Annotate(_ context.Context, _, _ string) {}

func (s *stubLeadsService) SetStatus(_ context.Context, _ string, _ enums.LeadStatus, _ string) {}

func TestTrackLeadRespondsBeforeAppend(t *testing.T) {
	t.Parallel()

	svc := newStubLeadsService()
	handler := TrackLead(svc, nil)

	body := `{"leadId":"lead-1","name":"Asha","email":"asha@example.com","dob":"1992-03-14"}`
	req := httptest.NewRequest(http.MethodPost, "/api/track-order", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	select {
	case <-svc.done:
	case <-time.After(time.Second):
		t.Fatal("background track never ran")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.tracked) != 1 || svc.tracked[0].LeadID != "lead-1" {
		t.Fatalf("unexpected tracked leads: %+v", svc.tracked)
	}
}

func TestTrackLeadRequiresLeadID(t *testing.T) {
	t.Parallel()

	handler := TrackLead(newStubLeadsService(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/track-order", strings.NewReader(`{"name":"Asha"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTrackLeadRejectsBadEmail(t *testing.T) {
	t.Parallel()

	handler := TrackLead(newStubLeadsService(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/track-order",
		strings.NewReader(`{"leadId":"lead-1","email":"not-an-email"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
