package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vedicwisdom/funnel-backend/internal/fulfillment"
	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
)

type stubFulfillmentService struct {
	err  error
	last fulfillment.Request
}

func (s *stubFulfillmentService) Process(_ context.Context, req fulfillment.Request) error {
	s.last = req
	return s.err
}

const reportBody = `{
	"email": "asha@example.com",
	"name": "Asha",
	"dob": "1992-03-14",
	"time": "04:30",
	"place": "Pune",
	"plan": "bundle",
	"paymentId": "pay_1",
	"razorpay_order_id": "order_1",
	"razorpay_signature": "sig_1",
	"leadId": "lead-1",
	"tarot": {"question": "Will I travel?", "cards": ["The Star", "The Sun", "The World"], "analysis": "Bright journeys."}
}`

func TestSendReportSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubFulfillmentService{}
	handler := SendReport(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/send-report", strings.NewReader(reportBody))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.last.Plan != enums.PlanBundle {
		t.Fatalf("expected bundle plan, got %q", svc.last.Plan)
	}
	if svc.last.Tarot == nil || svc.last.Tarot.Question != "Will I travel?" {
		t.Fatalf("expected tarot payload, got %+v", svc.last.Tarot)
	}
	if svc.last.LeadID != "lead-1" || svc.last.OrderID != "order_1" {
		t.Fatalf("unexpected request: %+v", svc.last)
	}
}

func TestSendReportRequiresSignature(t *testing.T) {
	t.Parallel()

	handler := SendReport(&stubFulfillmentService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/send-report",
		strings.NewReader(`{"email":"asha@example.com","name":"Asha","razorpay_order_id":"order_1"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSendReportRejectsUnknownPlan(t *testing.T) {
	t.Parallel()

	handler := SendReport(&stubFulfillmentService{}, nil)

	body := strings.Replace(reportBody, `"bundle"`, `"platinum"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/send-report", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSendReportPaymentFailurePassesThrough(t *testing.T) {
	t.Parallel()

	svc := &stubFulfillmentService{err: pkgerrors.New(pkgerrors.CodePaymentInvalid, "payment verification failed")}
	handler := SendReport(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/send-report", strings.NewReader(reportBody))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != "PAYMENT_INVALID" {
		t.Fatalf("expected PAYMENT_INVALID, got %q", apiErr.Code)
	}
}
