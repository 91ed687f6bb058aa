package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
)

type stubVerifier struct {
	err  error
	seen [3]string
}

func (s *stubVerifier) Verify(orderID, paymentID, claimed string) error {
	s.seen = [3]string{orderID, paymentID, claimed}
	return s.err
}

const sectionBody = `{
	"section": "career",
	"name": "Asha",
	"dob": "1992-03-14",
	"paymentId": "pay_1",
	"orderId": "order_1",
	"signature": "sig_1"
}`

func TestGenerateSectionSuccess(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{}
	svc := &stubContentService{sectionText: "Promotions are coming."}
	handler := GenerateSection(verifier, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-section", strings.NewReader(sectionBody))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body sectionResponse
	decodeSuccess(t, rec, &body)
	if body.Text != "Promotions are coming." {
		t.Fatalf("unexpected text: %q", body.Text)
	}
	if verifier.seen != [3]string{"order_1", "pay_1", "sig_1"} {
		t.Fatalf("verifier saw %v", verifier.seen)
	}
	if svc.lastSection != "career" {
		t.Fatalf("expected career section, got %q", svc.lastSection)
	}
}

func TestGenerateSectionRejectsBadSignature(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{err: pkgerrors.New(pkgerrors.CodePaymentInvalid, "payment verification failed")}
	handler := GenerateSection(verifier, &stubContentService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-section", strings.NewReader(sectionBody))
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

func TestGenerateSectionRequiresPaymentFields(t *testing.T) {
	t.Parallel()

	handler := GenerateSection(&stubVerifier{}, &stubContentService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-section", strings.NewReader(`{"section":"career"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
