package controllers

import (
	"net/http"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/api/validators"
	"github.com/vedicwisdom/funnel-backend/internal/content"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

type paymentVerifier interface {
	Verify(orderID, paymentID, claimed string) error
}

type sectionRequest struct {
	Section   string `json:"section" validate:"required,max=60"`
	Name      string `json:"name" validate:"omitempty,max=120"`
	DOB       string `json:"dob" validate:"omitempty,max=10"`
	Time      string `json:"time" validate:"omitempty,max=10"`
	Place     string `json:"place" validate:"omitempty,max=120"`
	PaymentID string `json:"paymentId" validate:"required"`
	OrderID   string `json:"orderId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type sectionResponse struct {
	Text string `json:"text"`
}

// GenerateSection unlocks one paid report section. The payment signature
// gates access; generation itself degrades to a canned line rather than
// failing after money changed hands.
func GenerateSection(verifier paymentVerifier, svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if verifier == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "section service unavailable"))
			return
		}

		var payload sectionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := verifier.Verify(payload.OrderID, payload.PaymentID, payload.Signature); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		text := svc.GenerateSection(r.Context(), payload.Section, content.BirthDetails{
			Name:  validators.SanitizeString(payload.Name, 120),
			DOB:   payload.DOB,
			Time:  payload.Time,
			Place: validators.SanitizeString(payload.Place, 120),
		})

		responses.WriteSuccess(w, sectionResponse{Text: text})
	}
}
