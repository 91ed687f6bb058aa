package controllers

import (
	"net/http"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/api/validators"
	"github.com/vedicwisdom/funnel-backend/internal/fulfillment"
	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

type reportTarot struct {
	Question string   `json:"question" validate:"omitempty,max=500"`
	Cards    []string `json:"cards" validate:"omitempty,max=3"`
	Analysis string   `json:"analysis" validate:"omitempty,max=4000"`
}

type reportRequest struct {
	Email     string       `json:"email" validate:"required,email,max=254"`
	Name      string       `json:"name" validate:"required,max=120"`
	DOB       string       `json:"dob" validate:"omitempty,max=10"`
	Time      string       `json:"time" validate:"omitempty,max=10"`
	Place     string       `json:"place" validate:"omitempty,max=120"`
	Plan      string       `json:"plan" validate:"omitempty,max=20"`
	PaymentID string       `json:"paymentId" validate:"omitempty,max=80"`
	OrderID   string       `json:"razorpay_order_id" validate:"required,max=80"`
	Signature string       `json:"razorpay_signature" validate:"required,max=200"`
	LeadID    string       `json:"leadId" validate:"omitempty,max=80"`
	Tarot     *reportTarot `json:"tarot" validate:"omitempty"`
}

// SendReport runs paid delivery end to end: verify, record, generate,
// render, email. The caller gets a flat success flag; failures carry the
// coded error envelope.
func SendReport(svc fulfillment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fulfillment service unavailable"))
			return
		}

		var payload reportRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		plan, err := enums.ParsePlan(payload.Plan)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown plan"))
			return
		}

		req := fulfillment.Request{
			LeadID:    payload.LeadID,
			Name:      validators.SanitizeString(payload.Name, 120),
			Email:     payload.Email,
			DOB:       payload.DOB,
			Time:      payload.Time,
			Place:     validators.SanitizeString(payload.Place, 120),
			Plan:      plan,
			PaymentID: payload.PaymentID,
			OrderID:   payload.OrderID,
			Signature: payload.Signature,
		}
		if payload.Tarot != nil {
			req.Tarot = &fulfillment.TarotPayload{
				Question: payload.Tarot.Question,
				Cards:    payload.Tarot.Cards,
				Analysis: payload.Tarot.Analysis,
			}
		}

		if err := svc.Process(r.Context(), req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"delivered": true})
	}
}
