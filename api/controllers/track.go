package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/api/validators"
	"github.com/vedicwisdom/funnel-backend/internal/leads"
	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

const trackTimeout = 10 * time.Second

type trackRequest struct {
	LeadID string `json:"leadId" validate:"required,max=80"`
	Name   string `json:"name" validate:"omitempty,max=120"`
	Email  string `json:"email" validate:"omitempty,email,max=254"`
	Phone  string `json:"phone" validate:"omitempty,max=20"`
	DOB    string `json:"dob" validate:"omitempty,max=10"`
	Time   string `json:"time" validate:"omitempty,max=10"`
	Place  string `json:"place" validate:"omitempty,max=120"`
	Plan   string `json:"plan" validate:"omitempty,max=20"`
}

// TrackLead appends an intake row to the ledger in the background. The
// response never waits on the spreadsheet; a lost row costs a lead record,
// not a customer.
func TrackLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		var payload trackRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		plan, err := enums.ParsePlan(payload.Plan)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown plan"))
			return
		}

		lead := leads.Lead{
			LeadID: payload.LeadID,
			Name:   validators.SanitizeString(payload.Name, 120),
			Email:  payload.Email,
			Phone:  payload.Phone,
			DOB:    payload.DOB,
			Time:   payload.Time,
			Place:  validators.SanitizeString(payload.Place, 120),
			Plan:   plan,
		}

		// Detached from the request so a slow spreadsheet append cannot
		// hold the funnel page.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
			defer cancel()
			if logg != nil {
				ctx = logg.WithLeadID(ctx, lead.LeadID)
			}
			svc.Track(ctx, lead)
		}()

		responses.WriteSuccess(w, map[string]bool{"tracked": true})
	}
}
