package controllers

import (
	"net/http"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/api/validators"
	"github.com/vedicwisdom/funnel-backend/internal/payments"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

type orderRequest struct {
	Plan     string `json:"plan" validate:"required,oneof=vedic tarot bundle section"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder opens a gateway order for the selected plan. Amounts are
// looked up server side; the client only names the plan.
func CreateOrder(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable"))
			return
		}

		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), payload.Plan, payload.Currency)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderResponse{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
		})
	}
}
