package controllers

import (
	"net/http"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/api/validators"
	"github.com/vedicwisdom/funnel-backend/internal/content"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

type tarotRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Name     string `json:"name" validate:"omitempty,max=120"`
}

type tarotResponse struct {
	Cards    []string `json:"cards"`
	Analysis string   `json:"analysis"`
}

// GenerateTarot draws a three-card spread and reads it against the
// customer's question.
func GenerateTarot(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		var payload tarotRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reading := svc.GenerateTarot(r.Context(), payload.Question, validators.SanitizeString(payload.Name, 120))

		responses.WriteSuccess(w, tarotResponse{
			Cards:    reading.Cards,
			Analysis: reading.Analysis,
		})
	}
}
