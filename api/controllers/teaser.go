package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/vedicwisdom/funnel-backend/api/responses"
	"github.com/vedicwisdom/funnel-backend/internal/astro"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

type teaserRequest struct {
	DOB string `json:"dob"`
}

type teaserResponse struct {
	SunSign     string `json:"sunSign"`
	MoonSign    string `json:"moonSign"`
	Personality string `json:"personality"`
}

// GenerateTeaser computes the free sign preview. The endpoint never fails:
// unparseable input falls back to the default Aries/Leo teaser so the
// funnel page always renders something.
func GenerateTeaser(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload teaserRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			if logg != nil {
				logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "teaser body unreadable, using defaults")
			}
			responses.WriteSuccess(w, teaserResponse{
				SunSign:     string(astro.Aries),
				MoonSign:    string(astro.Leo),
				Personality: astro.DefaultTeaser,
			})
			return
		}
		io.Copy(io.Discard, r.Body)

		sun := astro.SunSign(payload.DOB)
		moon := astro.MoonSign(payload.DOB)

		responses.WriteSuccess(w, teaserResponse{
			SunSign:     string(sun),
			MoonSign:    string(moon),
			Personality: astro.Teaser(sun, moon, payload.DOB),
		})
	}
}
