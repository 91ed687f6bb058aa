package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vedicwisdom/funnel-backend/api/controllers"
	"github.com/vedicwisdom/funnel-backend/api/middleware"
	"github.com/vedicwisdom/funnel-backend/internal/content"
	"github.com/vedicwisdom/funnel-backend/internal/fulfillment"
	"github.com/vedicwisdom/funnel-backend/internal/leads"
	"github.com/vedicwisdom/funnel-backend/internal/payments"
	"github.com/vedicwisdom/funnel-backend/pkg/config"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
	"github.com/vedicwisdom/funnel-backend/pkg/redis"
)

type paymentVerifier interface {
	Verify(orderID, paymentID, claimed string) error
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	sheetsP controllers.Pinger,
	verifier paymentVerifier,
	paymentsService payments.Service,
	contentService content.Service,
	leadsService leads.Service,
	fulfillmentService fulfillment.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	orderPolicy := middleware.NewRateLimitPolicy(
		"order",
		cfg.RateLimit.Window,
		cfg.RateLimit.OrderIP,
	)
	tarotPolicy := middleware.NewRateLimitPolicy(
		"tarot",
		cfg.RateLimit.Window,
		cfg.RateLimit.TarotIP,
	)
	if cfg.RateLimit.Disabled {
		orderPolicy = middleware.RateLimitPolicy{}
		tarotPolicy = middleware.RateLimitPolicy{}
	}

	orderLimiter := middleware.RateLimit(orderPolicy, nil, logg)
	tarotLimiter := middleware.RateLimit(tarotPolicy, nil, logg)
	readiness := map[string]controllers.Pinger{"sheets": sheetsP}
	if redisClient != nil {
		orderLimiter = middleware.RateLimit(orderPolicy, redisClient, logg)
		tarotLimiter = middleware.RateLimit(tarotPolicy, redisClient, logg)
		readiness["redis"] = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-teaser", controllers.GenerateTeaser(logg))
		r.Post("/track-order", controllers.TrackLead(leadsService, logg))
		r.With(orderLimiter).
			Post("/razorpay-order", controllers.CreateOrder(paymentsService, logg))
		r.With(tarotLimiter).
			Post("/generate-tarot", controllers.GenerateTarot(contentService, logg))
		r.Post("/generate-section", controllers.GenerateSection(verifier, contentService, logg))
		r.Post("/send-report", controllers.SendReport(fulfillmentService, logg))
	})

	return r
}
