package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vedicwisdom/funnel-backend/api/routes"
	"github.com/vedicwisdom/funnel-backend/internal/content"
	"github.com/vedicwisdom/funnel-backend/internal/fulfillment"
	"github.com/vedicwisdom/funnel-backend/internal/leads"
	"github.com/vedicwisdom/funnel-backend/internal/payments"
	"github.com/vedicwisdom/funnel-backend/internal/report"
	"github.com/vedicwisdom/funnel-backend/pkg/config"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
	"github.com/vedicwisdom/funnel-backend/pkg/mailer"
	"github.com/vedicwisdom/funnel-backend/pkg/metrics"
	"github.com/vedicwisdom/funnel-backend/pkg/razorpay"
	"github.com/vedicwisdom/funnel-backend/pkg/redis"
	"github.com/vedicwisdom/funnel-backend/pkg/sheets"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sheetsClient, err := sheets.New(context.Background(), cfg.Sheets, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap sheets", err)
		os.Exit(1)
	}

	razorpayClient, err := razorpay.NewClient(context.Background(), cfg.Razorpay, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap razorpay", err)
		os.Exit(1)
	}

	mailClient, err := mailer.NewClient(cfg.Sendgrid, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap sendgrid", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	fulfillmentMetrics := metrics.NewFulfillmentMetrics(registry)

	paymentsService, err := payments.NewService(razorpayClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create payments service", err)
		os.Exit(1)
	}
	verifier := payments.NewVerifier(razorpayClient.KeySecret())

	contentService, err := content.NewService(
		openai.NewClient(cfg.OpenAI.APIKey),
		cfg.OpenAI.Model,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create content service", err)
		os.Exit(1)
	}

	leadsService, err := leads.NewService(leads.NewRepository(sheetsClient), redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create leads service", err)
		os.Exit(1)
	}

	renderer := report.NewRenderer(cfg.Report.Brand, cfg.Report.Year)

	fulfillmentService, err := fulfillment.NewService(
		verifier,
		leadsService,
		contentService,
		renderer,
		mailClient,
		fulfillmentMetrics,
		logg,
		cfg.Report.Year,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create fulfillment service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			sheetsClient,
			verifier,
			paymentsService,
			contentService,
			leadsService,
			fulfillmentService,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
