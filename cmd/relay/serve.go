package main

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/paradise-realestate/relay"
	"github.com/paradise-realestate/relay/internal/config"
	"github.com/paradise-realestate/relay/internal/handlers"
	"github.com/paradise-realestate/relay/middlewares"
	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/health"
	"github.com/paradise-realestate/relay/pkg/logger"
	"github.com/paradise-realestate/relay/pkg/mailer"
	"github.com/paradise-realestate/relay/pkg/mailer/resend"
	"github.com/paradise-realestate/relay/pkg/mailer/smtp"
	"github.com/paradise-realestate/relay/pkg/telemetry"
)

const (
	readinessTimeout = 5 * time.Second
	resendTimeout    = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mail relay HTTP service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog := logger.NewFromConfig(cfg.Log, middlewares.RequestIDExtractor(), telemetry.TraceExtractor)
	defer func() { _ = closeLog() }()

	shutdownTracing, err := telemetry.Setup(cmd.Context(), cfg.Telemetry)
	if err != nil {
		log.Error("telemetry setup failed", slog.String("error", err.Error()))
		return err
	}

	sender, checks := newSender(cfg)
	app, err := newServer(cfg, sender, checks, log)
	if err != nil {
		return err
	}

	return app.Run(cfg.Addr(),
		relay.WithContext(cmd.Context()),
		relay.ShutdownTimeout(cfg.ShutdownTimeout),
		relay.ShutdownHook(shutdownTracing),
		relay.OnReady(func(addr net.Addr) {
			log.Info("relay ready",
				slog.String("addr", addr.String()),
				slog.String("provider", cfg.Provider),
				slog.String("operator", cfg.MailTo),
			)
		}),
	)
}

// newSender picks the mail provider and the readiness checks it supports.
func newSender(cfg *config.Config) (mailer.Sender, health.Checks) {
	if cfg.Provider == config.ProviderResend {
		hc := &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   resendTimeout,
		}
		return resend.New(cfg.Resend, hc), nil
	}

	s := smtp.New(cfg.SMTP)
	return s, health.Checks{"smtp": s.Ping}
}

// newServer wires the relay service: middleware, error rendering, the
// contact, health and enquiry handlers, and readiness probes.
func newServer(cfg *config.Config, sender mailer.Sender, checks health.Checks, log *slog.Logger) (*relay.App, error) {
	r, err := contact.NewRelay(sender, cfg.MailTo, contact.WithLogger(log))
	if err != nil {
		return nil, err
	}

	healthOpts := []relay.HealthOption{relay.WithReadinessTimeout(readinessTimeout)}
	for name, check := range checks {
		healthOpts = append(healthOpts, relay.WithReadinessCheck(name, check))
	}

	opts := []relay.Option{
		relay.WithCustomLogger(log),
		relay.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowedOrigins...)),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		relay.WithErrorHandler(handlers.ErrorHandler),
		relay.WithNotFoundHandler(handlers.NotFound),
		relay.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		relay.WithHandlers(
			handlers.NewContactHandler(r, cfg.MaxBodyBytes),
			handlers.NewHealthHandler(nil),
			handlers.NewEnquiryHandler(handlers.RelaySubmitter(r), 0),
		),
		relay.WithHealthChecks(healthOpts...),
	}
	if cfg.Telemetry.Enabled {
		opts = append(opts, relay.WithTracing(cfg.Telemetry.ServiceName))
	}

	return relay.New(opts...), nil
}
