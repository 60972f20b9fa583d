// Package config loads the relay service configuration from the
// environment, optionally preloaded from .env files.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/paradise-realestate/relay/pkg/logger"
	"github.com/paradise-realestate/relay/pkg/mailer/resend"
	"github.com/paradise-realestate/relay/pkg/mailer/smtp"
	"github.com/paradise-realestate/relay/pkg/telemetry"
)

// Mail providers.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

var (
	ErrMissingMailUser  = errors.New("config: MAIL_USER is required for the smtp provider")
	ErrMissingResendKey = errors.New("config: RESEND_API_KEY is required for the resend provider")
	ErrMissingSender    = errors.New("config: MAIL_FROM or MAIL_USER is required for the resend provider")
	ErrMissingOperator  = errors.New("config: MAIL_TO or MAIL_USER is required")
	ErrUnknownProvider  = errors.New("config: unknown MAIL_PROVIDER")
	ErrInvalidPort      = errors.New("config: PORT out of range")
	ErrInvalidBodyLimit = errors.New("config: MAX_BODY_BYTES must be positive")
)

// DefaultFiles are the .env files Load reads when none are given.
var DefaultFiles = []string{".env"}

// Config holds all relay settings.
type Config struct {
	Port     int    `env:"PORT" envDefault:"3001"`
	Provider string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	// MailTo is the operator mailbox. Defaults to MAIL_USER.
	MailTo string `env:"MAIL_TO"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes       int64         `env:"MAX_BODY_BYTES" envDefault:"102400"`

	SMTP      smtp.Config
	Resend    resend.Config
	Log       logger.Config
	Telemetry telemetry.Config
}

// Load reads the given .env files (DefaultFiles when empty) into the
// process environment and parses it. Missing files are skipped and
// variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from an explicit variable set.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MailTo == "" {
		c.MailTo = c.SMTP.Username
	}
	if c.Resend.SenderEmail == "" {
		c.Resend.SenderEmail = c.SMTP.From()
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderSMTP:
		if c.SMTP.Username == "" {
			errs = append(errs, ErrMissingMailUser)
		}
	case ProviderResend:
		if c.Resend.APIKey == "" {
			errs = append(errs, ErrMissingResendKey)
		}
		if c.Resend.SenderEmail == "" {
			errs = append(errs, ErrMissingSender)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider))
	}

	if c.MailTo == "" && c.Provider != ProviderSMTP {
		errs = append(errs, ErrMissingOperator)
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.Port))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, ErrInvalidBodyLimit)
	}

	return errors.Join(errs...)
}

// Addr is the listen address for Port on all interfaces.
func (c *Config) Addr() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}
