package smtp

// Config holds SMTP relay settings.
type Config struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.hostinger.com"`
	// Secure selects implicit TLS. When false the connection upgrades with
	// STARTTLS if the server offers it.
	Secure      bool   `env:"SMTP_SECURE" envDefault:"true"`
	Port        int    `env:"SMTP_PORT" envDefault:"465"`
	Username    string `env:"MAIL_USER"`
	Password    string `env:"MAIL_PASS"`
	SenderEmail string `env:"MAIL_FROM"`
	SenderName  string `env:"MAIL_FROM_NAME" envDefault:"Paradise RealEstate"`
}

// From returns the sender address, falling back to the login username.
func (c Config) From() string {
	if c.SenderEmail != "" {
		return c.SenderEmail
	}
	return c.Username
}
