package email

import (
	"log/slog"

	"github.com/dmitrymomot/agencysite/pkg/logger"
)

// Config holds email delivery settings. Without Postmark tokens the site
// falls back to DevSender and writes messages to DevDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@fifthfloor.agency"`
	InboxEmail           string `env:"CONTACT_INBOX"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// UsePostmark reports whether Postmark credentials are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != "" || c.PostmarkAccountToken != ""
}

// NewSender returns a Postmark sender when tokens are configured and a
// DevSender otherwise.
func NewSender(cfg Config, log *slog.Logger) (EmailSender, error) {
	if cfg.UsePostmark() {
		return NewPostmarkClient(cfg)
	}
	if log != nil {
		log.Warn("postmark is not configured, writing emails to disk", logger.Component("email"), slog.String("dir", cfg.DevDir))
	}
	return NewDevSender(cfg.DevDir), nil
}
