package email

// Config holds the notification subsystem configuration. Email is optional:
// Postmark is used when both tokens are set, the file-based DevSender when
// DevDir is set, and the subsystem is disabled otherwise.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
	DevDir               string `env:"EMAIL_DEV_DIR"` // DevDir receives emails as files instead of sending them.
}

func (c Config) postmarkConfigured() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
