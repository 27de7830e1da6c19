package email

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to" validate:"required,email"`           // Email address of the recipient
	Subject  string `json:"subject" validate:"required,max=998"`         // Subject of the email
	BodyHTML string `json:"body_html" validate:"required"`               // HTML body of the email
	Tag      string `json:"tag,omitempty" validate:"omitempty,max=1000"` // Optional
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the params before they are handed to a sender.
func (p SendEmailParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// Initialize selects the sender for cfg. It reports enabled=false with a nil
// error when neither Postmark nor the dev directory is configured.
func Initialize(cfg Config) (sender EmailSender, enabled bool, err error) {
	switch {
	case cfg.postmarkConfigured():
		pm, err := NewPostmarkClient(cfg)
		if err != nil {
			return nil, true, err
		}
		return pm, true, nil
	case cfg.DevDir != "":
		return NewDevSender(cfg.DevDir), true, nil
	default:
		return nil, false, nil
	}
}
