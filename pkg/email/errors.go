package email

import "errors"

var (
	// ErrFailedToSendEmail wraps delivery failures of any sender.
	ErrFailedToSendEmail = errors.New("email: failed to send")
	// ErrInvalidConfig is returned when the Postmark settings are incomplete.
	ErrInvalidConfig = errors.New("email: invalid configuration")
	// ErrInvalidParams is returned by SendEmailParams.Validate.
	ErrInvalidParams = errors.New("email: invalid message parameters")
)
