package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// postmarkAPI is the part of *postmark.Client the sender uses.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender delivers email through the Postmark transactional API.
type PostmarkSender struct {
	api     postmarkAPI
	from    string
	replyTo string
}

// NewPostmarkClient checks cfg and returns a Postmark sender. Replies go to
// SupportEmail.
func NewPostmarkClient(cfg Config) (*PostmarkSender, error) {
	var errs []error
	if cfg.PostmarkServerToken == "" {
		errs = append(errs, errors.New("PostmarkServerToken is required"))
	}
	if cfg.PostmarkAccountToken == "" {
		errs = append(errs, errors.New("PostmarkAccountToken is required"))
	}
	if validate.Var(cfg.SenderEmail, "required,email") != nil {
		errs = append(errs, errors.New("SenderEmail must be a valid email address"))
	}
	if validate.Var(cfg.SupportEmail, "required,email") != nil {
		errs = append(errs, errors.New("SupportEmail must be a valid email address"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return newPostmarkSender(postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken), cfg), nil
}

func newPostmarkSender(api postmarkAPI, cfg Config) *PostmarkSender {
	return &PostmarkSender{api: api, from: cfg.SenderEmail, replyTo: cfg.SupportEmail}
}

// SendEmail validates params and hands the message to Postmark. A non-zero
// Postmark error code is reported as ErrFailedToSendEmail.
func (s *PostmarkSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := s.api.SendEmail(ctx, postmark.Email{
		From:       s.from,
		ReplyTo:    s.replyTo,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode != 0 {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("postmark: code %d: %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
