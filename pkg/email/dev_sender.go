package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes every message to Dir instead of delivering it: the HTML
// body as <stamp>_<name>.html and the envelope as <stamp>_<name>.json.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender returns a sender writing to dir. The directory is created on
// first use.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

// Dir returns the output directory.
func (d *DevSender) Dir() string { return d.dir }

type envelope struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	BodyFile  string `json:"body_file"`
}

// SendEmail writes the message files. Nothing is written for invalid params.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	now := d.now()
	name := params.Tag
	if name == "" {
		name = params.Subject
	}
	base := now.Format("20060102T150405.000") + "_" + fileSafe(name)

	body := base + ".html"
	if err := os.WriteFile(filepath.Join(d.dir, body), []byte(params.BodyHTML), 0o644); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("write body: %w", err))
	}

	data, err := json.MarshalIndent(envelope{
		Timestamp: now.UTC().Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		BodyFile:  body,
	}, "", "  ")
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("write envelope: %w", err))
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9_.-]+`)

// fileSafe lowercases s and keeps at most 100 file name safe characters.
func fileSafe(s string) string {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "email"
	}
	return s
}
