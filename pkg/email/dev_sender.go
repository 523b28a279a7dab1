package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development by writing each
// dispatch as a JSON file instead of calling a provider.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a sender that saves dispatches under dir.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devDispatch struct {
	Timestamp  string            `json:"timestamp"`
	ServiceID  string            `json:"service_id"`
	TemplateID string            `json:"template_id"`
	To         string            `json:"to,omitempty"`
	ReplyTo    string            `json:"reply_to,omitempty"`
	Params     map[string]string `json:"params"`
}

func (d *DevSender) Send(ctx context.Context, dispatch Dispatch) error {
	if err := dispatch.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	now := d.now()
	record := devDispatch{
		Timestamp:  now.Format(time.RFC3339),
		ServiceID:  dispatch.ServiceID,
		TemplateID: dispatch.TemplateID,
		To:         dispatch.To,
		ReplyTo:    dispatch.ReplyTo,
		Params:     dispatch.Params,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal dispatch: %v", ErrSendFailed, err)
	}

	name := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405.000000"), sanitizeFilename(dispatch.TemplateID))
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write dispatch file: %v", ErrSendFailed, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
