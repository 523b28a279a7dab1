package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSClient sends template emails through the EmailJS REST API.
// The EmailJS account must allow API calls from non-browser applications.
type EmailJSClient struct {
	baseURL    string
	publicKey  string
	privateKey string
	httpClient *http.Client
}

// emailJSRequest is the JSON body expected by EmailJS
type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// NewEmailJSClient creates a new EmailJS client. privateKey is optional;
// a nil httpClient falls back to a client without timeout.
func NewEmailJSClient(baseURL, publicKey, privateKey string, httpClient *http.Client) (*EmailJSClient, error) {
	if publicKey == "" {
		return nil, fmt.Errorf("%w: EmailJS public key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = "https://api.emailjs.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &EmailJSClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicKey:  publicKey,
		privateKey: privateKey,
		httpClient: httpClient,
	}, nil
}

func (c *EmailJSClient) Send(ctx context.Context, d Dispatch) error {
	if err := d.Validate(); err != nil {
		return err
	}

	payload := emailJSRequest{
		ServiceID:      d.ServiceID,
		TemplateID:     d.TemplateID,
		UserID:         c.publicKey,
		TemplateParams: d.Params,
		AccessToken:    c.privateKey,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+emailJSSendPath, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// EmailJS answers with a short plain-text body ("OK" or the reason)
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return errors.Join(ErrSendFailed, fmt.Errorf("error reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Join(
			ErrSendFailed,
			fmt.Errorf("emailjs error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}

	return nil
}
