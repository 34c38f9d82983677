package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	resendAPIURL     = "https://api.resend.com"
	pathResendEmails = "/emails"
)

// EmailProvider delivers one already-rendered message.
type EmailProvider interface {
	Send(ctx context.Context, from, to, subject, html string) error
}

// ResendProvider delivers through the Resend HTTP API.
type ResendProvider struct {
	APIKey string
	APIURL string
	Client *http.Client
}

func NewResendProvider(apiKey string) *ResendProvider {
	return &ResendProvider{
		APIKey: apiKey,
		APIURL: resendAPIURL,
		Client: http.DefaultClient,
	}
}

func (p *ResendProvider) Send(ctx context.Context, from, to, subject, html string) error {
	payload, err := json.Marshal(map[string]any{
		"from":    from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.APIURL+pathResendEmails, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
