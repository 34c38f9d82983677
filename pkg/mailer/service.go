package mailer

import (
	"context"
	"log"

	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/providers"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

// EmailService sends the site's transactional mail. With no provider
// configured (missing credentials) it logs and reports success without
// sending, so a misconfigured deployment degrades to "no mail" rather than
// failing every form submission.
type EmailService struct {
	provider    providers.EmailProvider
	defaultFrom string
}

func NewEmailService(provider providers.EmailProvider, defaultFrom string) *EmailService {
	return &EmailService{provider: provider, defaultFrom: defaultFrom}
}

// Send delivers a literal subject/html message.
func (s *EmailService) Send(ctx context.Context, to, subject, html string) *EmailResult {
	data := &EmailData{From: s.defaultFrom, To: to, Subject: subject, HTML: html}
	if err := validateEmailData(data); err != nil {
		return &EmailResult{Success: false, Error: err.Error()}
	}

	if s.provider == nil {
		log.Printf("mailer: no provider configured, skipping mail to %s", to)
		return &EmailResult{Success: true, Skipped: true}
	}

	if err := s.provider.Send(ctx, data.From, data.To, data.Subject, data.HTML); err != nil {
		return &EmailResult{Success: false, Error: err.Error()}
	}
	return &EmailResult{Success: true}
}

// SendTemplate renders one of the hard-coded receipt templates and sends it.
func (s *EmailService) SendTemplate(ctx context.Context, to, templateName string, data templates.Context) *EmailResult {
	subject, html, err := templates.Render(templateName, data)
	if err != nil {
		return &EmailResult{Success: false, Error: err.Error()}
	}
	return s.Send(ctx, to, subject, html)
}
