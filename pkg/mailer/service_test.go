package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

type fakeProvider struct {
	err  error
	sent []string
}

func (f *fakeProvider) Send(ctx context.Context, from, to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestSendWithoutProviderIsSilentNoop(t *testing.T) {
	svc := NewEmailService(nil, "contact@perfectmodels.ga")

	res := svc.Send(context.Background(), "marie@example.com", "Bonjour", "<p>test</p>")

	if !res.Success {
		t.Errorf("expected success, got %+v", res)
	}
	if !res.Skipped {
		t.Error("expected the send to be marked skipped")
	}
}

func TestSendValidatesRecipient(t *testing.T) {
	svc := NewEmailService(&fakeProvider{}, "contact@perfectmodels.ga")

	res := svc.Send(context.Background(), "", "Bonjour", "<p>test</p>")
	if res.Success {
		t.Error("expected failure for missing recipient")
	}

	res = svc.Send(context.Background(), "not-an-address", "Bonjour", "<p>test</p>")
	if res.Success {
		t.Error("expected failure for invalid recipient")
	}
}

func TestSendTemplateRendersReceipt(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewEmailService(provider, "contact@perfectmodels.ga")

	res := svc.SendTemplate(context.Background(), "marie@example.com",
		templates.NameCastingReceipt, templates.Context{"firstName": "Marie"})

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(provider.sent) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(provider.sent))
	}
}

func TestSendTemplateUnknownName(t *testing.T) {
	svc := NewEmailService(&fakeProvider{}, "contact@perfectmodels.ga")

	res := svc.SendTemplate(context.Background(), "marie@example.com", "nope", nil)
	if res.Success {
		t.Error("expected failure for unknown template")
	}
}

func TestProviderErrorReported(t *testing.T) {
	svc := NewEmailService(&fakeProvider{err: errors.New("timeout")}, "contact@perfectmodels.ga")

	res := svc.Send(context.Background(), "marie@example.com", "Bonjour", "<p>test</p>")
	if res.Success {
		t.Error("expected failure when the provider errors")
	}
	if res.Error == "" {
		t.Error("expected the provider error in the result")
	}
}

func TestTemplatesRender(t *testing.T) {
	tests := []struct {
		name     string
		ctx      templates.Context
		contains string
	}{
		{templates.NameCastingReceipt, templates.Context{"firstName": "Marie"}, "Marie"},
		{templates.NameFashionDayReceipt, templates.Context{"name": "Paul", "seats": 2}, "Paul"},
		{templates.NameBookingReceipt, templates.Context{"clientName": "Studio X", "modelName": "Clarisse"}, "Clarisse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, html, err := templates.Render(tt.name, tt.ctx)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if subject == "" {
				t.Error("empty subject")
			}
			if !strings.Contains(html, tt.contains) {
				t.Errorf("rendered html does not mention %q:\n%s", tt.contains, html)
			}
		})
	}
}
