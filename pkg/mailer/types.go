package mailer

import (
	"errors"
	"net/mail"
)

var (
	ErrRecipientRequired = errors.New("recipient is required")
	ErrSubjectRequired   = errors.New("subject is required")
	ErrHTMLRequired      = errors.New("html content is required")
)

// EmailData is one outbound message.
type EmailData struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// EmailResult reports what happened to one message. Skipped marks the silent
// no-op taken when no provider credentials are configured.
type EmailResult struct {
	Success bool
	Skipped bool
	Error   string
}

func ValidateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	return err
}

func validateEmailData(data *EmailData) error {
	if data.To == "" {
		return ErrRecipientRequired
	}
	if err := ValidateEmail(data.To); err != nil {
		return err
	}
	if data.Subject == "" {
		return ErrSubjectRequired
	}
	if data.HTML == "" {
		return ErrHTMLRequired
	}
	return nil
}
