// Package templates holds the three hard-coded receipt emails: casting
// application, fashion-day reservation and booking request.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	NameCastingReceipt    = "casting-receipt"
	NameFashionDayReceipt = "fashion-day-receipt"
	NameBookingReceipt    = "booking-receipt"
)

// Context is the data handed to a template.
type Context map[string]any

type receiptTemplate struct {
	subject string
	html    *template.Template
}

var registry = map[string]receiptTemplate{
	NameCastingReceipt: {
		subject: "Votre candidature au casting Perfect Models Management",
		html: template.Must(template.New(NameCastingReceipt).Parse(`
<h2>Candidature bien reçue</h2>
<p>Bonjour {{.firstName}},</p>
<p>Nous avons bien reçu votre candidature au casting de Perfect Models Management.
Notre équipe l'examinera et reviendra vers vous dans les meilleurs délais.</p>
<p>À très bientôt,<br>L'équipe Perfect Models Management</p>
`)),
	},
	NameFashionDayReceipt: {
		subject: "Votre réservation Perfect Fashion Day",
		html: template.Must(template.New(NameFashionDayReceipt).Parse(`
<h2>Réservation confirmée</h2>
<p>Bonjour {{.name}},</p>
<p>Votre demande de réservation pour le Perfect Fashion Day a bien été enregistrée
{{if .seats}}pour {{.seats}} place(s){{end}}.</p>
<p>Nous vous contacterons avec les détails pratiques de l'événement.</p>
<p>L'équipe Perfect Models Management</p>
`)),
	},
	NameBookingReceipt: {
		subject: "Votre demande de booking",
		html: template.Must(template.New(NameBookingReceipt).Parse(`
<h2>Demande de booking reçue</h2>
<p>Bonjour {{.clientName}},</p>
<p>Nous avons bien reçu votre demande de booking{{if .modelName}} concernant {{.modelName}}{{end}}.
Notre équipe vous répondra sous 48 heures.</p>
<p>L'équipe Perfect Models Management</p>
`)),
	},
}

// Render executes the named template and returns its subject and HTML body.
func Render(name string, ctx Context) (subject, html string, err error) {
	tpl, ok := registry[name]
	if !ok {
		return "", "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.html.Execute(&buf, ctx); err != nil {
		return "", "", err
	}
	return tpl.subject, buf.String(), nil
}
