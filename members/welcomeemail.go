package members

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
)

//go:embed templates
var templates embed.FS

func SendWelcomeEmail(ctx context.Context, emailSender email.Sender, fromAddress string, applicant ApplicantRecord, amount *money.Money) error {
	data := map[string]any{
		"Applicant": applicant,
		"Amount":    amounts.FormatMajor(amount),
		"Currency":  amount.Currency().Code,
	}

	htmlBody, err := makeHtmlBody(data)
	if err != nil {
		return err
	}

	textOnlyBody, err := makeTextOnlyBody(data)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{applicant.Email},
		Subject:     "Membership confirmed",
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func makeHtmlBody(data map[string]any) (string, error) {
	tmpl, err := template.ParseFS(templates, "templates/welcome.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}

func makeTextOnlyBody(data map[string]any) (string, error) {
	tmpl, err := textTemplate.ParseFS(templates, "templates/welcome-textonly.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}

// WelcomeEmailer sends the membership confirmation once a payment is confirmed.
type WelcomeEmailer struct {
	sender      email.Sender
	fromAddress string
}

func NewWelcomeEmailer(sender email.Sender, fromAddress string) *WelcomeEmailer {
	return &WelcomeEmailer{
		sender:      sender,
		fromAddress: fromAddress,
	}
}

func (w *WelcomeEmailer) NotifyPaid(ctx context.Context, applicant ApplicantRecord, amount *money.Money) error {
	return SendWelcomeEmail(ctx, w.sender, w.fromAddress, applicant, amount)
}
