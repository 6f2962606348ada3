package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/International-Combat-Archery-Alliance/email/gmail"
	"github.com/ShunTr-dev/socios-ajerga/api"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

var _ email.Sender = &EmailLogger{}

// EmailLogger is an email.Sender for local dev that only logs the email.
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent", slog.Any("to", e.ToAddresses), slog.String("subject", e.Subject))

	return nil
}

func createEmailSender(ctx context.Context, logger *slog.Logger, cfg Config, awsCfg aws.Config, secrets Secrets) (email.Sender, error) {
	if cfg.Env == api.LOCAL {
		return &EmailLogger{logger: logger}, nil
	}

	switch cfg.EmailProvider {
	case "ses":
		return awsses.NewAWSSESSender(sesv2.NewFromConfig(awsCfg)), nil
	case "gmail":
		if len(secrets.GoogleServiceAccountJSON) == 0 {
			return nil, fmt.Errorf("gmail sender needs the google service account")
		}
		return gmail.NewGmailSender(ctx, secrets.GoogleServiceAccountJSON, cfg.EmailFrom)
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}
