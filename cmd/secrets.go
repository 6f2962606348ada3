package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ShunTr-dev/socios-ajerga/api"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type Secrets struct {
	StripeSecretKey          string
	PaypalClientID           string
	PaypalClientSecret       string
	GoogleServiceAccountJSON []byte
}

// loadSecrets reads provider credentials from SSM Parameter Store in PROD and
// from the environment in LOCAL. Missing values are left empty so that the
// provider constructors report them.
func loadSecrets(ctx context.Context, cfg Config, awsCfg aws.Config) (Secrets, error) {
	if cfg.Env == api.LOCAL {
		return loadLocalSecrets()
	}

	client := ssm.NewFromConfig(awsCfg)

	var s Secrets
	var err error
	if s.StripeSecretKey, err = getParameter(ctx, client, cfg.SSMPrefix+"stripe-secret-key"); err != nil {
		return Secrets{}, err
	}
	if s.PaypalClientID, err = getParameter(ctx, client, cfg.SSMPrefix+"paypal-client-id"); err != nil {
		return Secrets{}, err
	}
	if s.PaypalClientSecret, err = getParameter(ctx, client, cfg.SSMPrefix+"paypal-client-secret"); err != nil {
		return Secrets{}, err
	}
	serviceAccount, err := getParameter(ctx, client, cfg.SSMPrefix+"google-service-account")
	if err != nil {
		return Secrets{}, err
	}
	s.GoogleServiceAccountJSON = []byte(serviceAccount)

	return s, nil
}

func loadLocalSecrets() (Secrets, error) {
	s := Secrets{
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		PaypalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PaypalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
	}

	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		creds, err := os.ReadFile(path)
		if err != nil {
			return Secrets{}, fmt.Errorf("failed to read google credentials file: %w", err)
		}
		s.GoogleServiceAccountJSON = creds
	}

	return s, nil
}

func getParameter(ctx context.Context, client *ssm.Client, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get SSM parameter %q: %w", name, err)
	}

	return aws.ToString(out.Parameter.Value), nil
}
