package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ShunTr-dev/socios-ajerga/api"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noopLogger = slog.New(slog.DiscardHandler)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("GOOGLE_SHEET_ID", "")
	t.Setenv("MEMBERSHIP_FEE", "8.00")
	t.Setenv("MEMBERSHIP_CURRENCY", "EUR")
	t.Setenv("PAYPAL_MODE", "sandbox")
	t.Setenv("GOOGLE_SHEET_RANGE", "Members!A:N")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, api.LOCAL, cfg.Env)
	assert.Equal(t, int64(800), cfg.Fee.Amount())
	assert.Equal(t, "EUR", cfg.Fee.Currency().Code)
	assert.Equal(t, payments.WALLET_SANDBOX, cfg.PaypalMode)
	assert.Equal(t, "Members!A:N", cfg.SheetRange)
	assert.Empty(t, cfg.SpreadsheetID)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "STAGING"}},
		{name: "bad fee", env: map[string]string{"ENV": "LOCAL", "MEMBERSHIP_FEE": "eight"}},
		{name: "zero fee", env: map[string]string{"ENV": "LOCAL", "MEMBERSHIP_FEE": "0"}},
		{name: "bad paypal mode", env: map[string]string{"ENV": "LOCAL", "MEMBERSHIP_FEE": "8.00", "PAYPAL_MODE": "test"}},
		{name: "prod without sheet", env: map[string]string{"ENV": "PROD", "MEMBERSHIP_FEE": "8.00", "PAYPAL_MODE": "production", "GOOGLE_SHEET_ID": ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("MEMBERSHIP_CURRENCY", "EUR")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.es", "https://b.es"}, splitList(" https://a.es, ,https://b.es "))
	assert.Nil(t, splitList(""))
}

func TestCreateEmailSenderLocalLogs(t *testing.T) {
	sender, err := createEmailSender(context.Background(), noopLogger, Config{Env: api.LOCAL}, aws.Config{}, Secrets{})
	require.NoError(t, err)
	assert.IsType(t, &EmailLogger{}, sender)
}

func TestCreateEmailSenderUnknownProvider(t *testing.T) {
	_, err := createEmailSender(context.Background(), noopLogger, Config{Env: api.PROD, EmailProvider: "pigeon"}, aws.Config{}, Secrets{})
	assert.Error(t, err)
}

func TestCreateProvidersNeedsCredentials(t *testing.T) {
	_, err := createProviders(Config{PaypalMode: payments.WALLET_SANDBOX}, Secrets{PaypalClientID: "id", PaypalClientSecret: "secret"})

	var payErr *payments.Error
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, payments.REASON_PROVIDER_CONFIG, payErr.Reason)
}

func TestCreateLedgerInMemory(t *testing.T) {
	ctx := context.Background()

	ledger, err := createLedger(ctx, noopLogger, Config{}, Secrets{})
	require.NoError(t, err)

	records, err := ledger.ListApplicants(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, found, err := ledger.FindRowByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, found)

	// the header row was written
	require.NoError(t, ledger.AppendApplicant(ctx, members.LedgerRow{Applicant: members.ApplicantRecord{Email: "ana@example.com"}}))
	records, err = ledger.ListApplicants(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ana@example.com", records[0]["Email"])
}
