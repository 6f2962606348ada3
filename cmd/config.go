package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
	"github.com/ShunTr-dev/socios-ajerga/api"
	"github.com/ShunTr-dev/socios-ajerga/payments"
)

type ServerSettings struct {
	Host string
	Port string
}

type Config struct {
	Env    api.Environment
	Server ServerSettings
	// AllowedOrigins is the PROD cors allow list.
	AllowedOrigins []string

	Fee       *money.Money
	BrandName string
	EmailFrom string
	// EmailProvider is "gmail" or "ses". LOCAL always logs emails instead.
	EmailProvider string

	PaypalMode payments.WalletMode

	// SpreadsheetID left empty in LOCAL keeps the ledger in memory.
	SpreadsheetID string
	SheetRange    string

	AttemptsTable  string
	DynamoEndpoint string

	SSMPrefix string
}

func loadConfig() (Config, error) {
	env, err := parseEnvironment(getEnvOrDefault("ENV", "LOCAL"))
	if err != nil {
		return Config{}, err
	}

	fee, err := amounts.Parse(getEnvOrDefault("MEMBERSHIP_FEE", "8.00"), getEnvOrDefault("MEMBERSHIP_CURRENCY", money.EUR))
	if err != nil {
		return Config{}, fmt.Errorf("invalid membership fee: %w", err)
	}

	cfg := Config{
		Env: env,
		Server: ServerSettings{
			Host: getEnvOrDefault("HOST", "0.0.0.0"),
			Port: getEnvOrDefault("PORT", "8080"),
		},
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "https://ajerga.es")),
		Fee:            fee,
		BrandName:      getEnvOrDefault("BRAND_NAME", "AJERGA"),
		EmailFrom:      getEnvOrDefault("EMAIL_FROM", "AJERGA <socios@ajerga.es>"),
		EmailProvider:  getEnvOrDefault("EMAIL_PROVIDER", "gmail"),
		PaypalMode:     payments.WalletMode(getEnvOrDefault("PAYPAL_MODE", string(payments.WALLET_SANDBOX))),
		SpreadsheetID:  getEnvOrDefault("GOOGLE_SHEET_ID", ""),
		SheetRange:     getEnvOrDefault("GOOGLE_SHEET_RANGE", "Members!A:N"),
		AttemptsTable:  getEnvOrDefault("ATTEMPTS_TABLE", "MembershipSignups"),
		DynamoEndpoint: getEnvOrDefault("DYNAMO_ENDPOINT", ""),
		SSMPrefix:      getEnvOrDefault("SSM_PREFIX", "/socios-ajerga/"),
	}

	if cfg.PaypalMode != payments.WALLET_SANDBOX && cfg.PaypalMode != payments.WALLET_LIVE {
		return Config{}, fmt.Errorf("PAYPAL_MODE must be %q or %q, got %q", payments.WALLET_SANDBOX, payments.WALLET_LIVE, cfg.PaypalMode)
	}
	if cfg.Env == api.PROD && cfg.SpreadsheetID == "" {
		return Config{}, fmt.Errorf("GOOGLE_SHEET_ID is required in PROD")
	}

	return cfg, nil
}

func parseEnvironment(s string) (api.Environment, error) {
	switch strings.ToUpper(s) {
	case "LOCAL":
		return api.LOCAL, nil
	case "PROD":
		return api.PROD, nil
	default:
		return 0, fmt.Errorf("unknown ENV %q", s)
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
