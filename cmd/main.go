package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShunTr-dev/socios-ajerga/api"
	"github.com/ShunTr-dev/socios-ajerga/dynamo"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"github.com/ShunTr-dev/socios-ajerga/sheets"
	"github.com/ShunTr-dev/socios-ajerga/signup"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(env api.Environment) *slog.Logger {
	if env == api.PROD {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	secrets, err := loadSecrets(ctx, cfg, awsCfg)
	if err != nil {
		return err
	}

	providers, err := createProviders(cfg, secrets)
	if err != nil {
		return err
	}

	ledger, err := createLedger(ctx, logger, cfg, secrets)
	if err != nil {
		return err
	}

	db := dynamo.NewDB(dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	}), cfg.AttemptsTable)

	emailSender, err := createEmailSender(ctx, logger, cfg, awsCfg, secrets)
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}

	workflow := signup.NewWorkflow(providers, ledger, db, members.NewWelcomeEmailer(emailSender, cfg.EmailFrom), logger)

	handler, err := api.NewAPI(workflow, ledger, db, cfg.Fee, logger, cfg.Env, cfg.AllowedOrigins).Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", slog.String("addr", s.Addr))
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// createProviders fails when a payment method has no credentials, so a
// misconfigured deploy never starts taking signups.
func createProviders(cfg Config, secrets Secrets) (payments.Providers, error) {
	card, err := payments.NewCardProvider(secrets.StripeSecretKey)
	if err != nil {
		return nil, err
	}

	wallet, err := payments.NewWalletProvider(payments.WalletConfig{
		ClientID:     secrets.PaypalClientID,
		ClientSecret: secrets.PaypalClientSecret,
		Mode:         cfg.PaypalMode,
		BrandName:    cfg.BrandName,
	})
	if err != nil {
		return nil, err
	}

	return payments.NewProviders(card, wallet), nil
}

func createLedger(ctx context.Context, logger *slog.Logger, cfg Config, secrets Secrets) (*sheets.Ledger, error) {
	var table sheets.Table

	if cfg.SpreadsheetID == "" {
		logger.Warn("GOOGLE_SHEET_ID is not set, keeping the member ledger in memory")
		table = sheets.NewMemoryTable()
	} else {
		service, err := sheetsapi.NewService(ctx,
			option.WithCredentialsJSON(secrets.GoogleServiceAccountJSON),
			option.WithScopes(sheetsapi.SpreadsheetsScope),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets client: %w", err)
		}

		table, err = sheets.NewGoogleTable(service, cfg.SpreadsheetID, cfg.SheetRange)
		if err != nil {
			return nil, err
		}
	}

	ledger := sheets.NewLedger(table)
	if err := ledger.EnsureHeader(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare member ledger: %w", err)
	}

	return ledger, nil
}
