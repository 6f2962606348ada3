package signup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName     = "github.com/ShunTr-dev/socios-ajerga/signup"
	maxPaidRetries = 3
)

// Submission is the pending signup the client holds until the workflow reports
// PAID, at which point the client may clear it.
type Submission struct {
	Applicant members.ApplicantRecord
	Amount    *money.Money
}

type Outcome struct {
	State          State
	Reason         FailureReason
	Warnings       []Warning
	ChargeID       string
	ClientSecret   string
	CaptureID      string
	ProviderStatus string
	// AlreadyPaid is set when the ledger already had a PAID row and nothing was charged.
	AlreadyPaid bool
	// Err is the cause behind a FAILED outcome or a warning. It is for logs, not for callers to branch on.
	Err error
}

func (o Outcome) HasWarning(w Warning) bool {
	for _, v := range o.Warnings {
		if v == w {
			return true
		}
	}
	return false
}

type Notifier interface {
	NotifyPaid(ctx context.Context, applicant members.ApplicantRecord, amount *money.Money) error
}

type Workflow struct {
	providers payments.Providers
	ledger    members.Ledger
	attempts  Repository
	notifier  Notifier
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewWorkflow wires the reconciliation workflow. notifier may be nil.
func NewWorkflow(providers payments.Providers, ledger members.Ledger, attempts Repository, notifier Notifier, logger *slog.Logger) *Workflow {
	return &Workflow{
		providers: providers,
		ledger:    ledger,
		attempts:  attempts,
		notifier:  notifier,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// Start creates the provider charge for a submission. No ledger row is written.
func (w *Workflow) Start(ctx context.Context, sub Submission) Outcome {
	ctx, span := w.tracer.Start(ctx, "signup.Start", trace.WithAttributes(
		attribute.String("payment.method", string(sub.Applicant.PaymentMethod)),
	))
	defer span.End()

	logger := w.logger.With(slog.String("email", sub.Applicant.Email), slog.String("method", string(sub.Applicant.PaymentMethod)))

	loc, found, err := w.ledger.FindRowByEmail(ctx, sub.Applicant.Email)
	if err != nil {
		logger.Error("Failed to check ledger before creating charge", slog.String("error", err.Error()))
		return endSpan(span, failed(CHARGE_CREATION_FAILED, "", err))
	}
	if found && loc.IsPaid() {
		logger.Info("Applicant is already a paid member, not charging again")
		return endSpan(span, alreadyPaid(loc.Cell(members.COL_CHARGE_ID)))
	}

	provider, err := w.providers.For(sub.Applicant.PaymentMethod)
	if err != nil {
		logger.Error("No provider for payment method", slog.String("error", err.Error()))
		return endSpan(span, failed(CHARGE_CREATION_FAILED, "", err))
	}

	req, err := payments.NewChargeRequest(sub.Amount, sub.Applicant)
	if err != nil {
		logger.Warn("Invalid charge request", slog.String("error", err.Error()))
		return endSpan(span, failed(CHARGE_CREATION_FAILED, "", err))
	}

	created, err := provider.CreateCharge(ctx, req)
	if err != nil {
		logger.Error("Failed to create charge", slog.String("error", err.Error()))
		return endSpan(span, failed(CHARGE_CREATION_FAILED, "", err))
	}

	chargeID := string(created.Handle)
	span.SetAttributes(attribute.String("charge.id", chargeID))

	now := w.now()
	err = w.attempts.CreateAttempt(ctx, Attempt{
		ChargeID:    chargeID,
		Version:     1,
		Applicant:   sub.Applicant,
		Amount:      sub.Amount,
		State:       CHARGE_CREATED,
		SubmittedAt: now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(attemptTTL),
	})
	if err != nil {
		logger.Error("Failed to save signup attempt", slog.String("error", err.Error()), slog.String("chargeId", chargeID))
		return endSpan(span, failed(CHARGE_CREATION_FAILED, chargeID, err))
	}

	logger.Info("Charge created", slog.String("chargeId", chargeID))

	return endSpan(span, Outcome{
		State:        CHARGE_CREATED,
		ChargeID:     chargeID,
		ClientSecret: created.ClientSecret,
	})
}

// Confirm handles the client's report that the payer finished the provider's
// own authorization step. The provider is always asked for the real status and
// the ledger is only written once that status is a terminal success.
func (w *Workflow) Confirm(ctx context.Context, chargeID string) Outcome {
	ctx, span := w.tracer.Start(ctx, "signup.Confirm", trace.WithAttributes(attribute.String("charge.id", chargeID)))
	defer span.End()

	logger := w.logger.With(slog.String("chargeId", chargeID))

	attempt, err := w.attempts.GetAttempt(ctx, chargeID)
	if err != nil {
		if hasReason(err, REASON_ATTEMPT_DOES_NOT_EXIST) {
			logger.Warn("Confirmation for an unknown signup attempt", slog.String("error", err.Error()))
			return endSpan(span, failed(CAPTURE_FAILED, chargeID, err))
		}
		logger.Error("Failed to load signup attempt", slog.String("error", err.Error()))
		return endSpan(span, retryLater(chargeID, err))
	}
	if attempt.State.IsTerminal() {
		return endSpan(span, outcomeFromAttempt(attempt))
	}

	logger = logger.With(slog.String("email", attempt.Applicant.Email), slog.String("method", string(attempt.Applicant.PaymentMethod)))

	loc, found, err := w.ledger.FindRowByEmail(ctx, attempt.Applicant.Email)
	if err != nil {
		// The provider stays the source of truth for the payment. The ledger is
		// looked up again before it is written.
		logger.Warn("Failed to check ledger before capture", slog.String("error", err.Error()))
	} else if found && loc.IsPaid() {
		logger.Info("Applicant is already a paid member, skipping capture")
		w.recordPaid(ctx, logger, attempt)
		return endSpan(span, alreadyPaid(chargeID))
	}

	resumed := attempt.State == CAPTURING
	if !resumed {
		attempt = w.advance(attempt, CAPTURING)
		if err := w.attempts.UpdateAttempt(ctx, attempt); err != nil {
			return endSpan(span, w.afterStoreFailure(ctx, logger, chargeID, err))
		}
	}

	provider, err := w.providers.For(attempt.Applicant.PaymentMethod)
	if err != nil {
		logger.Error("No provider for payment method", slog.String("error", err.Error()))
		return endSpan(span, w.fail(ctx, logger, attempt, CAPTURE_FAILED, err))
	}

	result, err := w.collect(ctx, provider, attempt, resumed)
	attempt.ProviderStatus = result.Status
	if err != nil {
		logger.Error("Failed to capture charge", slog.String("error", err.Error()))
		return endSpan(span, w.fail(ctx, logger, attempt, CAPTURE_FAILED, err))
	}
	if !result.Paid {
		logger.Warn("Charge is not paid", slog.String("status", result.Status))
		return endSpan(span, w.fail(ctx, logger, attempt, CAPTURE_FAILED, fmt.Errorf("provider reported status %q", result.Status)))
	}

	attempt.CaptureID = result.CaptureID
	return endSpan(span, w.markPaid(ctx, logger, attempt))
}

// Cancel records that the payer abandoned the provider's UI. Only attempts that
// have not reached CAPTURING are failed, so nothing was captured and nothing is
// refunded. A capture in flight is left to finish.
func (w *Workflow) Cancel(ctx context.Context, chargeID string) Outcome {
	ctx, span := w.tracer.Start(ctx, "signup.Cancel", trace.WithAttributes(attribute.String("charge.id", chargeID)))
	defer span.End()

	logger := w.logger.With(slog.String("chargeId", chargeID))

	attempt, err := w.attempts.GetAttempt(ctx, chargeID)
	if err != nil {
		if hasReason(err, REASON_ATTEMPT_DOES_NOT_EXIST) {
			logger.Warn("Cancelled an unknown signup attempt", slog.String("error", err.Error()))
			return endSpan(span, failed(USER_CANCELLED, chargeID, err))
		}
		logger.Error("Failed to load signup attempt", slog.String("error", err.Error()))
		return endSpan(span, retryLater(chargeID, err))
	}
	if attempt.State != INIT && attempt.State != CHARGE_CREATED {
		return endSpan(span, outcomeFromAttempt(attempt))
	}

	logger.Info("Payer cancelled payment")

	return endSpan(span, w.fail(ctx, logger, attempt, USER_CANCELLED, nil))
}

// Verify asks the attempt's provider for the charge status without changing anything.
func (w *Workflow) Verify(ctx context.Context, chargeID string) (payments.Verification, error) {
	ctx, span := w.tracer.Start(ctx, "signup.Verify", trace.WithAttributes(attribute.String("charge.id", chargeID)))
	defer span.End()

	attempt, err := w.attempts.GetAttempt(ctx, chargeID)
	if err != nil {
		span.RecordError(err)
		return payments.Verification{}, err
	}

	provider, err := w.providers.For(attempt.Applicant.PaymentMethod)
	if err != nil {
		span.RecordError(err)
		return payments.Verification{}, err
	}

	return provider.VerifyCharge(ctx, payments.ChargeHandle(chargeID))
}

// collect turns an authorized charge into a paid one. Wallet orders are captured
// once; a confirmation that finds the attempt already CAPTURING only verifies so
// a retry can never capture twice. Card intents are captured by the client's
// confirmation and are only verified here.
func (w *Workflow) collect(ctx context.Context, provider payments.Provider, attempt Attempt, resumed bool) (payments.Capture, error) {
	handle := payments.ChargeHandle(attempt.ChargeID)

	if attempt.Applicant.PaymentMethod == members.WALLET && !resumed {
		return provider.CaptureCharge(ctx, handle)
	}

	v, err := provider.VerifyCharge(ctx, handle)
	if err != nil {
		return payments.Capture{}, err
	}

	return payments.Capture{
		Handle: handle,
		Status: v.Status,
		Paid:   v.Paid,
	}, nil
}

// markPaid writes the ledger after a verified payment. A ledger failure never
// undoes the payment: the outcome stays PAID and carries a warning instead.
func (w *Workflow) markPaid(ctx context.Context, logger *slog.Logger, attempt Attempt) Outcome {
	outcome := Outcome{
		State:          PAID,
		ChargeID:       attempt.ChargeID,
		CaptureID:      attempt.CaptureID,
		ProviderStatus: attempt.ProviderStatus,
	}

	if err := w.writeLedger(ctx, logger, attempt); err != nil {
		logger.Error("Payment captured but ledger write failed, needs manual reconciliation", slog.String("error", err.Error()))
		outcome.Warnings = append(outcome.Warnings, LEDGER_WRITE_FAILED)
		outcome.Err = err
	}

	w.recordPaid(ctx, logger, attempt)

	if w.notifier != nil {
		if err := w.notifier.NotifyPaid(ctx, attempt.Applicant, attempt.Amount); err != nil {
			// the member did pay, so this is not reported as a failure
			logger.Error("Failed to send membership confirmation", slog.String("error", err.Error()))
		}
	}

	logger.Info("Membership paid", slog.String("captureId", attempt.CaptureID))

	return outcome
}

// writeLedger records the payment against the first row for the email, which is
// the one every lookup sees. Without a successful lookup nothing is written, since
// a row appended behind an unseen PENDING row would never be read.
func (w *Workflow) writeLedger(ctx context.Context, logger *slog.Logger, attempt Attempt) error {
	loc, found, err := w.ledger.FindRowByEmail(ctx, attempt.Applicant.Email)
	if err != nil {
		return err
	}

	paidAt := w.now()
	switch {
	case found && loc.IsPaid():
		logger.Warn("Ledger already has a paid row for this email", slog.Int("existingRow", loc.SheetRow()))
		return nil
	case found:
		return w.ledger.UpdatePaymentState(ctx, attempt.Applicant.Email, members.PAID, paidAt)
	default:
		row := members.NewLedgerRow(attempt.SubmittedAt, attempt.Applicant, attempt.ChargeID, members.PAID, &paidAt, attempt.Amount)
		return w.ledger.AppendApplicant(ctx, row)
	}
}

// recordPaid saves the attempt as PAID. The provider has already taken the
// money, so PAID replaces whatever a concurrent writer stored in the meantime.
func (w *Workflow) recordPaid(ctx context.Context, logger *slog.Logger, attempt Attempt) {
	paid := w.advance(attempt, PAID)
	err := w.attempts.UpdateAttempt(ctx, paid)

	for i := 0; i < maxPaidRetries && hasReason(err, REASON_ATTEMPT_VERSION_CONFLICT); i++ {
		current, getErr := w.attempts.GetAttempt(ctx, attempt.ChargeID)
		if getErr != nil {
			err = getErr
			break
		}
		if current.State == PAID {
			return
		}

		logger.Warn("Signup attempt changed while it was being paid", slog.String("storedState", string(current.State)))
		paid = w.advance(current, PAID)
		paid.FailureReason = ""
		paid.CaptureID = attempt.CaptureID
		paid.ProviderStatus = attempt.ProviderStatus
		err = w.attempts.UpdateAttempt(ctx, paid)
	}

	if err != nil {
		logger.Error("Failed to record attempt as paid", slog.String("error", err.Error()))
	}
}

func (w *Workflow) fail(ctx context.Context, logger *slog.Logger, attempt Attempt, reason FailureReason, cause error) Outcome {
	attempt = w.advance(attempt, FAILED)
	attempt.FailureReason = reason

	if err := w.attempts.UpdateAttempt(ctx, attempt); err != nil {
		return w.afterStoreFailure(ctx, logger, attempt.ChargeID, err)
	}

	outcome := outcomeFromAttempt(attempt)
	outcome.Err = cause
	return outcome
}

// afterStoreFailure reports what is known after an attempt could not be saved.
// A version conflict means another request moved the attempt on, so its stored
// state is reported instead. Any other store failure asks the caller to retry.
func (w *Workflow) afterStoreFailure(ctx context.Context, logger *slog.Logger, chargeID string, err error) Outcome {
	if hasReason(err, REASON_ATTEMPT_VERSION_CONFLICT) {
		logger.Warn("Signup attempt changed concurrently", slog.String("error", err.Error()))

		current, getErr := w.attempts.GetAttempt(ctx, chargeID)
		if getErr == nil {
			return outcomeFromAttempt(current)
		}
		return retryLater(chargeID, err)
	}

	logger.Error("Failed to save signup attempt", slog.String("error", err.Error()))
	return retryLater(chargeID, err)
}

func (w *Workflow) advance(attempt Attempt, state State) Attempt {
	attempt.State = state
	attempt.Version++
	attempt.UpdatedAt = w.now()
	return attempt
}

func outcomeFromAttempt(attempt Attempt) Outcome {
	return Outcome{
		State:          attempt.State,
		Reason:         attempt.FailureReason,
		ChargeID:       attempt.ChargeID,
		CaptureID:      attempt.CaptureID,
		ProviderStatus: attempt.ProviderStatus,
	}
}

func failed(reason FailureReason, chargeID string, cause error) Outcome {
	return Outcome{
		State:    FAILED,
		Reason:   reason,
		ChargeID: chargeID,
		Err:      cause,
	}
}

// retryLater reports an attempt whose state could not be read or saved. Nothing
// is known to have failed, so the caller is told to try again.
func retryLater(chargeID string, cause error) Outcome {
	return Outcome{
		State:    CAPTURING,
		ChargeID: chargeID,
		Err:      cause,
	}
}

func alreadyPaid(chargeID string) Outcome {
	return Outcome{
		State:       PAID,
		ChargeID:    chargeID,
		AlreadyPaid: true,
	}
}

func endSpan(span trace.Span, outcome Outcome) Outcome {
	span.SetAttributes(attribute.String("signup.state", string(outcome.State)))
	if outcome.Reason != "" {
		span.SetAttributes(attribute.String("signup.reason", string(outcome.Reason)))
	}
	if outcome.Err != nil {
		span.RecordError(outcome.Err)
	}
	if outcome.State == FAILED {
		span.SetStatus(codes.Error, string(outcome.Reason))
	}
	return outcome
}
