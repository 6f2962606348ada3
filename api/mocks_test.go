package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
	"github.com/ShunTr-dev/socios-ajerga/signup"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ Workflow = &mockWorkflow{}

type mockWorkflow struct {
	StartFunc   func(ctx context.Context, sub signup.Submission) signup.Outcome
	ConfirmFunc func(ctx context.Context, chargeID string) signup.Outcome
	CancelFunc  func(ctx context.Context, chargeID string) signup.Outcome
	VerifyFunc  func(ctx context.Context, chargeID string) (payments.Verification, error)
}

func (m *mockWorkflow) Start(ctx context.Context, sub signup.Submission) signup.Outcome {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, sub)
	}
	return signup.Outcome{}
}

func (m *mockWorkflow) Confirm(ctx context.Context, chargeID string) signup.Outcome {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, chargeID)
	}
	return signup.Outcome{}
}

func (m *mockWorkflow) Cancel(ctx context.Context, chargeID string) signup.Outcome {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, chargeID)
	}
	return signup.Outcome{}
}

func (m *mockWorkflow) Verify(ctx context.Context, chargeID string) (payments.Verification, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, chargeID)
	}
	return payments.Verification{}, nil
}

var _ members.Ledger = &mockLedger{}

type mockLedger struct {
	AppendApplicantFunc    func(ctx context.Context, row members.LedgerRow) error
	FindRowByEmailFunc     func(ctx context.Context, email string) (members.RowLocation, bool, error)
	UpdatePaymentStateFunc func(ctx context.Context, email string, state members.PaymentState, paidAt time.Time) error
	ListApplicantsFunc     func(ctx context.Context) ([]members.Record, error)
}

func (m *mockLedger) AppendApplicant(ctx context.Context, row members.LedgerRow) error {
	if m.AppendApplicantFunc != nil {
		return m.AppendApplicantFunc(ctx, row)
	}
	return nil
}

func (m *mockLedger) FindRowByEmail(ctx context.Context, email string) (members.RowLocation, bool, error) {
	if m.FindRowByEmailFunc != nil {
		return m.FindRowByEmailFunc(ctx, email)
	}
	return members.RowLocation{}, false, nil
}

func (m *mockLedger) UpdatePaymentState(ctx context.Context, email string, state members.PaymentState, paidAt time.Time) error {
	if m.UpdatePaymentStateFunc != nil {
		return m.UpdatePaymentStateFunc(ctx, email, state, paidAt)
	}
	return nil
}

func (m *mockLedger) ListApplicants(ctx context.Context) ([]members.Record, error) {
	if m.ListApplicantsFunc != nil {
		return m.ListApplicantsFunc(ctx)
	}
	return nil, nil
}

var _ signup.AttemptLister = &mockAttemptLister{}

type mockAttemptLister struct {
	ListAttemptsByStateFunc func(ctx context.Context, state signup.State, limit int32, cursor *string) (signup.ListAttemptsResponse, error)
}

func (m *mockAttemptLister) ListAttemptsByState(ctx context.Context, state signup.State, limit int32, cursor *string) (signup.ListAttemptsResponse, error) {
	if m.ListAttemptsByStateFunc != nil {
		return m.ListAttemptsByStateFunc(ctx, state, limit, cursor)
	}
	return signup.ListAttemptsResponse{}, nil
}
