package signup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/payments"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ payments.Provider = &fakeProvider{}

// fakeProvider mimics a provider whose charges start unpaid and only reach
// successStatus after the payer authorizes them.
type fakeProvider struct {
	method        members.PaymentMethod
	successStatus string

	createErr  error
	captureErr error
	verifyErr  error
	// BeforeCaptureFunc runs inside CaptureCharge so a test can act while the capture is in flight.
	BeforeCaptureFunc func()

	statuses map[payments.ChargeHandle]string
	creates  int
	captures int
	verifies int
}

func newFakeProvider(method members.PaymentMethod) *fakeProvider {
	success := "succeeded"
	if method == members.WALLET {
		success = "COMPLETED"
	}
	return &fakeProvider{
		method:        method,
		successStatus: success,
		statuses:      map[payments.ChargeHandle]string{},
	}
}

func (f *fakeProvider) Method() members.PaymentMethod {
	return f.method
}

func (f *fakeProvider) CreateCharge(ctx context.Context, req payments.ChargeRequest) (payments.CreatedCharge, error) {
	f.creates++
	if f.createErr != nil {
		return payments.CreatedCharge{}, f.createErr
	}

	handle := payments.ChargeHandle(fmt.Sprintf("%s-%d", f.method, f.creates))
	f.statuses[handle] = "CREATED"

	secret := ""
	if f.method == members.CARD {
		secret = string(handle) + "_secret"
	}
	return payments.CreatedCharge{Handle: handle, ClientSecret: secret}, nil
}

func (f *fakeProvider) CaptureCharge(ctx context.Context, handle payments.ChargeHandle) (payments.Capture, error) {
	f.captures++
	if f.BeforeCaptureFunc != nil {
		f.BeforeCaptureFunc()
	}
	if f.captureErr != nil {
		return payments.Capture{}, f.captureErr
	}

	status, ok := f.statuses[handle]
	if !ok || status != "APPROVED" {
		return payments.Capture{}, payments.NewRequestError(fmt.Sprintf("cannot capture %s in status %s", handle, status), nil)
	}

	f.statuses[handle] = f.successStatus
	return payments.Capture{
		Handle:    handle,
		Status:    f.successStatus,
		Paid:      true,
		CaptureID: "CAP-" + string(handle),
		Amount:    money.New(800, money.EUR),
	}, nil
}

func (f *fakeProvider) VerifyCharge(ctx context.Context, handle payments.ChargeHandle) (payments.Verification, error) {
	f.verifies++
	if f.verifyErr != nil {
		return payments.Verification{}, f.verifyErr
	}

	status, ok := f.statuses[handle]
	if !ok {
		return payments.Verification{}, payments.NewRequestError(fmt.Sprintf("unknown charge %s", handle), nil)
	}
	return payments.Verification{Status: status, Paid: status == f.successStatus}, nil
}

func (f *fakeProvider) set(handle string, status string) {
	f.statuses[payments.ChargeHandle(handle)] = status
}

func (f *fakeProvider) calls() int {
	return f.creates + f.captures + f.verifies
}

// countingLedger wraps a real ledger to count appends and inject failures.
type countingLedger struct {
	members.Ledger

	appends   int
	updates   int
	appendErr error
	findErr   error
	// findErrs fail the next lookups in order before findErr applies.
	findErrs []error
}

func (l *countingLedger) AppendApplicant(ctx context.Context, row members.LedgerRow) error {
	l.appends++
	if l.appendErr != nil {
		return l.appendErr
	}
	return l.Ledger.AppendApplicant(ctx, row)
}

func (l *countingLedger) FindRowByEmail(ctx context.Context, email string) (members.RowLocation, bool, error) {
	if len(l.findErrs) > 0 {
		err := l.findErrs[0]
		l.findErrs = l.findErrs[1:]
		return members.RowLocation{}, false, err
	}
	if l.findErr != nil {
		return members.RowLocation{}, false, l.findErr
	}
	return l.Ledger.FindRowByEmail(ctx, email)
}

func (l *countingLedger) UpdatePaymentState(ctx context.Context, email string, state members.PaymentState, paidAt time.Time) error {
	l.updates++
	return l.Ledger.UpdatePaymentState(ctx, email, state, paidAt)
}

var _ Repository = &memoryAttempts{}

type memoryAttempts struct {
	mu       sync.Mutex
	attempts map[string]Attempt

	createErr error
	getErr    error
	updateErr error
	// BeforeUpdateFunc runs ahead of every update so a test can race another writer.
	BeforeUpdateFunc func(m *memoryAttempts)
}

func (m *memoryAttempts) put(attempt Attempt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[attempt.ChargeID] = attempt
}

func newMemoryAttempts() *memoryAttempts {
	return &memoryAttempts{attempts: map[string]Attempt{}}
}

func (m *memoryAttempts) CreateAttempt(ctx context.Context, attempt Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.attempts[attempt.ChargeID]; ok {
		return NewAttemptAlreadyExistsError(attempt.ChargeID, nil)
	}
	m.attempts[attempt.ChargeID] = attempt
	return nil
}

func (m *memoryAttempts) GetAttempt(ctx context.Context, chargeID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return Attempt{}, m.getErr
	}
	attempt, ok := m.attempts[chargeID]
	if !ok {
		return Attempt{}, NewAttemptDoesNotExistError(chargeID, nil)
	}
	return attempt, nil
}

func (m *memoryAttempts) UpdateAttempt(ctx context.Context, attempt Attempt) error {
	if m.BeforeUpdateFunc != nil {
		hook := m.BeforeUpdateFunc
		m.BeforeUpdateFunc = nil
		hook(m)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return m.updateErr
	}
	stored, ok := m.attempts[attempt.ChargeID]
	if !ok || stored.Version != attempt.Version-1 {
		return NewAttemptVersionConflictError(attempt.ChargeID, nil)
	}
	m.attempts[attempt.ChargeID] = attempt
	return nil
}

type recordingNotifier struct {
	notified []string
	err      error
}

func (n *recordingNotifier) NotifyPaid(ctx context.Context, applicant members.ApplicantRecord, amount *money.Money) error {
	n.notified = append(n.notified, applicant.Email)
	return n.err
}
