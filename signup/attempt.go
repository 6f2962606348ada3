package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
)

type State string

const (
	INIT           State = "INIT"
	CHARGE_CREATED State = "CHARGE_CREATED"
	CAPTURING      State = "CAPTURING"
	PAID           State = "PAID"
	FAILED         State = "FAILED"
)

func (s State) IsTerminal() bool {
	return s == PAID || s == FAILED
}

type FailureReason string

const (
	CHARGE_CREATION_FAILED FailureReason = "charge-creation-failed"
	CAPTURE_FAILED         FailureReason = "capture-failed"
	USER_CANCELLED         FailureReason = "user-cancelled"
)

type Warning string

const (
	LEDGER_WRITE_FAILED Warning = "ledger-write-failed"
)

const attemptTTL = 24 * time.Hour

// Attempt is the server side record of one applicant's pending submission and
// where its payment stands. It is keyed by the provider's charge id.
type Attempt struct {
	ChargeID       string
	Version        int
	Applicant      members.ApplicantRecord
	Amount         *money.Money
	State          State
	FailureReason  FailureReason
	ProviderStatus string
	CaptureID      string
	SubmittedAt    time.Time
	UpdatedAt      time.Time
	ExpiresAt      time.Time
}

// Repository persists attempts. UpdateAttempt expects attempt.Version to already
// be bumped and fails with ATTEMPT_VERSION_CONFLICT unless the stored version is
// exactly one behind.
type Repository interface {
	CreateAttempt(ctx context.Context, attempt Attempt) error
	GetAttempt(ctx context.Context, chargeID string) (Attempt, error)
	UpdateAttempt(ctx context.Context, attempt Attempt) error
}

type ListAttemptsResponse struct {
	Data        []Attempt
	Cursor      *string
	HasNextPage bool
}

// AttemptLister pages through attempts in one state, most recently updated
// first. Operators use it to find charges left in CAPTURING.
type AttemptLister interface {
	ListAttemptsByState(ctx context.Context, state State, limit int32, cursor *string) (ListAttemptsResponse, error)
}

func ParseState(s string) (State, error) {
	switch State(s) {
	case INIT, CHARGE_CREATED, CAPTURING, PAID, FAILED:
		return State(s), nil
	default:
		return "", NewInvalidStateError(fmt.Sprintf("Unknown attempt state: %q", s))
	}
}
