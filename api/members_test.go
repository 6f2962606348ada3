package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMembers(t *testing.T) {
	t.Run("lists ledger records", func(t *testing.T) {
		ledger := &mockLedger{
			ListApplicantsFunc: func(ctx context.Context) ([]members.Record, error) {
				return []members.Record{{"Email": "ana@example.com", "State": "PAID"}}, nil
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodGet, "/v1/members", "")

		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[MemberList](t, rec)
		require.Len(t, list.Data, 1)
		assert.Equal(t, "PAID", list.Data[0]["State"])
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		ledger := &mockLedger{
			ListApplicantsFunc: func(ctx context.Context) ([]members.Record, error) {
				return nil, members.NewLedgerUnavailableError("down", nil)
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodGet, "/v1/members", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, LedgerUnavailable, decode[Error](t, rec).Code)
	})
}

func TestPostMembers(t *testing.T) {
	t.Run("defaults to a pending row", func(t *testing.T) {
		var got members.LedgerRow
		ledger := &mockLedger{
			AppendApplicantFunc: func(ctx context.Context, row members.LedgerRow) error {
				got = row
				return nil
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPost, "/v1/members", `{
			"applicant": {"email": "Ana@Example.com", "fullName": "Ana", "document": "1Z", "paymentMethod": "CARD"},
			"chargeId": "pi_1",
			"amount": "8.00"
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "ana@example.com", got.Applicant.Email)
		assert.Equal(t, members.PENDING, got.State)
		assert.Nil(t, got.PaidAt)
		assert.Equal(t, "pi_1", got.ChargeID)
		assert.Equal(t, int64(800), got.Amount.Amount())
	})

	t.Run("paid row gets a paid timestamp", func(t *testing.T) {
		var got members.LedgerRow
		ledger := &mockLedger{
			AppendApplicantFunc: func(ctx context.Context, row members.LedgerRow) error {
				got = row
				return nil
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPost, "/v1/members", `{
			"applicant": {"email": "ana@example.com", "fullName": "Ana", "document": "1Z", "paymentMethod": "WALLET"},
			"state": "PAID"
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, members.PAID, got.State)
		require.NotNil(t, got.PaidAt)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		h := newTestHandler(t, &mockWorkflow{}, &mockLedger{}, &mockAttemptLister{})

		rec := do(t, h, http.MethodPost, "/v1/members", `{"applicant": {"email": "ana@example.com", "document": "1Z", "paymentMethod": "CARD"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		ledger := &mockLedger{
			AppendApplicantFunc: func(ctx context.Context, row members.LedgerRow) error {
				t.Fatal("ledger must not be written")
				return nil
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPost, "/v1/members", `{
			"applicant": {"email": "ana@example.com", "fullName": "Ana", "document": "1Z", "paymentMethod": "CARD"},
			"estado": "PAID"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, InputValidationError, decode[Error](t, rec).Code)
	})

	t.Run("ledger failure is surfaced", func(t *testing.T) {
		ledger := &mockLedger{
			AppendApplicantFunc: func(ctx context.Context, row members.LedgerRow) error {
				return members.NewLedgerUnavailableError("down", nil)
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPost, "/v1/members", `{"applicant": {"email": "ana@example.com", "fullName": "Ana", "document": "1Z", "paymentMethod": "CARD"}}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPutMembersEmailPaymentState(t *testing.T) {
	t.Run("patches the member", func(t *testing.T) {
		paidAt := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)
		var gotEmail string
		var gotState members.PaymentState
		var gotPaidAt time.Time
		ledger := &mockLedger{
			UpdatePaymentStateFunc: func(ctx context.Context, email string, state members.PaymentState, at time.Time) error {
				gotEmail, gotState, gotPaidAt = email, state, at
				return nil
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPut, "/v1/members/Ana@Example.com/payment-state", `{"state": "PAID", "paidAt": "2026-03-02T10:30:00Z"}`)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "ana@example.com", gotEmail)
		assert.Equal(t, members.PAID, gotState)
		assert.True(t, paidAt.Equal(gotPaidAt))
	})

	t.Run("unknown member", func(t *testing.T) {
		ledger := &mockLedger{
			UpdatePaymentStateFunc: func(ctx context.Context, email string, state members.PaymentState, at time.Time) error {
				return members.NewMemberNotFoundError(email)
			},
		}
		h := newTestHandler(t, &mockWorkflow{}, ledger, &mockAttemptLister{})

		rec := do(t, h, http.MethodPut, "/v1/members/ghost@example.com/payment-state", `{"state": "FAILED"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, NotFound, decode[Error](t, rec).Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		h := newTestHandler(t, &mockWorkflow{}, &mockLedger{}, &mockAttemptLister{})

		rec := do(t, h, http.MethodPut, "/v1/members/ana@example.com/payment-state", `{"state": "PAID", "paid_at": "2026-03-02T10:30:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, InputValidationError, decode[Error](t, rec).Code)
	})

	t.Run("empty body", func(t *testing.T) {
		api := NewAPI(&mockWorkflow{}, &mockLedger{}, &mockAttemptLister{}, money.New(800, money.EUR), noopLogger, LOCAL, nil)

		resp, err := api.PutMembersEmailPaymentState(ctxWithLogger(context.Background(), noopLogger), PutMembersEmailPaymentStateRequestObject{
			Email: types.Email("ana@example.com"),
		})
		assert.NoError(t, err)

		switch r := resp.(type) {
		case PutMembersEmailPaymentState400JSONResponse:
			assert.Equal(t, InputValidationError, r.Code)
		default:
			t.Fatalf("unexpected response type: %T", resp)
		}
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		ledger := &mockLedger{
			UpdatePaymentStateFunc: func(ctx context.Context, email string, state members.PaymentState, at time.Time) error {
				return members.NewLedgerUnavailableError("down", nil)
			},
		}
		api := NewAPI(&mockWorkflow{}, ledger, &mockAttemptLister{}, money.New(800, money.EUR), noopLogger, LOCAL, nil)

		resp, err := api.PutMembersEmailPaymentState(ctxWithLogger(context.Background(), noopLogger), PutMembersEmailPaymentStateRequestObject{
			Email: types.Email("ana@example.com"),
			Body:  &PutMembersEmailPaymentStateJSONRequestBody{State: PaymentState("PAID")},
		})
		assert.NoError(t, err)

		switch r := resp.(type) {
		case PutMembersEmailPaymentState503JSONResponse:
			assert.Equal(t, LedgerUnavailable, r.Code)
		default:
			t.Fatalf("unexpected response type: %T", resp)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		h := newTestHandler(t, &mockWorkflow{}, &mockLedger{}, &mockAttemptLister{})

		rec := do(t, h, http.MethodPut, "/v1/members/ana@example.com/payment-state", `{"state": "Pendiente"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, InputValidationError, decode[Error](t, rec).Code)
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.3ms", formatDuration(2345*time.Microsecond))
}
