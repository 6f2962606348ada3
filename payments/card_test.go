package payments

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v85"
)

type fakePaymentIntents struct {
	intents   map[string]*stripe.PaymentIntent
	created   []*stripe.PaymentIntentCreateParams
	createErr error
}

func newFakePaymentIntents() *fakePaymentIntents {
	return &fakePaymentIntents{intents: map[string]*stripe.PaymentIntent{}}
}

func (f *fakePaymentIntents) Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)

	id := fmt.Sprintf("pi_%d", len(f.created))
	intent := &stripe.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       *params.Amount,
		Currency:     stripe.Currency(*params.Currency),
		Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
	}
	f.intents[id] = intent
	return intent, nil
}

func (f *fakePaymentIntents) Retrieve(ctx context.Context, id string, params *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error) {
	intent, ok := f.intents[id]
	if !ok {
		return nil, &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusNotFound, Code: stripe.ErrorCodeResourceMissing}
	}
	return intent, nil
}

func (f *fakePaymentIntents) Capture(ctx context.Context, id string, params *stripe.PaymentIntentCaptureParams) (*stripe.PaymentIntent, error) {
	intent, ok := f.intents[id]
	if !ok || intent.Status != stripe.PaymentIntentStatusRequiresCapture {
		return nil, &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusBadRequest}
	}
	intent.Status = stripe.PaymentIntentStatusSucceeded
	intent.AmountReceived = intent.Amount
	intent.LatestCharge = &stripe.Charge{ID: "ch_" + id}
	return intent, nil
}

// confirm stands in for the client-side card confirmation.
func (f *fakePaymentIntents) confirm(id string, status stripe.PaymentIntentStatus) {
	f.intents[id].Status = status
}

func testApplicant(t *testing.T, method string) members.ApplicantRecord {
	t.Helper()

	a, err := members.NewApplicantRecord(members.ApplicantParams{
		Email:         "ana@example.com",
		FullName:      "Ana Garcia",
		Document:      "12345678Z",
		PaymentMethod: method,
	})
	require.NoError(t, err)
	return a
}

func TestNewCardProvider(t *testing.T) {
	_, err := NewCardProvider("")

	var paymentsErr *Error
	require.ErrorAs(t, err, &paymentsErr)
	assert.Equal(t, REASON_PROVIDER_CONFIG, paymentsErr.Reason)
}

func TestCardProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("create sends minor units and metadata", func(t *testing.T) {
		intents := newFakePaymentIntents()
		p := newCardProvider(intents)

		req, err := NewChargeRequest(money.New(800, money.EUR), testApplicant(t, "CARD"))
		require.NoError(t, err)

		created, err := p.CreateCharge(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, ChargeHandle("pi_1"), created.Handle)
		assert.Equal(t, "pi_1_secret", created.ClientSecret)

		require.Len(t, intents.created, 1)
		params := intents.created[0]
		assert.Equal(t, int64(800), *params.Amount)
		assert.Equal(t, "eur", *params.Currency)
		assert.Equal(t, "Membership signup - Ana Garcia", *params.Description)
		assert.Equal(t, "ana@example.com", params.Metadata["email"])
	})

	t.Run("verify without confirmation is not paid", func(t *testing.T) {
		for _, amount := range []*money.Money{money.New(800, money.EUR), money.New(1, money.USD), money.New(500, money.JPY)} {
			p := newCardProvider(newFakePaymentIntents())
			req, err := NewChargeRequest(amount, testApplicant(t, "CARD"))
			require.NoError(t, err)

			created, err := p.CreateCharge(ctx, req)
			require.NoError(t, err)

			v, err := p.VerifyCharge(ctx, created.Handle)
			require.NoError(t, err)
			assert.False(t, v.Paid)
			assert.Equal(t, "requires_payment_method", v.Status)
		}
	})

	t.Run("verify after confirmation is paid", func(t *testing.T) {
		intents := newFakePaymentIntents()
		p := newCardProvider(intents)
		req, err := NewChargeRequest(money.New(800, money.EUR), testApplicant(t, "CARD"))
		require.NoError(t, err)

		created, err := p.CreateCharge(ctx, req)
		require.NoError(t, err)
		intents.confirm(string(created.Handle), stripe.PaymentIntentStatusSucceeded)

		v, err := p.VerifyCharge(ctx, created.Handle)
		require.NoError(t, err)
		assert.True(t, v.Paid)
	})

	t.Run("capture of manual capture intent", func(t *testing.T) {
		intents := newFakePaymentIntents()
		p := newCardProvider(intents)
		req, err := NewChargeRequest(money.New(800, money.EUR), testApplicant(t, "CARD"))
		require.NoError(t, err)

		created, err := p.CreateCharge(ctx, req)
		require.NoError(t, err)
		intents.confirm(string(created.Handle), stripe.PaymentIntentStatusRequiresCapture)

		capture, err := p.CaptureCharge(ctx, created.Handle)
		require.NoError(t, err)
		assert.Equal(t, "succeeded", capture.Status)
		assert.True(t, capture.Paid)
		assert.Equal(t, "ch_pi_1", capture.CaptureID)
		require.NotNil(t, capture.Amount)
		assert.Equal(t, int64(800), capture.Amount.Amount())

		_, err = p.CaptureCharge(ctx, created.Handle)
		var paymentsErr *Error
		require.ErrorAs(t, err, &paymentsErr)
		assert.Equal(t, REASON_PROVIDER_REQUEST, paymentsErr.Reason)
	})

	t.Run("unknown handle is a request error", func(t *testing.T) {
		p := newCardProvider(newFakePaymentIntents())

		_, err := p.VerifyCharge(ctx, "pi_missing")

		var paymentsErr *Error
		require.ErrorAs(t, err, &paymentsErr)
		assert.Equal(t, REASON_PROVIDER_REQUEST, paymentsErr.Reason)
	})

	t.Run("stripe outage is unavailable", func(t *testing.T) {
		intents := newFakePaymentIntents()
		intents.createErr = &stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: http.StatusServiceUnavailable}
		p := newCardProvider(intents)
		req, err := NewChargeRequest(money.New(800, money.EUR), testApplicant(t, "CARD"))
		require.NoError(t, err)

		_, err = p.CreateCharge(ctx, req)

		var paymentsErr *Error
		require.ErrorAs(t, err, &paymentsErr)
		assert.Equal(t, REASON_PROVIDER_UNAVAILABLE, paymentsErr.Reason)
	})
}

func TestNewChargeRequest(t *testing.T) {
	_, err := NewChargeRequest(money.New(0, money.EUR), testApplicant(t, "CARD"))

	var paymentsErr *Error
	require.ErrorAs(t, err, &paymentsErr)
	assert.Equal(t, REASON_PROVIDER_REQUEST, paymentsErr.Reason)
}

func TestProviders(t *testing.T) {
	card := newCardProvider(newFakePaymentIntents())
	providers := NewProviders(card)

	p, err := providers.For(members.CARD)
	require.NoError(t, err)
	assert.Same(t, card, p)

	_, err = providers.For(members.WALLET)
	var paymentsErr *Error
	require.ErrorAs(t, err, &paymentsErr)
	assert.Equal(t, REASON_PROVIDER_CONFIG, paymentsErr.Reason)
}
