package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ShunTr-dev/socios-ajerga/amounts"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/stripe/stripe-go/v85"
)

// paymentIntents is the part of the stripe client this adapter uses.
type paymentIntents interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
	Retrieve(ctx context.Context, id string, params *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error)
	Capture(ctx context.Context, id string, params *stripe.PaymentIntentCaptureParams) (*stripe.PaymentIntent, error)
}

var _ Provider = &CardProvider{}

// CardProvider charges cards through Stripe PaymentIntents. Amounts are sent in
// integral minor units.
type CardProvider struct {
	intents paymentIntents
}

func NewCardProvider(secretKey string) (*CardProvider, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, NewConfigError("Stripe secret key is not configured")
	}

	sc := stripe.NewClient(secretKey)

	return newCardProvider(sc.V1PaymentIntents), nil
}

func newCardProvider(intents paymentIntents) *CardProvider {
	return &CardProvider{intents: intents}
}

func (p *CardProvider) Method() members.PaymentMethod {
	return members.CARD
}

func (p *CardProvider) CreateCharge(ctx context.Context, req ChargeRequest) (CreatedCharge, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return CreatedCharge{}, NewRequestError("Charge amount must be positive", nil)
	}

	intent, err := p.intents.Create(ctx, &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(req.Amount.Amount()),
		Currency:    stripe.String(strings.ToLower(req.Amount.Currency().Code)),
		Description: stripe.String(req.Description),
		Metadata: map[string]string{
			"email":    req.Applicant.Email,
			"name":     req.Applicant.FullName,
			"document": req.Applicant.Document,
		},
	})
	if err != nil {
		return CreatedCharge{}, translateStripeError("Failed to create payment intent", err)
	}

	return CreatedCharge{
		Handle:       ChargeHandle(intent.ID),
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (p *CardProvider) CaptureCharge(ctx context.Context, handle ChargeHandle) (Capture, error) {
	intent, err := p.intents.Capture(ctx, string(handle), &stripe.PaymentIntentCaptureParams{})
	if err != nil {
		return Capture{}, translateStripeError(fmt.Sprintf("Failed to capture payment intent %q", handle), err)
	}

	capture := Capture{
		Handle: ChargeHandle(intent.ID),
		Status: string(intent.Status),
		Paid:   intent.Status == stripe.PaymentIntentStatusSucceeded,
	}
	if intent.LatestCharge != nil {
		capture.CaptureID = intent.LatestCharge.ID
	}
	if m, err := amounts.FromMinor(intent.AmountReceived, string(intent.Currency)); err == nil {
		capture.Amount = m
	}

	return capture, nil
}

func (p *CardProvider) VerifyCharge(ctx context.Context, handle ChargeHandle) (Verification, error) {
	intent, err := p.intents.Retrieve(ctx, string(handle), &stripe.PaymentIntentRetrieveParams{})
	if err != nil {
		return Verification{}, translateStripeError(fmt.Sprintf("Failed to retrieve payment intent %q", handle), err)
	}

	return Verification{
		Status: string(intent.Status),
		Paid:   intent.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

func translateStripeError(message string, err error) *Error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
			return NewConfigError(fmt.Sprintf("%s: stripe rejected the API key", message))
		case stripeErr.Type == stripe.ErrorTypeInvalidRequest, stripeErr.Type == stripe.ErrorTypeCard, stripeErr.Type == stripe.ErrorTypeIdempotency:
			// unknown, already captured and canceled intents all come back as invalid requests
			return NewRequestError(message, err)
		}
	}

	return NewUnavailableError(message, err)
}
