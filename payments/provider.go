package payments

import (
	"context"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
)

type ChargeHandle string

type ChargeRequest struct {
	Amount      *money.Money
	Description string
	Applicant   members.ApplicantRecord
}

func NewChargeRequest(amount *money.Money, applicant members.ApplicantRecord) (ChargeRequest, error) {
	if amount == nil || !amount.IsPositive() {
		return ChargeRequest{}, NewRequestError("Charge amount must be positive", nil)
	}

	return ChargeRequest{
		Amount:      amount,
		Description: applicant.ChargeDescription(),
		Applicant:   applicant,
	}, nil
}

type CreatedCharge struct {
	Handle ChargeHandle
	// ClientSecret is what the client needs to confirm a card charge. Empty for wallet orders.
	ClientSecret string
}

type Capture struct {
	Handle    ChargeHandle
	Status    string
	Paid      bool
	CaptureID string
	Amount    *money.Money
}

type Verification struct {
	Status string
	Paid   bool
}

type Provider interface {
	Method() members.PaymentMethod
	CreateCharge(ctx context.Context, req ChargeRequest) (CreatedCharge, error)
	CaptureCharge(ctx context.Context, handle ChargeHandle) (Capture, error)
	VerifyCharge(ctx context.Context, handle ChargeHandle) (Verification, error)
}

// Providers looks up the configured provider for a payment method.
type Providers map[members.PaymentMethod]Provider

func NewProviders(providers ...Provider) Providers {
	p := Providers{}
	for _, v := range providers {
		p[v.Method()] = v
	}
	return p
}

func (p Providers) For(method members.PaymentMethod) (Provider, error) {
	provider, ok := p[method]
	if !ok {
		return nil, NewConfigError(fmt.Sprintf("No payment provider configured for %s", method))
	}
	return provider, nil
}
