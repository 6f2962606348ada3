package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/plutov/paypal/v4"
)

const (
	walletStatusCompleted = "COMPLETED"
)

// orders is the part of the paypal client this adapter uses.
type orders interface {
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, paymentSource *paypal.PaymentSource, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

var _ orders = (*paypal.Client)(nil)

type WalletMode string

const (
	WALLET_SANDBOX WalletMode = "sandbox"
	WALLET_LIVE    WalletMode = "production"
)

type WalletConfig struct {
	ClientID     string
	ClientSecret string
	Mode         WalletMode
	BrandName    string
}

var _ Provider = &WalletProvider{}

// WalletProvider charges through PayPal orders. The order is created here,
// approved by the payer in PayPal's own UI and captured afterwards.
type WalletProvider struct {
	orders    orders
	brandName string
}

func NewWalletProvider(cfg WalletConfig) (*WalletProvider, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, NewConfigError("PayPal client ID and secret must both be configured")
	}

	apiBase := paypal.APIBaseSandBox
	if cfg.Mode == WALLET_LIVE {
		apiBase = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(cfg.ClientID, cfg.ClientSecret, apiBase)
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("Failed to create PayPal client: %s", err))
	}

	return newWalletProvider(client, cfg.BrandName), nil
}

func newWalletProvider(orders orders, brandName string) *WalletProvider {
	return &WalletProvider{
		orders:    orders,
		brandName: brandName,
	}
}

func (p *WalletProvider) Method() members.PaymentMethod {
	return members.WALLET
}

func (p *WalletProvider) CreateCharge(ctx context.Context, req ChargeRequest) (CreatedCharge, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return CreatedCharge{}, NewRequestError("Charge amount must be positive", nil)
	}

	order, err := p.orders.CreateOrder(ctx, paypal.OrderIntentCapture, []paypal.PurchaseUnitRequest{
		{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: req.Amount.Currency().Code,
				Value:    amounts.FormatMajor(req.Amount),
			},
			Description: req.Description,
			CustomID:    req.Applicant.Email,
		},
	}, nil, &paypal.ApplicationContext{
		BrandName: p.brandName,
	})
	if err != nil {
		return CreatedCharge{}, translatePaypalError("Failed to create PayPal order", err)
	}

	return CreatedCharge{Handle: ChargeHandle(order.ID)}, nil
}

func (p *WalletProvider) CaptureCharge(ctx context.Context, handle ChargeHandle) (Capture, error) {
	resp, err := p.orders.CaptureOrder(ctx, string(handle), paypal.CaptureOrderRequest{})
	if err != nil {
		return Capture{}, translatePaypalError(fmt.Sprintf("Failed to capture PayPal order %q", handle), err)
	}

	capture := Capture{
		Handle: ChargeHandle(resp.ID),
		Status: resp.Status,
		Paid:   resp.Status == walletStatusCompleted,
	}

	if len(resp.PurchaseUnits) > 0 && resp.PurchaseUnits[0].Payments != nil && len(resp.PurchaseUnits[0].Payments.Captures) > 0 {
		captured := resp.PurchaseUnits[0].Payments.Captures[0]
		capture.CaptureID = captured.ID
		capture.Amount = capturedAmount(captured.Amount)
	}

	return capture, nil
}

func (p *WalletProvider) VerifyCharge(ctx context.Context, handle ChargeHandle) (Verification, error) {
	order, err := p.orders.GetOrder(ctx, string(handle))
	if err != nil {
		return Verification{}, translatePaypalError(fmt.Sprintf("Failed to get PayPal order %q", handle), err)
	}

	return Verification{
		Status: order.Status,
		Paid:   order.Status == walletStatusCompleted,
	}, nil
}

func capturedAmount(amount *paypal.PurchaseUnitAmount) *money.Money {
	if amount == nil {
		return nil
	}

	m, err := amounts.Parse(amount.Value, amount.Currency)
	if err != nil {
		return nil
	}
	return m
}

func translatePaypalError(message string, err error) *Error {
	var paypalErr *paypal.ErrorResponse
	if errors.As(err, &paypalErr) && paypalErr.Response != nil {
		switch status := paypalErr.Response.StatusCode; {
		case status == http.StatusUnauthorized:
			return NewConfigError(fmt.Sprintf("%s: PayPal rejected the client credentials", message))
		case status >= 400 && status < 500:
			return NewRequestError(fmt.Sprintf("%s: %s", message, paypalErr.Name), err)
		}
	}

	return NewUnavailableError(message, err)
}
