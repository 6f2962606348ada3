package members

import (
	"context"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/amounts"
)

type PaymentState string

const (
	PENDING PaymentState = "PENDING"
	PAID    PaymentState = "PAID"
	FAILED  PaymentState = "FAILED"
)

func ParsePaymentState(s string) (PaymentState, error) {
	switch PaymentState(s) {
	case PENDING, PAID, FAILED:
		return PaymentState(s), nil
	default:
		return "", NewMalformedRowError(fmt.Sprintf("Unknown payment state: %q", s), nil)
	}
}

// Column positions of a ledger row. The header row uses Header in the same order.
const (
	COL_DATE = iota
	COL_EMAIL
	COL_NAME
	COL_DOCUMENT
	COL_ADDRESS
	COL_LOCALITY
	COL_REGION
	COL_POSTAL_CODE
	COL_PHONE
	COL_PAYMENT_METHOD
	COL_CHARGE_ID
	COL_STATE
	COL_PAID_AT
	COL_AMOUNT

	NUM_COLUMNS
)

var Header = []string{
	"Date",
	"Email",
	"Name",
	"Document",
	"Address",
	"Locality",
	"Region",
	"PostalCode",
	"Phone",
	"PaymentMethod",
	"ChargeID",
	"State",
	"PaidAt",
	"Amount",
}

type LedgerRow struct {
	SubmittedAt time.Time
	Applicant   ApplicantRecord
	ChargeID    string
	State       PaymentState
	PaidAt      *time.Time
	Amount      *money.Money
}

// NewLedgerRow builds the row for an applicant. PaidAt is kept only for PAID rows.
func NewLedgerRow(submittedAt time.Time, applicant ApplicantRecord, chargeID string, state PaymentState, paidAt *time.Time, amount *money.Money) LedgerRow {
	if state != PAID {
		paidAt = nil
	}

	return LedgerRow{
		SubmittedAt: submittedAt,
		Applicant:   applicant,
		ChargeID:    chargeID,
		State:       state,
		PaidAt:      paidAt,
		Amount:      amount,
	}
}

func (r LedgerRow) Values() []string {
	amount := ""
	if r.Amount != nil {
		amount = amounts.FormatMajor(r.Amount)
	}

	return []string{
		COL_DATE:           r.SubmittedAt.UTC().Format(time.RFC3339),
		COL_EMAIL:          r.Applicant.Email,
		COL_NAME:           r.Applicant.FullName,
		COL_DOCUMENT:       r.Applicant.Document,
		COL_ADDRESS:        r.Applicant.Address,
		COL_LOCALITY:       r.Applicant.Locality,
		COL_REGION:         r.Applicant.Region,
		COL_POSTAL_CODE:    r.Applicant.PostalCode,
		COL_PHONE:          r.Applicant.Phone,
		COL_PAYMENT_METHOD: string(r.Applicant.PaymentMethod),
		COL_CHARGE_ID:      r.ChargeID,
		COL_STATE:          string(r.State),
		COL_PAID_AT:        FormatPaidAt(r.State, r.PaidAt),
		COL_AMOUNT:         amount,
	}
}

func FormatPaidAt(state PaymentState, paidAt *time.Time) string {
	if state != PAID || paidAt == nil {
		return ""
	}
	return paidAt.UTC().Format(time.RFC3339)
}

// RowLocation points at a ledger row. Index counts data rows from the top of the
// sheet including the header, so the header is index 0 and SheetRow is Index+1.
type RowLocation struct {
	Index  int
	Values []string
}

func (l RowLocation) SheetRow() int {
	return l.Index + 1
}

func (l RowLocation) Cell(col int) string {
	if col < len(l.Values) {
		return l.Values[col]
	}
	return ""
}

func (l RowLocation) State() PaymentState {
	return PaymentState(l.Cell(COL_STATE))
}

func (l RowLocation) IsPaid() bool {
	return l.State() == PAID
}

// Record is a listed ledger row keyed by header name.
type Record map[string]string

type Ledger interface {
	AppendApplicant(ctx context.Context, row LedgerRow) error
	FindRowByEmail(ctx context.Context, email string) (RowLocation, bool, error)
	UpdatePaymentState(ctx context.Context, email string, state PaymentState, paidAt time.Time) error
	ListApplicants(ctx context.Context) ([]Record, error)
}
