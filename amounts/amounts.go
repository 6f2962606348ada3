// Package amounts converts between canonical go-money values and the decimal
// major-unit strings exchanged with clients, wallet providers and the ledger.
package amounts

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Parse reads a positive decimal amount in major units ("8", "8.00") for the
// given ISO 4217 currency. Amounts with more fraction digits than the currency
// allows are rejected rather than rounded.
func Parse(value string, currencyCode string) (*money.Money, error) {
	currency := money.GetCurrency(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if currency == nil {
		return nil, fmt.Errorf("unsupported currency %q", currencyCode)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	if !d.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", d.String())
	}

	minor := d.Shift(int32(currency.Fraction))
	if !minor.Equal(minor.Truncate(0)) {
		return nil, fmt.Errorf("amount %s has more than %d fraction digits", d.String(), currency.Fraction)
	}

	return money.New(minor.IntPart(), currency.Code), nil
}

func FromMinor(minor int64, currencyCode string) (*money.Money, error) {
	currency := money.GetCurrency(strings.ToUpper(currencyCode))
	if currency == nil {
		return nil, fmt.Errorf("unsupported currency %q", currencyCode)
	}

	return money.New(minor, currency.Code), nil
}

func Major(m *money.Money) decimal.Decimal {
	return decimal.New(m.Amount(), -int32(m.Currency().Fraction))
}

// FormatMajor renders the amount in major units with exactly two fraction digits.
func FormatMajor(m *money.Money) string {
	return Major(m).StringFixed(2)
}
