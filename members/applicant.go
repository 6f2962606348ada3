package members

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	CARD   PaymentMethod = "CARD"
	WALLET PaymentMethod = "WALLET"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case CARD:
		return CARD, nil
	case WALLET:
		return WALLET, nil
	default:
		return "", NewInvalidApplicantError(fmt.Sprintf("Unknown payment method: %q", s))
	}
}

// ApplicantRecord is the data submitted once per signup attempt. Build it with
// NewApplicantRecord so that the email key is normalized.
type ApplicantRecord struct {
	Email         string
	FullName      string
	Document      string
	Address       string
	Locality      string
	Region        string
	PostalCode    string
	Phone         string
	PaymentMethod PaymentMethod
}

type ApplicantParams struct {
	Email         string
	FullName      string
	Document      string
	Address       string
	Locality      string
	Region        string
	PostalCode    string
	Phone         string
	PaymentMethod string
}

func NewApplicantRecord(params ApplicantParams) (ApplicantRecord, error) {
	email := NormalizeEmail(params.Email)
	if email == "" {
		return ApplicantRecord{}, NewInvalidApplicantError("Email is required")
	}
	if !strings.Contains(email, "@") {
		return ApplicantRecord{}, NewInvalidApplicantError(fmt.Sprintf("Email %q is not valid", params.Email))
	}

	fullName := strings.TrimSpace(params.FullName)
	if fullName == "" {
		return ApplicantRecord{}, NewInvalidApplicantError("Full name is required")
	}

	document := strings.TrimSpace(params.Document)
	if document == "" {
		return ApplicantRecord{}, NewInvalidApplicantError("Document is required")
	}

	method, err := ParsePaymentMethod(params.PaymentMethod)
	if err != nil {
		return ApplicantRecord{}, err
	}

	return ApplicantRecord{
		Email:         email,
		FullName:      fullName,
		Document:      document,
		Address:       strings.TrimSpace(params.Address),
		Locality:      strings.TrimSpace(params.Locality),
		Region:        strings.TrimSpace(params.Region),
		PostalCode:    strings.TrimSpace(params.PostalCode),
		Phone:         strings.TrimSpace(params.Phone),
		PaymentMethod: method,
	}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a ApplicantRecord) ChargeDescription() string {
	return fmt.Sprintf("Membership signup - %s", a.FullName)
}
