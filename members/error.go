package members

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_APPLICANT  ErrorReason = "INVALID_APPLICANT"
	REASON_LEDGER_UNAVAILABLE ErrorReason = "LEDGER_UNAVAILABLE"
	REASON_MEMBER_NOT_FOUND   ErrorReason = "MEMBER_NOT_FOUND"
	REASON_MALFORMED_ROW      ErrorReason = "MALFORMED_ROW"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newMembersError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidApplicantError(message string) *Error {
	return newMembersError(REASON_INVALID_APPLICANT, message, nil)
}

func NewLedgerUnavailableError(message string, cause error) *Error {
	return newMembersError(REASON_LEDGER_UNAVAILABLE, message, cause)
}

func NewMemberNotFoundError(email string) *Error {
	return newMembersError(REASON_MEMBER_NOT_FOUND, fmt.Sprintf("No ledger row for email %q", email), nil)
}

func NewMalformedRowError(message string, cause error) *Error {
	return newMembersError(REASON_MALFORMED_ROW, message, cause)
}
