package payments

import "fmt"

type ErrorReason string

const (
	REASON_PROVIDER_CONFIG      ErrorReason = "PROVIDER_CONFIG"
	REASON_PROVIDER_REQUEST     ErrorReason = "PROVIDER_REQUEST"
	REASON_PROVIDER_UNAVAILABLE ErrorReason = "PROVIDER_UNAVAILABLE"
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

func newPaymentsError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewConfigError(message string) *Error {
	return newPaymentsError(REASON_PROVIDER_CONFIG, message, nil)
}

func NewRequestError(message string, cause error) *Error {
	return newPaymentsError(REASON_PROVIDER_REQUEST, message, cause)
}

func NewUnavailableError(message string, cause error) *Error {
	return newPaymentsError(REASON_PROVIDER_UNAVAILABLE, message, cause)
}
