package signup

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_ATTEMPT_DOES_NOT_EXIST          ErrorReason = "ATTEMPT_DOES_NOT_EXIST"
	REASON_ATTEMPT_ALREADY_EXISTS          ErrorReason = "ATTEMPT_ALREADY_EXISTS"
	REASON_ATTEMPT_VERSION_CONFLICT        ErrorReason = "ATTEMPT_VERSION_CONFLICT"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_INVALID_STATE                   ErrorReason = "INVALID_STATE"
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

func newSignupError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewAttemptDoesNotExistError(message string, cause error) *Error {
	return newSignupError(REASON_ATTEMPT_DOES_NOT_EXIST, message, cause)
}

func NewAttemptAlreadyExistsError(message string, cause error) *Error {
	return newSignupError(REASON_ATTEMPT_ALREADY_EXISTS, message, cause)
}

func NewAttemptVersionConflictError(message string, cause error) *Error {
	return newSignupError(REASON_ATTEMPT_VERSION_CONFLICT, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newSignupError(REASON_TIMEOUT, message, nil)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newSignupError(REASON_INVALID_CURSOR, message, cause)
}

func NewInvalidStateError(message string) *Error {
	return newSignupError(REASON_INVALID_STATE, message, nil)
}

func hasReason(err error, reason ErrorReason) bool {
	var signupErr *Error
	return errors.As(err, &signupErr) && signupErr.Reason == reason
}
