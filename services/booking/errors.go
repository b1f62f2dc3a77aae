package booking

import (
	"errors"
	"fmt"
)

// ErrorCode classifies booking workflow failures.
type ErrorCode string

const (
	CodeUnauthenticated      ErrorCode = "unauthenticated"
	CodeNotFound             ErrorCode = "notFound"
	CodeInvalidOperation     ErrorCode = "invalidOperation"
	CodeInvalidInput         ErrorCode = "invalidInput"
	CodePaymentSetupRequired ErrorCode = "paymentSetupRequired"
	CodePaymentFailed        ErrorCode = "paymentFailed"
	CodePersistenceFailure   ErrorCode = "persistenceFailure"
)

// WorkflowError is a classified booking failure with a human-readable cause.
type WorkflowError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, msg string) error {
	return &WorkflowError{Code: code, Message: msg}
}

func wrapError(code ErrorCode, msg string, err error) error {
	return &WorkflowError{Code: code, Message: msg, Err: err}
}

// IsCode reports whether err is a WorkflowError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var wErr *WorkflowError
	return errors.As(err, &wErr) && wErr.Code == code
}
