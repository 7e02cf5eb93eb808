package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/food-storefront/constant"
)

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Category() constant.ErrorCategory {
	return constant.ErrorTypeCategory[c.errType]
}

// Retryable reports whether the same request may succeed if sent again.
func (c CustomError) Retryable() bool {
	return constant.ErrorTypeRetryable[c.errType]
}

// Fields returns field-level validation messages, if any.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

// WithFields attaches field-level validation messages.
func (c CustomError) WithFields(fields map[string]string) CustomError {
	c.fields = fields
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// IsType reports whether err is, or wraps, a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}

// As is errors.As from the standard library, re-exported since this package shadows it.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
