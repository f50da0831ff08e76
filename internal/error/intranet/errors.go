// Package intranet holds the error kinds every layer of the service reports:
// repository failures, business rule violations and system faults.
package intranet

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"

	"osintranet-http-service/internal/error/code"
)

// Kind tells which layer raised an Error.
type Kind int

const (
	// KindRepository 数据访问失败
	KindRepository Kind = iota + 1
	// KindBusiness 业务规则不满足
	KindBusiness
	// KindSystem 配置或程序错误
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindRepository:
		return "repository"
	case KindBusiness:
		return "business"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Error is an error carrying an error code and the arguments of its message.
type Error struct {
	kind  Kind
	Code  int
	Args  []any
	cause error
}

// NewRepositoryError reports a persistence failure.
func NewRepositoryError(errorCode int, cause error, args ...any) *Error {
	return &Error{kind: KindRepository, Code: errorCode, Args: args, cause: cause}
}

// NewBusinessError reports a violated business rule.
func NewBusinessError(errorCode int, args ...any) *Error {
	return &Error{kind: KindBusiness, Code: errorCode, Args: args}
}

// NewSystemError reports a configuration or programming error.
func NewSystemError(errorCode int, cause error, args ...any) *Error {
	return &Error{kind: KindSystem, Code: errorCode, Args: args, cause: cause}
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Kind returns the layer that raised the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the client facing message in the given language.
func (e *Error) Message(lang code.Language) string {
	msg := code.GetLocalizedMessage(lang, e.Code)
	if len(e.Args) == 0 {
		return msg
	}
	parts := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return msg + ": " + strings.Join(parts, ", ")
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s error %d: %s", e.kind, e.Code, e.Message(code.English))
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// As returns the Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var target *Error
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode reports whether err is an Error with the given code.
func HasCode(err error, errorCode int) bool {
	e, ok := As(err)
	return ok && e.Code == errorCode
}

// IsBusiness reports whether err is a business rule violation.
func IsBusiness(err error) bool {
	e, ok := As(err)
	return ok && e.kind == KindBusiness
}

// Classify turns any error into an Error. Errors that already are one are
// returned unchanged; juju error kinds and validation errors become business
// errors; anything else is an unknown system error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}

	var validationErrors validator.ValidationErrors
	switch {
	case stderrors.As(err, &validationErrors):
		return NewBusinessError(code.ErrValidation, failedFields(validationErrors)...).WithCause(err)
	case errors.Is(err, errors.NotFound):
		return NewBusinessError(code.ErrRecordNotFound).WithCause(err)
	case errors.Is(err, errors.AlreadyExists):
		return NewBusinessError(code.ErrRecordAlreadyExists).WithCause(err)
	case errors.Is(err, errors.NotValid):
		return NewBusinessError(code.ErrValidation).WithCause(err)
	case errors.Is(err, errors.Forbidden), errors.Is(err, errors.Unauthorized):
		return NewBusinessError(code.ErrForbidden).WithCause(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewSystemError(code.ErrSystem, err)
	default:
		return NewSystemError(code.ErrUnknown, err)
	}
}

func failedFields(validationErrors validator.ValidationErrors) []any {
	fields := make([]any, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return fields
}
