package httperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// BusinessError is the single error type the core returns to the HTTP layer.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func newErr(kind Kind, code, message string) error {
	return &BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return newErr(KindValidation, code, message)
}

func NotFoundErr(code, message string) error {
	return newErr(KindNotFound, code, message)
}

func Conflict(code, message string) error {
	return newErr(KindConflict, code, message)
}

func UnauthorizedErr(code, message string) error {
	return newErr(KindUnauthorized, code, message)
}

func Forbidden(code, message string) error {
	return newErr(KindForbidden, code, message)
}

// Store wraps a persistence failure. Nil stays nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	var be *BusinessError
	if errors.As(err, &be) {
		return err
	}
	return &BusinessError{
		Kind:    KindStore,
		Code:    "store_error",
		Message: "Storage failure.",
		Err:     err,
	}
}

func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func IsBusiness(err error, code string) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
