package infra

import (
	"errors"

	"octo-connect/internal/pkg/errs"
)

type SupplierErrorKind string

// SupplierError normalizes transport and application failures from the
// upstream API into one shape, keeping the supplier's own error detail when
// it sent one.
type SupplierError struct {
	Kind       SupplierErrorKind
	StatusCode int
	Code       string // supplier error code, e.g. INVALID_PRODUCT_ID
	msg        string
	err        error // wrapped low-level error
}

func (e SupplierError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Code != "" {
		s += " (" + e.Code + ")"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e SupplierError) Unwrap() error {
	return e.err
}

func NewSupplierError(kind SupplierErrorKind, statusCode int, code, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return SupplierError{Kind: kind, StatusCode: statusCode, Code: code, msg: msg, err: err}
}

func IsKind(err error, kind SupplierErrorKind) bool {
	var e SupplierError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Supplier-specific error kinds
const (
	KindNotFound     SupplierErrorKind = "NOT_FOUND"
	KindUnauthorized SupplierErrorKind = "UNAUTHORIZED"
	KindBadRequest   SupplierErrorKind = "BAD_REQUEST"
	KindUpstream     SupplierErrorKind = "UPSTREAM_FAILURE"
	KindTransport    SupplierErrorKind = "TRANSPORT_FAILURE"
)
