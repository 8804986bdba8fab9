package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// BusinessError is a comparable domain error, so sentinel values built with
// ErrBusiness can be matched with errors.Is.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// VALIDATION
// ======================================================

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ======================================================
// UPSTREAM
// ======================================================

// UpstreamError wraps a failure of the item store or identity provider.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func Upstream(service string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Service: service, Err: err}
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsUniqueViolation reports a duplicate key from gorm (TranslateError) or
// straight from postgres.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
