package catalog

import (
	"errors"
	"fmt"
)

// Catalog errors. ValidationError values unwrap to one of these.
var (
	ErrUnknownColor  = errors.New("unknown color")
	ErrDuplicate     = errors.New("duplicate identifier")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Validation codes.
const (
	CodeEmptyCatalog       = "EMPTY_CATALOG"
	CodeInvalidName        = "INVALID_NAME"
	CodeInvalidColor       = "INVALID_COLOR"
	CodeUnknownCategory    = "UNKNOWN_CATEGORY"
	CodeDuplicateCategory  = "DUPLICATE_CATEGORY"
	CodeDuplicateColor     = "DUPLICATE_COLOR"
	CodeUnknownColor       = "UNKNOWN_COLOR"
	CodeUnknownFruit       = "UNKNOWN_FRUIT"
	CodeDuplicateTransform = "DUPLICATE_TRANSFORM"
	CodeInvalidUnits       = "INVALID_UNITS"
	CodeInvalidDiscount    = "INVALID_DISCOUNT"
)

// ValidationError describes why a catalog was rejected.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

func invalid(code string, err error, format string, args ...any) error {
	return ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// validName accepts kebab-case identifiers: lowercase letters, digits and
// single inner hyphens.
func validName(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			prevHyphen = false
		case ch == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return true
}
