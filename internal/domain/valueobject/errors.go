package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// ValidationError – structural input problems, collected as a list
// ---------------------------------------------------------------------------

// Machine-readable validation codes.
const (
	CodeInvalidDecimal          = "INVALID_DECIMAL"
	CodePrincipalNotPositive    = "PRINCIPAL_NOT_POSITIVE"
	CodePrincipalTooLarge       = "PRINCIPAL_TOO_LARGE"
	CodeRateOutOfRange          = "RATE_OUT_OF_RANGE"
	CodeTermOutOfRange          = "TERM_OUT_OF_RANGE"
	CodeDateRequired            = "DATE_REQUIRED"
	CodeEndBeforeStart          = "END_BEFORE_START"
	CodeBalanceOutOfRange       = "BALANCE_OUT_OF_RANGE"
	CodeUnsupportedInterestType = "UNSUPPORTED_INTEREST_TYPE"
	CodeUnsupportedFrequency    = "UNSUPPORTED_FREQUENCY"
	CodeAmountNotPositive       = "AMOUNT_NOT_POSITIVE"
)

// ValidationError describes one structurally invalid field.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every problem found in one validation pass so
// callers can report all of them at once rather than just the first.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", ve.Field, ve.Code))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasCode reports whether any collected error carries the given code.
func (e ValidationErrors) HasCode(code string) bool {
	for _, ve := range e {
		if ve.Code == code {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// CalculationError – formula-level failures
// ---------------------------------------------------------------------------

// Calculation failure codes.
const (
	CalcUnsupportedType      = "UNSUPPORTED_INTEREST_TYPE"
	CalcUnsupportedFrequency = "UNSUPPORTED_FREQUENCY"
	CalcDivisionByZero       = "DIVISION_BY_ZERO"
	CalcInvalidInput         = "INVALID_INPUT"
)

// CalculationError reports a failure inside a calculation strategy: an
// unsupported interest type or frequency, a division by zero in a closed
// form, or input that should have been rejected by validation.
type CalculationError struct {
	Op     string
	Code   string
	Reason string
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Reason, e.Code)
}

// NewCalculationError builds a CalculationError for the given operation.
func NewCalculationError(op, code, reason string) *CalculationError {
	return &CalculationError{Op: op, Code: code, Reason: reason}
}
