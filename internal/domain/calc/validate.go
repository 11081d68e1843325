package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// Structural limits on loan input.
var (
	maxPrincipal = decimal.NewFromInt(100_000_000)
	maxRate      = decimal.NewFromInt(100)
)

const (
	minTermMonths = 1
	maxTermMonths = 600
)

// ValidateLoanInput checks a loan description for structural problems and
// returns every violation found. It performs no arithmetic beyond
// comparisons; strategies must not be invoked on input that fails here.
func ValidateLoanInput(loan model.LoanInput) valueobject.ValidationErrors {
	var errs valueobject.ValidationErrors

	switch {
	case loan.Principal.LessThanOrEqual(decimal.Zero):
		errs = append(errs, valueobject.ValidationError{
			Field:   "principal",
			Code:    valueobject.CodePrincipalNotPositive,
			Message: "principal must be greater than zero",
		})
	case loan.Principal.GreaterThan(maxPrincipal):
		errs = append(errs, valueobject.ValidationError{
			Field:   "principal",
			Code:    valueobject.CodePrincipalTooLarge,
			Message: "principal must not exceed 100,000,000",
		})
	}

	if loan.AnnualRatePercent.IsNegative() || loan.AnnualRatePercent.GreaterThan(maxRate) {
		errs = append(errs, valueobject.ValidationError{
			Field:   "annual_rate_percent",
			Code:    valueobject.CodeRateOutOfRange,
			Message: "annual rate must be between 0 and 100 percent",
		})
	}

	if loan.TermMonths < minTermMonths || loan.TermMonths > maxTermMonths {
		errs = append(errs, valueobject.ValidationError{
			Field:   "term_months",
			Code:    valueobject.CodeTermOutOfRange,
			Message: "term must be between 1 and 600 months",
		})
	}

	switch {
	case loan.StartDate.IsZero():
		errs = append(errs, valueobject.ValidationError{
			Field:   "start_date",
			Code:    valueobject.CodeDateRequired,
			Message: "start date is required",
		})
	case loan.EndDate.IsZero():
		errs = append(errs, valueobject.ValidationError{
			Field:   "end_date",
			Code:    valueobject.CodeDateRequired,
			Message: "end date is required",
		})
	case !loan.EndDate.After(loan.StartDate):
		errs = append(errs, valueobject.ValidationError{
			Field:   "end_date",
			Code:    valueobject.CodeEndBeforeStart,
			Message: "end date must be after start date",
		})
	}

	if loan.CurrentBalance.IsNegative() || loan.CurrentBalance.GreaterThan(loan.Principal) {
		errs = append(errs, valueobject.ValidationError{
			Field:   "current_balance",
			Code:    valueobject.CodeBalanceOutOfRange,
			Message: "current balance must be between 0 and the principal",
		})
	}

	if loan.InterestType.IsZero() {
		errs = append(errs, valueobject.ValidationError{
			Field:   "interest_type",
			Code:    valueobject.CodeUnsupportedInterestType,
			Message: "interest calculation type is required",
		})
	}

	if loan.Frequency.IsZero() {
		errs = append(errs, valueobject.ValidationError{
			Field:   "payment_frequency",
			Code:    valueobject.CodeUnsupportedFrequency,
			Message: "payment frequency is required",
		})
	}

	return errs
}

// ValidateCalculationParams checks the parameters of a single payment
// calculation (a recorded or proposed payment).
func ValidateCalculationParams(amount decimal.Decimal, date time.Time) valueobject.ValidationErrors {
	var errs valueobject.ValidationErrors

	if amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, valueobject.ValidationError{
			Field:   "amount",
			Code:    valueobject.CodeAmountNotPositive,
			Message: "payment amount must be greater than zero",
		})
	}
	if date.IsZero() {
		errs = append(errs, valueobject.ValidationError{
			Field:   "date",
			Code:    valueobject.CodeDateRequired,
			Message: "payment date is required",
		})
	}

	return errs
}
