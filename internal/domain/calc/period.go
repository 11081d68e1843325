package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

var (
	hundred          = decimal.NewFromInt(100)
	monthsPerYearDec = decimal.NewFromInt(12)
)

// PeriodicRate converts an annual percentage rate into a per-period decimal
// rate: percent/100 divided by the frequency's periods per year.
func PeriodicRate(annualRatePercent decimal.Decimal, freq valueobject.PaymentFrequency) (decimal.Decimal, error) {
	per := freq.PeriodsPerYear()
	if per == 0 {
		return decimal.Zero, valueobject.NewCalculationError(
			"periodic rate", valueobject.CalcUnsupportedFrequency,
			"unrecognized payment frequency",
		)
	}
	return annualRatePercent.Div(hundred).Div(decimal.NewFromInt(int64(per))), nil
}

// TotalPayments returns the number of payment periods over the loan term:
// ceil(termMonths/12 × periodsPerYear).
func TotalPayments(termMonths int, freq valueobject.PaymentFrequency) (int, error) {
	per := freq.PeriodsPerYear()
	if per == 0 {
		return 0, valueobject.NewCalculationError(
			"total payments", valueobject.CalcUnsupportedFrequency,
			"unrecognized payment frequency",
		)
	}
	return (termMonths*per + 11) / 12, nil
}

// dueDate returns the due date of the given 1-based period. Monthly periods
// advance by calendar month, bi-weekly periods by exactly 14 days.
func dueDate(start time.Time, period int, freq valueobject.PaymentFrequency) time.Time {
	if freq.Equal(valueobject.FrequencyBiWeekly) {
		return start.AddDate(0, 0, 14*period)
	}
	return start.AddDate(0, period, 0)
}

// periodsElapsed counts the scheduled due dates on or before asOf, capped at
// the total number of periods.
func periodsElapsed(start, asOf time.Time, freq valueobject.PaymentFrequency, total int) int {
	elapsed := 0
	for p := 1; p <= total; p++ {
		if dueDate(start, p, freq).After(asOf) {
			break
		}
		elapsed++
	}
	return elapsed
}

// nextDueAfter returns the first scheduled due date strictly after asOf, or
// the zero time when the term has run out.
func nextDueAfter(start, asOf time.Time, freq valueobject.PaymentFrequency, total int) time.Time {
	for p := 1; p <= total; p++ {
		if due := dueDate(start, p, freq); due.After(asOf) {
			return due
		}
	}
	return time.Time{}
}
