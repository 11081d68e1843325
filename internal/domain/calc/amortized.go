package calc

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// Amortized (annuity) interest: a fixed periodic payment whose
// interest/principal split shifts as the balance declines.
//
// The power term is computed in float64 and converted back to decimal
// before any monetary arithmetic, the same way the rest of the money math
// stays in decimal.

// annuityPayment computes the fixed periodic payment
// P·r(1+r)^n / ((1+r)^n − 1), or P/n at zero rate.
func annuityPayment(principal, rate decimal.Decimal, n int, cfg valueobject.CalculationConfig) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, valueobject.NewCalculationError(
			"annuity payment", valueobject.CalcInvalidInput, "number of payments must be positive",
		)
	}
	if rate.IsZero() {
		return RoundMoney(principal.Div(decimal.NewFromInt(int64(n))), cfg), nil
	}

	rf := rate.InexactFloat64()
	factor := math.Pow(1+rf, float64(n))
	if factor == 1 {
		return decimal.Zero, valueobject.NewCalculationError(
			"annuity payment", valueobject.CalcDivisionByZero, "(1+r)^n - 1 is zero",
		)
	}

	payment := principal.InexactFloat64() * rf * factor / (factor - 1)
	return RoundMoney(decimal.NewFromFloat(payment), cfg), nil
}

// principalFromPayment inverts the annuity formula, deriving the principal
// that a known fixed payment would finance: payment·((1+r)^n − 1)/(r(1+r)^n).
func principalFromPayment(payment, rate decimal.Decimal, n int, cfg valueobject.CalculationConfig) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, valueobject.NewCalculationError(
			"principal from payment", valueobject.CalcInvalidInput, "number of payments must be positive",
		)
	}
	if rate.IsZero() {
		return RoundMoney(payment.Mul(decimal.NewFromInt(int64(n))), cfg), nil
	}

	rf := rate.InexactFloat64()
	factor := math.Pow(1+rf, float64(n))
	denom := rf * factor
	if denom == 0 {
		return decimal.Zero, valueobject.NewCalculationError(
			"principal from payment", valueobject.CalcDivisionByZero, "r(1+r)^n is zero",
		)
	}

	principal := payment.InexactFloat64() * (factor - 1) / denom
	return RoundMoney(decimal.NewFromFloat(principal), cfg), nil
}

// amortizedSchedule iterates the full term. Each period charges interest on
// the running balance; the principal portion is capped at the remaining
// balance, and the final period is adjusted so the balance lands exactly at
// zero, absorbing accumulated rounding drift.
func amortizedSchedule(loan model.LoanInput, cfg valueobject.CalculationConfig) (model.PaymentSchedule, error) {
	rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
	if err != nil {
		return model.PaymentSchedule{}, err
	}
	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.PaymentSchedule{}, err
	}
	payment, err := annuityPayment(loan.Principal, rate, n, cfg)
	if err != nil {
		return model.PaymentSchedule{}, err
	}

	entries := make([]model.ScheduleEntry, 0, n)
	remaining := loan.Principal
	cumPrincipal := decimal.Zero
	cumInterest := decimal.Zero

	for period := 1; period <= n; period++ {
		interest := RoundMoney(remaining.Mul(rate), cfg)
		principal := payment.Sub(interest)
		total := payment

		if principal.GreaterThan(remaining) {
			principal = remaining
			total = principal.Add(interest)
		}

		// Final period: absorb rounding drift so the balance reaches zero.
		if period == n {
			principal = remaining
			total = principal.Add(interest)
		}

		remaining = clampZero(remaining.Sub(principal))
		cumPrincipal = cumPrincipal.Add(principal)
		cumInterest = cumInterest.Add(interest)

		entries = append(entries, model.ScheduleEntry{
			Period:              period,
			DueDate:             dueDate(loan.StartDate, period, loan.Frequency),
			Payment:             total,
			Principal:           principal,
			Interest:            interest,
			RemainingBalance:    remaining,
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
		})
	}

	return model.PaymentSchedule{
		LoanID:          loan.ID,
		InterestType:    loan.InterestType,
		PeriodicPayment: payment,
		TotalInterest:   cumInterest,
		TotalCost:       loan.Principal.Add(cumInterest),
		Entries:         entries,
	}, nil
}

// amortizedRemainingAt computes the outstanding balance after period p in
// closed form, P·((1+r)^n − (1+r)^p)/((1+r)^n − 1), without replaying the
// schedule. At zero rate the balance declines linearly.
func amortizedRemainingAt(principal, rate decimal.Decimal, n, p int, cfg valueobject.CalculationConfig) (decimal.Decimal, error) {
	if n <= 0 || p < 0 || p > n {
		return decimal.Zero, valueobject.NewCalculationError(
			"remaining balance", valueobject.CalcInvalidInput, "period out of range",
		)
	}
	if rate.IsZero() {
		nDec := decimal.NewFromInt(int64(n))
		left := decimal.NewFromInt(int64(n - p))
		return RoundMoney(principal.Mul(left).Div(nDec), cfg), nil
	}

	rf := rate.InexactFloat64()
	fn := math.Pow(1+rf, float64(n))
	fp := math.Pow(1+rf, float64(p))
	if fn == 1 {
		return decimal.Zero, valueobject.NewCalculationError(
			"remaining balance", valueobject.CalcDivisionByZero, "(1+r)^n - 1 is zero",
		)
	}

	balance := principal.InexactFloat64() * (fn - fp) / (fn - 1)
	return RoundMoney(decimal.NewFromFloat(balance), cfg), nil
}

// amortizedBalance reconciles an amortized loan against its payment history.
// Payments are applied chronologically: each one first covers the interest
// accrued on the current balance for one period, and the excess reduces
// principal. Processing stops once the balance reaches zero.
func amortizedBalance(loan model.LoanInput, payments []model.PaymentRecord, asOf time.Time, cfg valueobject.CalculationConfig) (model.BalanceSnapshot, error) {
	rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}
	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}

	balance := loan.Principal
	principalPaid := decimal.Zero
	interestPaid := decimal.Zero
	totalPaid := decimal.Zero
	applied := 0

	for _, p := range payments {
		if balance.IsZero() {
			break
		}

		interestOwed := RoundMoney(balance.Mul(rate), cfg)
		interestApplied := minDecimal(p.Amount, interestOwed)
		principalApplied := minDecimal(clampZero(p.Amount.Sub(interestOwed)), balance)

		balance = clampZero(balance.Sub(principalApplied))
		principalPaid = principalPaid.Add(principalApplied)
		interestPaid = interestPaid.Add(interestApplied)
		totalPaid = totalPaid.Add(p.Amount)
		applied++
	}

	paidOff := balance.IsZero()
	var nextDue time.Time
	if !paidOff {
		nextDue = nextDueAfter(loan.StartDate, asOf, loan.Frequency, n)
	}

	return model.BalanceSnapshot{
		LoanID:          loan.ID,
		AsOf:            asOf,
		CurrentBalance:  RoundMoney(balance, cfg),
		PrincipalPaid:   RoundMoney(principalPaid, cfg),
		InterestPaid:    RoundMoney(interestPaid, cfg),
		TotalPaid:       RoundMoney(totalPaid, cfg),
		PaymentsApplied: applied,
		NextPaymentDue:  nextDue,
		IsPaidOff:       paidOff,
	}, nil
}
