package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// Interest-only (balloon): each period pays interest on the untouched
// principal, and the final period additionally carries the entire principal.

// interestOnlySchedule builds the schedule: level interest payments with a
// terminal balloon payment of interest plus the full principal.
func interestOnlySchedule(loan model.LoanInput, cfg valueobject.CalculationConfig) (model.PaymentSchedule, error) {
	rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
	if err != nil {
		return model.PaymentSchedule{}, err
	}
	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.PaymentSchedule{}, err
	}

	interestPayment := RoundMoney(loan.Principal.Mul(rate), cfg)

	entries := make([]model.ScheduleEntry, 0, n)
	cumInterest := decimal.Zero

	for period := 1; period <= n; period++ {
		principal := decimal.Zero
		remaining := loan.Principal
		payment := interestPayment

		if period == n {
			principal = loan.Principal
			remaining = decimal.Zero
			payment = interestPayment.Add(loan.Principal)
		}

		cumInterest = cumInterest.Add(interestPayment)

		entries = append(entries, model.ScheduleEntry{
			Period:              period,
			DueDate:             dueDate(loan.StartDate, period, loan.Frequency),
			Payment:             payment,
			Principal:           principal,
			Interest:            interestPayment,
			RemainingBalance:    remaining,
			CumulativePrincipal: principal,
			CumulativeInterest:  cumInterest,
		})
	}

	return model.PaymentSchedule{
		LoanID:          loan.ID,
		InterestType:    loan.InterestType,
		PeriodicPayment: interestPayment,
		TotalInterest:   cumInterest,
		TotalCost:       loan.Principal.Add(cumInterest),
		Entries:         entries,
	}, nil
}

// interestOnlyBalance reconciles an interest-only loan. The principal stays
// at its original value until cumulative payments exceed the interest
// expected to have accrued by asOf; only the excess reduces principal,
// clamped at zero. Underpayment raises no delinquency flag here.
func interestOnlyBalance(loan model.LoanInput, payments []model.PaymentRecord, asOf time.Time, cfg valueobject.CalculationConfig) (model.BalanceSnapshot, error) {
	rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}
	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}

	interestPayment := RoundMoney(loan.Principal.Mul(rate), cfg)
	elapsed := periodsElapsed(loan.StartDate, asOf, loan.Frequency, n)
	expectedInterest := interestPayment.Mul(decimal.NewFromInt(int64(elapsed)))

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	interestPaid := minDecimal(totalPaid, expectedInterest)
	principalPaid := minDecimal(clampZero(totalPaid.Sub(expectedInterest)), loan.Principal)
	balance := loan.Principal.Sub(principalPaid)
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
		PaymentsApplied: len(payments),
		NextPaymentDue:  nextDue,
		IsPaidOff:       paidOff,
	}, nil
}
