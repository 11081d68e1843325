package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// Simple interest: the full interest charge is fixed at inception as
// principal × rate × years and does not compound or decline with the
// balance.

// simpleTotalInterest returns the fixed interest charge for the whole term.
func simpleTotalInterest(loan model.LoanInput, cfg valueobject.CalculationConfig) decimal.Decimal {
	years := decimal.NewFromInt(int64(loan.TermMonths)).Div(monthsPerYearDec)
	interest := loan.Principal.Mul(loan.AnnualRatePercent.Div(hundred)).Mul(years)
	return RoundMoney(interest, cfg)
}

// simpleSchedule builds the payment schedule for a simple-interest loan.
//
// In equal-payment mode every period carries an even share of interest and
// principal; the final period absorbs the rounding remainder so cumulative
// principal lands exactly on the original principal. In single-repayment
// mode the whole amount falls due at the end date.
func simpleSchedule(loan model.LoanInput, cfg valueobject.CalculationConfig, singleRepayment bool) (model.PaymentSchedule, error) {
	totalInterest := simpleTotalInterest(loan, cfg)
	totalAmount := loan.Principal.Add(totalInterest)

	if singleRepayment {
		entry := model.ScheduleEntry{
			Period:              1,
			DueDate:             loan.EndDate,
			Payment:             totalAmount,
			Principal:           loan.Principal,
			Interest:            totalInterest,
			RemainingBalance:    decimal.Zero,
			CumulativePrincipal: loan.Principal,
			CumulativeInterest:  totalInterest,
		}
		return model.PaymentSchedule{
			LoanID:          loan.ID,
			InterestType:    loan.InterestType,
			PeriodicPayment: totalAmount,
			TotalInterest:   totalInterest,
			TotalCost:       totalAmount,
			Entries:         []model.ScheduleEntry{entry},
		}, nil
	}

	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.PaymentSchedule{}, err
	}
	nDec := decimal.NewFromInt(int64(n))

	perInterest := RoundMoney(totalInterest.Div(nDec), cfg)
	perPrincipal := RoundMoney(loan.Principal.Div(nDec), cfg)
	perPayment := perPrincipal.Add(perInterest)

	entries := make([]model.ScheduleEntry, 0, n)
	cumPrincipal := decimal.Zero
	cumInterest := decimal.Zero

	for period := 1; period <= n; period++ {
		principal := perPrincipal
		interest := perInterest

		// Final period absorbs rounding drift.
		if period == n {
			principal = loan.Principal.Sub(cumPrincipal)
			interest = totalInterest.Sub(cumInterest)
		}

		cumPrincipal = cumPrincipal.Add(principal)
		cumInterest = cumInterest.Add(interest)

		entries = append(entries, model.ScheduleEntry{
			Period:              period,
			DueDate:             dueDate(loan.StartDate, period, loan.Frequency),
			Payment:             principal.Add(interest),
			Principal:           principal,
			Interest:            interest,
			RemainingBalance:    loan.Principal.Sub(cumPrincipal),
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
		})
	}

	return model.PaymentSchedule{
		LoanID:          loan.ID,
		InterestType:    loan.InterestType,
		PeriodicPayment: perPayment,
		TotalInterest:   totalInterest,
		TotalCost:       totalAmount,
		Entries:         entries,
	}, nil
}

// simpleBalance reconciles a simple-interest loan against its payment
// history. The interest charge is fixed at inception; payments cover that
// fixed interest first and only the excess reduces principal. Overpayment
// clamps the balance at zero rather than carrying forward a credit.
func simpleBalance(loan model.LoanInput, payments []model.PaymentRecord, asOf time.Time, cfg valueobject.CalculationConfig) (model.BalanceSnapshot, error) {
	totalInterest := simpleTotalInterest(loan, cfg)

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	interestPaid := minDecimal(totalPaid, totalInterest)
	principalPaid := minDecimal(clampZero(totalPaid.Sub(totalInterest)), loan.Principal)
	balance := loan.Principal.Sub(principalPaid)
	paidOff := totalPaid.GreaterThanOrEqual(loan.Principal.Add(totalInterest))

	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}
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
