package calc

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// Engine is the unified entry point for schedule generation, balance
// reconciliation and payment-impact analysis. It is stateless and safe for
// concurrent use; every method is a pure function of its arguments.
type Engine struct{}

// NewEngine returns a new calculation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ScheduleOptions controls schedule generation. All filters are applied to
// the computed schedule; none of them trigger recomputation.
type ScheduleOptions struct {
	Config valueobject.CalculationConfig

	// RemainingOnly drops periods the loan's current balance has already
	// moved past.
	RemainingOnly bool

	// ExcludeDueBefore drops periods due on or before the given date.
	// The zero time disables the filter.
	ExcludeDueBefore time.Time

	// MaxEntries caps the number of returned periods. Zero means no cap.
	MaxEntries int

	// SingleRepayment requests one terminal payment instead of equal
	// periodic payments. Simple-interest loans only.
	SingleRepayment bool
}

// GeneratePaymentSchedule validates the loan, dispatches to the strategy for
// its interest type and applies the requested filters.
func (e *Engine) GeneratePaymentSchedule(loan model.LoanInput, opts ScheduleOptions) (model.PaymentSchedule, error) {
	if errs := ValidateLoanInput(loan); len(errs) > 0 {
		return model.PaymentSchedule{}, errs
	}
	cfg := opts.Config.Normalize()

	var (
		schedule model.PaymentSchedule
		err      error
	)
	switch loan.InterestType {
	case valueobject.InterestTypeSimple:
		schedule, err = simpleSchedule(loan, cfg, opts.SingleRepayment)
	case valueobject.InterestTypeAmortized:
		schedule, err = amortizedSchedule(loan, cfg)
	case valueobject.InterestTypeInterestOnly:
		schedule, err = interestOnlySchedule(loan, cfg)
	default:
		return model.PaymentSchedule{}, valueobject.NewCalculationError(
			"generate schedule", valueobject.CalcUnsupportedType,
			"unsupported interest calculation type "+loan.InterestType.String(),
		)
	}
	if err != nil {
		return model.PaymentSchedule{}, err
	}

	schedule.Entries = filterEntries(schedule.Entries, loan, opts)
	return schedule, nil
}

// filterEntries applies the remaining-only, past-exclusion and max-count
// filters without recomputing any amounts.
func filterEntries(entries []model.ScheduleEntry, loan model.LoanInput, opts ScheduleOptions) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, 0, len(entries))
	starting := loan.Principal

	for _, entry := range entries {
		keep := true
		if opts.RemainingOnly && starting.GreaterThan(loan.CurrentBalance) {
			keep = false
		}
		if !opts.ExcludeDueBefore.IsZero() && !entry.DueDate.After(opts.ExcludeDueBefore) {
			keep = false
		}
		starting = entry.RemainingBalance

		if keep {
			out = append(out, entry)
			if opts.MaxEntries > 0 && len(out) >= opts.MaxEntries {
				break
			}
		}
	}
	return out
}

// CalculateCurrentBalance filters the payment history to payments dated on
// or before asOf, orders it chronologically (same-date payments keep their
// input order) and dispatches to the matching strategy's reconciliation.
// With an empty history every strategy reports the full principal.
func (e *Engine) CalculateCurrentBalance(loan model.LoanInput, payments []model.PaymentRecord, asOf time.Time, cfg valueobject.CalculationConfig) (model.BalanceSnapshot, error) {
	if errs := ValidateLoanInput(loan); len(errs) > 0 {
		return model.BalanceSnapshot{}, errs
	}
	cfg = cfg.Normalize()

	applicable := make([]model.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if !p.Date.After(asOf) {
			applicable = append(applicable, p)
		}
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Date.Before(applicable[j].Date)
	})

	switch loan.InterestType {
	case valueobject.InterestTypeSimple:
		return simpleBalance(loan, applicable, asOf, cfg)
	case valueobject.InterestTypeAmortized:
		return amortizedBalance(loan, applicable, asOf, cfg)
	case valueobject.InterestTypeInterestOnly:
		return interestOnlyBalance(loan, applicable, asOf, cfg)
	default:
		return model.BalanceSnapshot{}, valueobject.NewCalculationError(
			"calculate balance", valueobject.CalcUnsupportedType,
			"unsupported interest calculation type "+loan.InterestType.String(),
		)
	}
}

// AnalyzePaymentImpact simulates one additional payment on the given date
// and reports how it would change the balance and its principal/interest
// allocation. For amortized loans it also estimates, from the original
// schedule, how many fewer periods remain and how much scheduled interest
// the borrower would skip.
func (e *Engine) AnalyzePaymentImpact(
	loan model.LoanInput,
	amount decimal.Decimal,
	date time.Time,
	payments []model.PaymentRecord,
	cfg valueobject.CalculationConfig,
) (model.PaymentImpact, error) {
	if errs := ValidateCalculationParams(amount, date); len(errs) > 0 {
		return model.PaymentImpact{}, errs
	}
	cfg = cfg.Normalize()

	before, err := e.CalculateCurrentBalance(loan, payments, date, cfg)
	if err != nil {
		return model.PaymentImpact{}, err
	}

	simulated := make([]model.PaymentRecord, 0, len(payments)+1)
	simulated = append(simulated, payments...)
	simulated = append(simulated, model.PaymentRecord{
		LoanID: loan.ID,
		Amount: amount,
		Date:   date,
	})

	after, err := e.CalculateCurrentBalance(loan, simulated, date, cfg)
	if err != nil {
		return model.PaymentImpact{}, err
	}

	principalApplied := clampZero(after.PrincipalPaid.Sub(before.PrincipalPaid))
	interestApplied := clampZero(after.InterestPaid.Sub(before.InterestPaid))

	impact := model.PaymentImpact{
		LoanID:           loan.ID,
		ProposedAmount:   amount,
		PaymentDate:      date,
		BalanceBefore:    before.CurrentBalance,
		BalanceAfter:     after.CurrentBalance,
		PrincipalApplied: RoundMoney(principalApplied, cfg),
		InterestApplied:  RoundMoney(interestApplied, cfg),
		InterestSaved:    decimal.Zero,
	}

	if loan.InterestType.Equal(valueobject.InterestTypeAmortized) {
		schedule, err := amortizedSchedule(loan, cfg)
		if err != nil {
			return model.PaymentImpact{}, err
		}
		reduced, saved := scheduleReduction(schedule.Entries, before.CurrentBalance, after.CurrentBalance)
		impact.PeriodsReduced = reduced
		impact.InterestSaved = RoundMoney(saved, cfg)
		impact.EstimateAvailable = true
	}

	return impact, nil
}

// scheduleReduction compares where two balances sit in the original
// schedule: a period still lies ahead of a balance when its ending balance
// is below it. The periods ahead of the old balance but not the new one are
// skipped, and their scheduled interest is the estimated saving.
func scheduleReduction(entries []model.ScheduleEntry, balanceBefore, balanceAfter decimal.Decimal) (int, decimal.Decimal) {
	reduced := 0
	saved := decimal.Zero
	for _, entry := range entries {
		if entry.RemainingBalance.LessThan(balanceBefore) && !entry.RemainingBalance.LessThan(balanceAfter) {
			reduced++
			saved = saved.Add(entry.Interest)
		}
	}
	return reduced, saved
}

// PeriodicPaymentAmount returns the fixed per-period payment for the loan's
// interest type without generating the full schedule.
func (e *Engine) PeriodicPaymentAmount(loan model.LoanInput, cfg valueobject.CalculationConfig) (decimal.Decimal, error) {
	if errs := ValidateLoanInput(loan); len(errs) > 0 {
		return decimal.Zero, errs
	}
	cfg = cfg.Normalize()

	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return decimal.Zero, err
	}

	switch loan.InterestType {
	case valueobject.InterestTypeSimple:
		total := loan.Principal.Add(simpleTotalInterest(loan, cfg))
		return RoundMoney(total.Div(decimal.NewFromInt(int64(n))), cfg), nil
	case valueobject.InterestTypeAmortized:
		rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
		if err != nil {
			return decimal.Zero, err
		}
		return annuityPayment(loan.Principal, rate, n, cfg)
	case valueobject.InterestTypeInterestOnly:
		rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
		if err != nil {
			return decimal.Zero, err
		}
		return RoundMoney(loan.Principal.Mul(rate), cfg), nil
	default:
		return decimal.Zero, valueobject.NewCalculationError(
			"periodic payment", valueobject.CalcUnsupportedType,
			"unsupported interest calculation type "+loan.InterestType.String(),
		)
	}
}

// RemainingBalanceAt returns the closed-form outstanding balance of an
// amortized loan after the given number of periods.
func (e *Engine) RemainingBalanceAt(loan model.LoanInput, period int, cfg valueobject.CalculationConfig) (decimal.Decimal, error) {
	if errs := ValidateLoanInput(loan); len(errs) > 0 {
		return decimal.Zero, errs
	}
	if !loan.InterestType.Equal(valueobject.InterestTypeAmortized) {
		return decimal.Zero, valueobject.NewCalculationError(
			"remaining balance", valueobject.CalcUnsupportedType,
			"closed-form balance applies to amortized loans only",
		)
	}
	cfg = cfg.Normalize()

	rate, err := PeriodicRate(loan.AnnualRatePercent, loan.Frequency)
	if err != nil {
		return decimal.Zero, err
	}
	n, err := TotalPayments(loan.TermMonths, loan.Frequency)
	if err != nil {
		return decimal.Zero, err
	}
	return amortizedRemainingAt(loan.Principal, rate, n, period, cfg)
}

// PrincipalFromPayment derives the principal financed by a known fixed
// payment at the given rate and term (the algebraic inverse of the annuity
// formula).
func (e *Engine) PrincipalFromPayment(
	payment, annualRatePercent decimal.Decimal,
	termMonths int,
	freq valueobject.PaymentFrequency,
	cfg valueobject.CalculationConfig,
) (decimal.Decimal, error) {
	cfg = cfg.Normalize()

	rate, err := PeriodicRate(annualRatePercent, freq)
	if err != nil {
		return decimal.Zero, err
	}
	n, err := TotalPayments(termMonths, freq)
	if err != nil {
		return decimal.Zero, err
	}
	return principalFromPayment(payment, rate, n, cfg)
}
