package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// GenerateScheduleRequest asks for the payment schedule of a loan.
type GenerateScheduleRequest struct {
	LoanID           string    `json:"loan_id"`
	RemainingOnly    bool      `json:"remaining_only"`
	ExcludeDueBefore time.Time `json:"exclude_due_before"`
	MaxEntries       int       `json:"max_entries"`
	SingleRepayment  bool      `json:"single_repayment"`
	RoundingMode     string    `json:"rounding_mode,omitempty"`
}

// GetBalanceRequest asks for the reconciled balance of a loan.
type GetBalanceRequest struct {
	LoanID string    `json:"loan_id"`
	AsOf   time.Time `json:"as_of"`
}

// AnalyzeImpactRequest asks what a hypothetical payment would change.
type AnalyzeImpactRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// RecordPaymentRequest records a real payment against a loan.
type RecordPaymentRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleEntryResponse represents a single schedule period.
type ScheduleEntryResponse struct {
	Period              int             `json:"period"`
	DueDate             time.Time       `json:"due_date"`
	Payment             decimal.Decimal `json:"payment"`
	Principal           decimal.Decimal `json:"principal"`
	Interest            decimal.Decimal `json:"interest"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
}

// ScheduleResponse is the external representation of a payment schedule.
type ScheduleResponse struct {
	LoanID          string                  `json:"loan_id"`
	InterestType    string                  `json:"interest_type"`
	PeriodicPayment decimal.Decimal         `json:"periodic_payment"`
	TotalInterest   decimal.Decimal         `json:"total_interest"`
	TotalCost       decimal.Decimal         `json:"total_cost"`
	Entries         []ScheduleEntryResponse `json:"entries"`
}

// BalanceResponse is the external representation of a balance snapshot.
type BalanceResponse struct {
	LoanID          string          `json:"loan_id"`
	AsOf            time.Time       `json:"as_of"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	PrincipalPaid   decimal.Decimal `json:"principal_paid"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PaymentsApplied int             `json:"payments_applied"`
	NextPaymentDue  time.Time       `json:"next_payment_due,omitzero"`
	IsPaidOff       bool            `json:"is_paid_off"`
}

// ImpactResponse is the external representation of a payment-impact analysis.
type ImpactResponse struct {
	LoanID            string          `json:"loan_id"`
	ProposedAmount    decimal.Decimal `json:"proposed_amount"`
	PaymentDate       time.Time       `json:"payment_date"`
	BalanceBefore     decimal.Decimal `json:"balance_before"`
	BalanceAfter      decimal.Decimal `json:"balance_after"`
	PrincipalApplied  decimal.Decimal `json:"principal_applied"`
	InterestApplied   decimal.Decimal `json:"interest_applied"`
	PeriodsReduced    int             `json:"periods_reduced"`
	InterestSaved     decimal.Decimal `json:"interest_saved"`
	EstimateAvailable bool            `json:"estimate_available"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

// FromSchedule maps a domain schedule to its response DTO.
func FromSchedule(s model.PaymentSchedule) ScheduleResponse {
	entries := make([]ScheduleEntryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, ScheduleEntryResponse{
			Period:              e.Period,
			DueDate:             e.DueDate,
			Payment:             e.Payment,
			Principal:           e.Principal,
			Interest:            e.Interest,
			RemainingBalance:    e.RemainingBalance,
			CumulativePrincipal: e.CumulativePrincipal,
			CumulativeInterest:  e.CumulativeInterest,
		})
	}
	return ScheduleResponse{
		LoanID:          s.LoanID,
		InterestType:    s.InterestType.String(),
		PeriodicPayment: s.PeriodicPayment,
		TotalInterest:   s.TotalInterest,
		TotalCost:       s.TotalCost,
		Entries:         entries,
	}
}

// FromBalance maps a domain balance snapshot to its response DTO.
func FromBalance(b model.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		LoanID:          b.LoanID,
		AsOf:            b.AsOf,
		CurrentBalance:  b.CurrentBalance,
		PrincipalPaid:   b.PrincipalPaid,
		InterestPaid:    b.InterestPaid,
		TotalPaid:       b.TotalPaid,
		PaymentsApplied: b.PaymentsApplied,
		NextPaymentDue:  b.NextPaymentDue,
		IsPaidOff:       b.IsPaidOff,
	}
}

// FromImpact maps a domain payment impact to its response DTO.
func FromImpact(i model.PaymentImpact) ImpactResponse {
	return ImpactResponse{
		LoanID:            i.LoanID,
		ProposedAmount:    i.ProposedAmount,
		PaymentDate:       i.PaymentDate,
		BalanceBefore:     i.BalanceBefore,
		BalanceAfter:      i.BalanceAfter,
		PrincipalApplied:  i.PrincipalApplied,
		InterestApplied:   i.InterestApplied,
		PeriodsReduced:    i.PeriodsReduced,
		InterestSaved:     i.InterestSaved,
		EstimateAvailable: i.EstimateAvailable,
	}
}
