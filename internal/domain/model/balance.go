package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is a point-in-time view of a loan after reconciling its
// recorded payments. CurrentBalance is the outstanding principal.
type BalanceSnapshot struct {
	LoanID          string          `json:"loan_id"`
	AsOf            time.Time       `json:"as_of"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	PrincipalPaid   decimal.Decimal `json:"principal_paid"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PaymentsApplied int             `json:"payments_applied"`
	NextPaymentDue  time.Time       `json:"next_payment_due"`
	IsPaidOff       bool            `json:"is_paid_off"`
}
