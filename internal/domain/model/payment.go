package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is an immutable record of a payment made against a loan.
// Reconciliation applies payments in ascending date order; payments sharing
// a date keep their input order (stable sort).
type PaymentRecord struct {
	ID     string
	LoanID string
	Amount decimal.Decimal
	Date   time.Time
}
