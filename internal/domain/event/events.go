package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan calculation events
// ---------------------------------------------------------------------------

// PaymentRecorded is raised when a payment is recorded against a loan.
type PaymentRecorded struct {
	events.BaseEvent
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
}

func NewPaymentRecorded(loanID string, amount decimal.Decimal, paymentDate time.Time) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:   events.NewBaseEvent("loanengine.payment.recorded", loanID, "Loan"),
		Amount:      amount,
		PaymentDate: paymentDate,
	}
}

// BalanceCalculated is raised after a balance reconciliation so downstream
// consumers can persist or display the snapshot.
type BalanceCalculated struct {
	events.BaseEvent
	CurrentBalance decimal.Decimal `json:"current_balance"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	AsOf           time.Time       `json:"as_of"`
	IsPaidOff      bool            `json:"is_paid_off"`
}

func NewBalanceCalculated(loanID string, balance, totalPaid decimal.Decimal, asOf time.Time, paidOff bool) BalanceCalculated {
	return BalanceCalculated{
		BaseEvent:      events.NewBaseEvent("loanengine.balance.calculated", loanID, "Loan"),
		CurrentBalance: balance,
		TotalPaid:      totalPaid,
		AsOf:           asOf,
		IsPaidOff:      paidOff,
	}
}

// LoanPaidOff is raised when reconciliation first reports a zero balance.
// The persistence layer, not the engine, enacts the ACTIVE -> COMPLETED
// transition.
type LoanPaidOff struct {
	events.BaseEvent
	TotalPaid decimal.Decimal `json:"total_paid"`
	AsOf      time.Time       `json:"as_of"`
}

func NewLoanPaidOff(loanID string, totalPaid decimal.Decimal, asOf time.Time) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: events.NewBaseEvent("loanengine.loan.paid_off", loanID, "Loan"),
		TotalPaid: totalPaid,
		AsOf:      asOf,
	}
}
