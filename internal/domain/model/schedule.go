package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// ScheduleEntry is an immutable value object representing one period in a
// payment schedule.
type ScheduleEntry struct {
	Period              int             `json:"period"`
	DueDate             time.Time       `json:"due_date"`
	Payment             decimal.Decimal `json:"payment"`
	Principal           decimal.Decimal `json:"principal"`
	Interest            decimal.Decimal `json:"interest"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
}

// PaymentSchedule is the full set of scheduled payments for a loan. It is
// recomputed on every call and carries no timestamps, so identical input
// yields identical output.
type PaymentSchedule struct {
	LoanID          string                   `json:"loan_id"`
	InterestType    valueobject.InterestType `json:"interest_type"`
	PeriodicPayment decimal.Decimal          `json:"periodic_payment"`
	TotalInterest   decimal.Decimal          `json:"total_interest"`
	TotalCost       decimal.Decimal          `json:"total_cost"`
	Entries         []ScheduleEntry          `json:"entries"`
}
