package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentImpact describes the effect of a hypothetical additional payment.
// PeriodsReduced and InterestSaved are estimated from the original schedule
// and are populated for amortized loans only.
type PaymentImpact struct {
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
