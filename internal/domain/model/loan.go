package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// LoanInput is the pure value describing a loan for calculation purposes.
// The ID is opaque and used only to correlate results; the engine keeps no
// state between calls.
type LoanInput struct {
	ID                string
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	StartDate         time.Time
	EndDate           time.Time
	TermMonths        int
	InterestType      valueobject.InterestType
	Frequency         valueobject.PaymentFrequency
	CurrentBalance    decimal.Decimal
}
