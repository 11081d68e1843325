package calc_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testLoan(principal, rate string, termMonths int, interestType valueobject.InterestType) model.LoanInput {
	p := decimal.RequireFromString(principal)
	return model.LoanInput{
		ID:                "loan-001",
		Principal:         p,
		AnnualRatePercent: decimal.RequireFromString(rate),
		StartDate:         testStart,
		EndDate:           testStart.AddDate(0, termMonths, 0),
		TermMonths:        termMonths,
		InterestType:      interestType,
		Frequency:         valueobject.FrequencyMonthly,
		CurrentBalance:    p,
	}
}

func payment(amount string, date time.Time) model.PaymentRecord {
	return model.PaymentRecord{
		LoanID: "loan-001",
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
