package calc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

func TestInterestOnlySchedule_Balloon(t *testing.T) {
	engine := calc.NewEngine()
	loan := testLoan("50000", "8", 60, valueobject.InterestTypeInterestOnly)

	schedule, err := engine.GeneratePaymentSchedule(loan, calc.ScheduleOptions{})
	require.NoError(t, err)

	assert.Equal(t, "333.33", schedule.PeriodicPayment.StringFixed(2))
	require.Len(t, schedule.Entries, 60)

	// Every period before the last pays interest only, principal untouched.
	for _, entry := range schedule.Entries[:59] {
		assert.Equal(t, "333.33", entry.Payment.StringFixed(2))
		assert.True(t, entry.Principal.IsZero())
		assert.Equal(t, "50000.00", entry.RemainingBalance.StringFixed(2))
	}

	last := schedule.Entries[59]
	assert.Equal(t, "50333.33", last.Payment.StringFixed(2))
	assert.Equal(t, "50000.00", last.Principal.StringFixed(2))
	assert.True(t, last.RemainingBalance.IsZero())
	assert.Equal(t, "19999.80", schedule.TotalInterest.StringFixed(2))
	assert.Equal(t, "69999.80", schedule.TotalCost.StringFixed(2))
}

func TestInterestOnlyBalance_ExcessReducesPrincipal(t *testing.T) {
	engine := calc.NewEngine()
	loan := testLoan("50000", "8", 60, valueobject.InterestTypeInterestOnly)
	asOf := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	payments := []model.PaymentRecord{
		payment("500", testStart.AddDate(0, 1, 0)),
		payment("500", testStart.AddDate(0, 2, 0)),
		payment("500", testStart.AddDate(0, 3, 0)),
	}

	snap, err := engine.CalculateCurrentBalance(loan, payments, asOf, valueobject.DefaultCalculationConfig())
	require.NoError(t, err)

	// Three periods have elapsed by April 10, so 3 * 333.33 = 999.99 of the
	// 1500 paid is interest and the rest chips away at principal.
	assert.Equal(t, "999.99", snap.InterestPaid.StringFixed(2))
	assert.Equal(t, "500.01", snap.PrincipalPaid.StringFixed(2))
	assert.Equal(t, "49499.99", snap.CurrentBalance.StringFixed(2))
	assert.Equal(t, 3, snap.PaymentsApplied)
	assert.False(t, snap.IsPaidOff)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), snap.NextPaymentDue)
}

func TestInterestOnlyBalance_UnderpaymentKeepsPrincipalIntact(t *testing.T) {
	engine := calc.NewEngine()
	loan := testLoan("50000", "8", 60, valueobject.InterestTypeInterestOnly)
	asOf := testStart.AddDate(0, 3, 10)

	payments := []model.PaymentRecord{
		payment("200", testStart.AddDate(0, 1, 0)),
	}

	snap, err := engine.CalculateCurrentBalance(loan, payments, asOf, valueobject.DefaultCalculationConfig())
	require.NoError(t, err)

	assert.Equal(t, "50000.00", snap.CurrentBalance.StringFixed(2))
	assert.Equal(t, "200.00", snap.InterestPaid.StringFixed(2))
	assert.True(t, snap.PrincipalPaid.IsZero())
	assert.False(t, snap.IsPaidOff)
}

func TestInterestOnlyBalance_FullPayoff(t *testing.T) {
	engine := calc.NewEngine()
	loan := testLoan("50000", "8", 60, valueobject.InterestTypeInterestOnly)
	asOf := testStart.AddDate(0, 1, 0)

	payments := []model.PaymentRecord{
		payment("50333.33", testStart.AddDate(0, 1, 0)),
	}

	snap, err := engine.CalculateCurrentBalance(loan, payments, asOf, valueobject.DefaultCalculationConfig())
	require.NoError(t, err)

	assert.True(t, snap.CurrentBalance.IsZero())
	assert.True(t, snap.IsPaidOff)
	assert.Equal(t, "333.33", snap.InterestPaid.StringFixed(2))
	assert.Equal(t, "50000.00", snap.PrincipalPaid.StringFixed(2))
}
