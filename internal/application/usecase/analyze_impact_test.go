package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/application/usecase"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/port"
)

func TestAnalyzeImpact_SimulatesWithoutRecording(t *testing.T) {
	loan := storedLoan()
	date := testStart.AddDate(0, 1, 0)

	uc := usecase.NewAnalyzeImpactUseCase(loanRepoWith(loan), paymentRepoWith(), calc.NewEngine())

	resp, err := uc.Execute(context.Background(), dto.AnalyzeImpactRequest{
		LoanID: loan.ID,
		Amount: decimal.RequireFromString("2000"),
		Date:   date,
	})
	require.NoError(t, err)

	assert.Equal(t, "10000.00", resp.BalanceBefore.StringFixed(2))
	assert.Equal(t, "8050.00", resp.BalanceAfter.StringFixed(2))
	assert.Equal(t, "1950.00", resp.PrincipalApplied.StringFixed(2))
	assert.Equal(t, "50.00", resp.InterestApplied.StringFixed(2))
	assert.True(t, resp.EstimateAvailable)
	assert.Equal(t, 2, resp.PeriodsReduced)
	assert.Equal(t, "95.95", resp.InterestSaved.StringFixed(2))
}

func TestAnalyzeImpact_UnknownLoan(t *testing.T) {
	uc := usecase.NewAnalyzeImpactUseCase(loanRepoWith(storedLoan()), paymentRepoWith(), calc.NewEngine())

	_, err := uc.Execute(context.Background(), dto.AnalyzeImpactRequest{
		LoanID: "missing",
		Amount: decimal.RequireFromString("100"),
		Date:   testStart,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
