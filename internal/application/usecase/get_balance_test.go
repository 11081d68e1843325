package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/application/usecase"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/event"
	"github.com/loanworks/loanengine/internal/domain/model"
)

func paymentRepoWith(records ...model.PaymentRecord) *mockPaymentRepo {
	return &mockPaymentRepo{
		findByLoanIDFn: func(context.Context, string) ([]model.PaymentRecord, error) {
			return records, nil
		},
	}
}

func TestGetBalance_ReconcilesAndPersists(t *testing.T) {
	loan := storedLoan()
	asOf := testStart.AddDate(0, 2, 0)

	payments := []model.PaymentRecord{
		{ID: "p1", LoanID: loan.ID, Amount: decimal.RequireFromString("860.66"), Date: testStart.AddDate(0, 1, 0)},
	}

	var saved model.BalanceSnapshot
	snapshots := &mockSnapshotRepo{
		saveFn: func(_ context.Context, s model.BalanceSnapshot) error {
			saved = s
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	uc := usecase.NewGetBalanceUseCase(
		loanRepoWith(loan), paymentRepoWith(payments...), snapshots, publisher,
		calc.NewEngine(), discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), dto.GetBalanceRequest{LoanID: loan.ID, AsOf: asOf})
	require.NoError(t, err)

	// One annuity payment on a 10000 at 6%: 50.00 interest, 810.66 principal.
	assert.Equal(t, "9189.34", resp.CurrentBalance.StringFixed(2))
	assert.Equal(t, "810.66", resp.PrincipalPaid.StringFixed(2))
	assert.Equal(t, "50.00", resp.InterestPaid.StringFixed(2))
	assert.Equal(t, 1, resp.PaymentsApplied)
	assert.False(t, resp.IsPaidOff)

	assert.True(t, saved.CurrentBalance.Equal(resp.CurrentBalance), "persisted snapshot must match the response")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "loanengine.balance.calculated", publisher.published[0].EventType())
	assert.Equal(t, loan.ID, publisher.published[0].AggregateID())
}

func TestGetBalance_PaidOffPublishesBothEvents(t *testing.T) {
	loan := storedLoan()
	asOf := testStart.AddDate(0, 1, 0)

	payments := []model.PaymentRecord{
		{ID: "p1", LoanID: loan.ID, Amount: decimal.RequireFromString("10050"), Date: asOf},
	}

	snapshots := &mockSnapshotRepo{
		saveFn: func(context.Context, model.BalanceSnapshot) error { return nil },
	}
	publisher := &mockEventPublisher{}

	uc := usecase.NewGetBalanceUseCase(
		loanRepoWith(loan), paymentRepoWith(payments...), snapshots, publisher,
		calc.NewEngine(), discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), dto.GetBalanceRequest{LoanID: loan.ID, AsOf: asOf})
	require.NoError(t, err)
	assert.True(t, resp.IsPaidOff)

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "loanengine.balance.calculated", publisher.published[0].EventType())

	paidOff, ok := publisher.published[1].(event.LoanPaidOff)
	require.True(t, ok)
	assert.Equal(t, "loanengine.loan.paid_off", paidOff.EventType())
	assert.Equal(t, "10050.00", paidOff.TotalPaid.StringFixed(2))
}

func TestGetBalance_SnapshotSaveFailureSurfaces(t *testing.T) {
	loan := storedLoan()

	snapshots := &mockSnapshotRepo{
		saveFn: func(context.Context, model.BalanceSnapshot) error {
			return errors.New("insert failed")
		},
	}

	uc := usecase.NewGetBalanceUseCase(
		loanRepoWith(loan), paymentRepoWith(), snapshots, &mockEventPublisher{},
		calc.NewEngine(), discardLogger(),
	)

	_, err := uc.Execute(context.Background(), dto.GetBalanceRequest{LoanID: loan.ID, AsOf: testStart.AddDate(0, 1, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save snapshot")
}
