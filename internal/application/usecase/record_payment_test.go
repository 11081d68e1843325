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
	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

func TestRecordPayment_SavesAndRecomputes(t *testing.T) {
	loan := storedLoan()
	date := testStart.AddDate(0, 1, 0)
	amount := decimal.RequireFromString("1000")

	var savedPayment model.PaymentRecord
	payments := &mockPaymentRepo{
		saveFn: func(_ context.Context, p model.PaymentRecord) error {
			savedPayment = p
			return nil
		},
		findByLoanIDFn: func(context.Context, string) ([]model.PaymentRecord, error) {
			return []model.PaymentRecord{{ID: "p1", LoanID: loan.ID, Amount: amount, Date: date}}, nil
		},
	}

	var invalidated string
	cache := noopCache()
	cache.invalidateFn = func(_ context.Context, loanID string) error {
		invalidated = loanID
		return nil
	}

	publisher := &mockEventPublisher{}

	uc := usecase.NewRecordPaymentUseCase(
		loanRepoWith(loan), payments, cache, publisher,
		calc.NewEngine(), discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), dto.RecordPaymentRequest{
		LoanID: loan.ID,
		Amount: amount,
		Date:   date,
	})
	require.NoError(t, err)

	require.NotEmpty(t, savedPayment.ID, "a payment id must be assigned")
	assert.Equal(t, loan.ID, savedPayment.LoanID)
	assert.True(t, savedPayment.Amount.Equal(amount))

	assert.Equal(t, loan.ID, invalidated, "cached schedules must be invalidated")

	// 1000 against a fresh 10000 at 6%: 50.00 interest, 950.00 principal.
	assert.Equal(t, "9050.00", resp.CurrentBalance.StringFixed(2))
	assert.Equal(t, "950.00", resp.PrincipalPaid.StringFixed(2))
	assert.Equal(t, "50.00", resp.InterestPaid.StringFixed(2))
	assert.False(t, resp.IsPaidOff)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "loanengine.payment.recorded", publisher.published[0].EventType())
}

func TestRecordPayment_PayoffPublishesPaidOff(t *testing.T) {
	loan := storedLoan()
	date := testStart.AddDate(0, 1, 0)
	amount := decimal.RequireFromString("10050")

	payments := &mockPaymentRepo{
		saveFn: func(context.Context, model.PaymentRecord) error { return nil },
		findByLoanIDFn: func(context.Context, string) ([]model.PaymentRecord, error) {
			return []model.PaymentRecord{{ID: "p1", LoanID: loan.ID, Amount: amount, Date: date}}, nil
		},
	}

	publisher := &mockEventPublisher{}

	uc := usecase.NewRecordPaymentUseCase(
		loanRepoWith(loan), payments, noopCache(), publisher,
		calc.NewEngine(), discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), dto.RecordPaymentRequest{
		LoanID: loan.ID,
		Amount: amount,
		Date:   date,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsPaidOff)

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "loanengine.payment.recorded", publisher.published[0].EventType())
	assert.Equal(t, "loanengine.loan.paid_off", publisher.published[1].EventType())
}

func TestRecordPayment_RejectsInvalidParams(t *testing.T) {
	repo := &mockLoanRepo{
		findByIDFn: func(context.Context, string) (model.LoanInput, error) {
			t.Fatal("repository must not be queried for invalid input")
			return model.LoanInput{}, nil
		},
	}

	uc := usecase.NewRecordPaymentUseCase(
		repo, &mockPaymentRepo{}, noopCache(), &mockEventPublisher{},
		calc.NewEngine(), discardLogger(),
	)

	_, err := uc.Execute(context.Background(), dto.RecordPaymentRequest{
		LoanID: "loan-001",
		Amount: decimal.Zero,
		Date:   testStart,
	})
	require.Error(t, err)

	var verrs valueobject.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.HasCode(valueobject.CodeAmountNotPositive))
}
