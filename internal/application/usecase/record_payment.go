package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/event"
	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// RecordPaymentUseCase persists a payment, invalidates the cached schedule
// and returns the refreshed balance.
type RecordPaymentUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
	cache       port.ScheduleCache
	publisher   port.EventPublisher
	engine      *calc.Engine
	logger      *slog.Logger
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	cache port.ScheduleCache,
	publisher port.EventPublisher,
	engine *calc.Engine,
	logger *slog.Logger,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
		publisher:   publisher,
		engine:      engine,
		logger:      logger,
	}
}

// Execute validates and records a payment against a loan.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.BalanceResponse, error) {
	if errs := calc.ValidateCalculationParams(req.Amount, req.Date); len(errs) > 0 {
		return dto.BalanceResponse{}, errs
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payment := model.PaymentRecord{
		ID:     uuid.New().String(),
		LoanID: loan.ID,
		Amount: req.Amount,
		Date:   req.Date,
	}
	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("save payment: %w", err)
	}

	if cacheErr := uc.cache.InvalidateLoan(ctx, loan.ID); cacheErr != nil {
		uc.logger.WarnContext(ctx, "schedule cache invalidation failed", "loan_id", loan.ID, "error", cacheErr)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, loan.ID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find payments: %w", err)
	}

	snapshot, err := uc.engine.CalculateCurrentBalance(loan, payments, req.Date, valueobject.DefaultCalculationConfig())
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("calculate balance: %w", err)
	}

	evts := []event.DomainEvent{
		event.NewPaymentRecorded(loan.ID, payment.Amount, payment.Date),
	}
	if snapshot.IsPaidOff {
		evts = append(evts, event.NewLoanPaidOff(loan.ID, snapshot.TotalPaid, snapshot.AsOf))
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromBalance(snapshot), nil
}
