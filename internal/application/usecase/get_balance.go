package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/event"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// GetBalanceUseCase reconciles a loan's balance against its recorded
// payments, persists the snapshot and publishes the resulting events.
type GetBalanceUseCase struct {
	loanRepo     port.LoanRepository
	paymentRepo  port.PaymentRepository
	snapshotRepo port.BalanceSnapshotRepository
	publisher    port.EventPublisher
	engine       *calc.Engine
	logger       *slog.Logger
}

// NewGetBalanceUseCase wires dependencies.
func NewGetBalanceUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	snapshotRepo port.BalanceSnapshotRepository,
	publisher port.EventPublisher,
	engine *calc.Engine,
	logger *slog.Logger,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
		snapshotRepo: snapshotRepo,
		publisher:    publisher,
		engine:       engine,
		logger:       logger,
	}
}

// Execute computes the balance of a loan as of the given date.
func (uc *GetBalanceUseCase) Execute(
	ctx context.Context,
	req dto.GetBalanceRequest,
) (dto.BalanceResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find payments: %w", err)
	}

	snapshot, err := uc.engine.CalculateCurrentBalance(loan, payments, asOf, valueobject.DefaultCalculationConfig())
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("calculate balance: %w", err)
	}

	if err := uc.snapshotRepo.Save(ctx, snapshot); err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("save snapshot: %w", err)
	}

	evts := []event.DomainEvent{
		event.NewBalanceCalculated(loan.ID, snapshot.CurrentBalance, snapshot.TotalPaid, snapshot.AsOf, snapshot.IsPaidOff),
	}
	if snapshot.IsPaidOff {
		evts = append(evts, event.NewLoanPaidOff(loan.ID, snapshot.TotalPaid, snapshot.AsOf))
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromBalance(snapshot), nil
}
