package usecase

import (
	"context"
	"fmt"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// AnalyzeImpactUseCase answers "what would this extra payment change?"
// without recording anything.
type AnalyzeImpactUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
	engine      *calc.Engine
}

// NewAnalyzeImpactUseCase wires dependencies.
func NewAnalyzeImpactUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	engine *calc.Engine,
) *AnalyzeImpactUseCase {
	return &AnalyzeImpactUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		engine:      engine,
	}
}

// Execute simulates the proposed payment against the loan's history.
func (uc *AnalyzeImpactUseCase) Execute(
	ctx context.Context,
	req dto.AnalyzeImpactRequest,
) (dto.ImpactResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.ImpactResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.ImpactResponse{}, fmt.Errorf("find payments: %w", err)
	}

	impact, err := uc.engine.AnalyzePaymentImpact(loan, req.Amount, req.Date, payments, valueobject.DefaultCalculationConfig())
	if err != nil {
		return dto.ImpactResponse{}, fmt.Errorf("analyze impact: %w", err)
	}

	return dto.FromImpact(impact), nil
}
