package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// GenerateScheduleUseCase produces the payment schedule for a stored loan,
// serving repeated requests from the cache.
type GenerateScheduleUseCase struct {
	loanRepo port.LoanRepository
	cache    port.ScheduleCache
	engine   *calc.Engine
	logger   *slog.Logger
	cacheTTL time.Duration
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	loanRepo port.LoanRepository,
	cache port.ScheduleCache,
	engine *calc.Engine,
	logger *slog.Logger,
	cacheTTL time.Duration,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		loanRepo: loanRepo,
		cache:    cache,
		engine:   engine,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Execute generates (or retrieves from cache) the schedule for a loan.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
) (dto.ScheduleResponse, error) {
	opts, err := scheduleOptions(req)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	key := cacheKey(req)
	if cached, ok, cacheErr := uc.cache.Get(ctx, key); cacheErr != nil {
		uc.logger.WarnContext(ctx, "schedule cache read failed", "loan_id", req.LoanID, "error", cacheErr)
	} else if ok {
		return dto.FromSchedule(cached), nil
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := uc.engine.GeneratePaymentSchedule(loan, opts)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	if cacheErr := uc.cache.Set(ctx, key, schedule, uc.cacheTTL); cacheErr != nil {
		uc.logger.WarnContext(ctx, "schedule cache write failed", "loan_id", req.LoanID, "error", cacheErr)
	}

	return dto.FromSchedule(schedule), nil
}

func scheduleOptions(req dto.GenerateScheduleRequest) (calc.ScheduleOptions, error) {
	cfg := valueobject.DefaultCalculationConfig()
	if req.RoundingMode != "" {
		mode, err := valueobject.NewRoundingMode(req.RoundingMode)
		if err != nil {
			return calc.ScheduleOptions{}, fmt.Errorf("parse rounding mode: %w", err)
		}
		cfg.Mode = mode
	}
	return calc.ScheduleOptions{
		Config:           cfg,
		RemainingOnly:    req.RemainingOnly,
		ExcludeDueBefore: req.ExcludeDueBefore,
		MaxEntries:       req.MaxEntries,
		SingleRepayment:  req.SingleRepayment,
	}, nil
}

func cacheKey(req dto.GenerateScheduleRequest) string {
	return fmt.Sprintf("schedule:%s:r%t:x%d:m%d:s%t:%s",
		req.LoanID, req.RemainingOnly, req.ExcludeDueBefore.Unix(),
		req.MaxEntries, req.SingleRepayment, req.RoundingMode,
	)
}
