package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/loanworks/loanengine/internal/domain/event"
	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockLoanRepo struct {
	saveFn     func(ctx context.Context, loan model.LoanInput) error
	findByIDFn func(ctx context.Context, id string) (model.LoanInput, error)
}

func (m *mockLoanRepo) Save(ctx context.Context, loan model.LoanInput) error {
	return m.saveFn(ctx, loan)
}

func (m *mockLoanRepo) FindByID(ctx context.Context, id string) (model.LoanInput, error) {
	return m.findByIDFn(ctx, id)
}

type mockPaymentRepo struct {
	saveFn         func(ctx context.Context, payment model.PaymentRecord) error
	findByLoanIDFn func(ctx context.Context, loanID string) ([]model.PaymentRecord, error)
}

func (m *mockPaymentRepo) Save(ctx context.Context, payment model.PaymentRecord) error {
	return m.saveFn(ctx, payment)
}

func (m *mockPaymentRepo) FindByLoanID(ctx context.Context, loanID string) ([]model.PaymentRecord, error) {
	return m.findByLoanIDFn(ctx, loanID)
}

type mockSnapshotRepo struct {
	saveFn       func(ctx context.Context, snapshot model.BalanceSnapshot) error
	findLatestFn func(ctx context.Context, loanID string) (model.BalanceSnapshot, error)
}

func (m *mockSnapshotRepo) Save(ctx context.Context, snapshot model.BalanceSnapshot) error {
	return m.saveFn(ctx, snapshot)
}

func (m *mockSnapshotRepo) FindLatest(ctx context.Context, loanID string) (model.BalanceSnapshot, error) {
	return m.findLatestFn(ctx, loanID)
}

type mockScheduleCache struct {
	getFn        func(ctx context.Context, key string) (model.PaymentSchedule, bool, error)
	setFn        func(ctx context.Context, key string, schedule model.PaymentSchedule, ttl time.Duration) error
	invalidateFn func(ctx context.Context, loanID string) error
}

func (m *mockScheduleCache) Get(ctx context.Context, key string) (model.PaymentSchedule, bool, error) {
	return m.getFn(ctx, key)
}

func (m *mockScheduleCache) Set(ctx context.Context, key string, schedule model.PaymentSchedule, ttl time.Duration) error {
	return m.setFn(ctx, key, schedule, ttl)
}

func (m *mockScheduleCache) InvalidateLoan(ctx context.Context, loanID string) error {
	return m.invalidateFn(ctx, loanID)
}

// noopCache always misses and accepts every write.
func noopCache() *mockScheduleCache {
	return &mockScheduleCache{
		getFn: func(context.Context, string) (model.PaymentSchedule, bool, error) {
			return model.PaymentSchedule{}, false, nil
		},
		setFn: func(context.Context, string, model.PaymentSchedule, time.Duration) error {
			return nil
		},
		invalidateFn: func(context.Context, string) error {
			return nil
		},
	}
}

type mockEventPublisher struct {
	published []event.DomainEvent
	publishFn func(ctx context.Context, events ...event.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFn != nil {
		return m.publishFn(ctx, events...)
	}
	return nil
}

var (
	_ port.LoanRepository            = (*mockLoanRepo)(nil)
	_ port.PaymentRepository         = (*mockPaymentRepo)(nil)
	_ port.BalanceSnapshotRepository = (*mockSnapshotRepo)(nil)
	_ port.ScheduleCache             = (*mockScheduleCache)(nil)
	_ port.EventPublisher            = (*mockEventPublisher)(nil)
)
