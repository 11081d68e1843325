package port

import (
	"context"
	"errors"
	"time"

	"github.com/loanworks/loanengine/internal/domain/event"
	"github.com/loanworks/loanengine/internal/domain/model"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository loads and stores loan calculation inputs.
type LoanRepository interface {
	Save(ctx context.Context, loan model.LoanInput) error
	FindByID(ctx context.Context, id string) (model.LoanInput, error)
}

// PaymentRepository loads and stores payment records.
type PaymentRepository interface {
	Save(ctx context.Context, payment model.PaymentRecord) error
	FindByLoanID(ctx context.Context, loanID string) ([]model.PaymentRecord, error)
}

// BalanceSnapshotRepository persists reconciliation results for the
// surrounding application; the engine itself never writes.
type BalanceSnapshotRepository interface {
	Save(ctx context.Context, snapshot model.BalanceSnapshot) error
	FindLatest(ctx context.Context, loanID string) (model.BalanceSnapshot, error)
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// ScheduleCache stores rendered schedules keyed by loan and option
// fingerprint. Misses are not errors.
type ScheduleCache interface {
	Get(ctx context.Context, key string) (model.PaymentSchedule, bool, error)
	Set(ctx context.Context, key string, schedule model.PaymentSchedule, ttl time.Duration) error
	InvalidateLoan(ctx context.Context, loanID string) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
