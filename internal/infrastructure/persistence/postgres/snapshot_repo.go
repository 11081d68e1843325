package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/port"
	pkgpostgres "github.com/loanworks/loanengine/pkg/postgres"
)

// SnapshotRepo implements port.BalanceSnapshotRepository.
type SnapshotRepo struct {
	db pkgpostgres.Querier
}

// NewSnapshotRepo creates a PostgreSQL-backed balance snapshot repository.
func NewSnapshotRepo(db pkgpostgres.Querier) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Save appends a balance snapshot. Snapshots are append-only history.
func (r *SnapshotRepo) Save(ctx context.Context, s model.BalanceSnapshot) error {
	query := `
		INSERT INTO balance_snapshots (
			loan_id, as_of, current_balance, principal_paid, interest_paid,
			total_paid, payments_applied, next_payment_due, is_paid_off
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	var nextDue any
	if !s.NextPaymentDue.IsZero() {
		nextDue = s.NextPaymentDue
	}
	_, err := r.db.Exec(ctx, query,
		s.LoanID, s.AsOf, s.CurrentBalance, s.PrincipalPaid, s.InterestPaid,
		s.TotalPaid, s.PaymentsApplied, nextDue, s.IsPaidOff,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// FindLatest returns the most recent snapshot for a loan.
func (r *SnapshotRepo) FindLatest(ctx context.Context, loanID string) (model.BalanceSnapshot, error) {
	query := `
		SELECT loan_id, as_of, current_balance, principal_paid, interest_paid,
		       total_paid, payments_applied, next_payment_due, is_paid_off
		FROM balance_snapshots
		WHERE loan_id = $1
		ORDER BY as_of DESC, seq DESC
		LIMIT 1
	`
	var (
		s       model.BalanceSnapshot
		nextDue *time.Time
	)
	err := r.db.QueryRow(ctx, query, loanID).Scan(
		&s.LoanID, &s.AsOf, &s.CurrentBalance, &s.PrincipalPaid, &s.InterestPaid,
		&s.TotalPaid, &s.PaymentsApplied, &nextDue, &s.IsPaidOff,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BalanceSnapshot{}, fmt.Errorf("snapshot for loan %s: %w", loanID, port.ErrNotFound)
	}
	if err != nil {
		return model.BalanceSnapshot{}, fmt.Errorf("find snapshot: %w", err)
	}
	if nextDue != nil {
		s.NextPaymentDue = *nextDue
	}
	return s, nil
}
