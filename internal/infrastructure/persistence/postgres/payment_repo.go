package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loanworks/loanengine/internal/domain/model"
	pkgpostgres "github.com/loanworks/loanengine/pkg/postgres"
)

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	db pkgpostgres.Querier
}

// NewPaymentRepo creates a PostgreSQL-backed payment repository.
func NewPaymentRepo(db pkgpostgres.Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Save inserts a payment record. Payments are immutable; there is no update
// path.
func (r *PaymentRepo) Save(ctx context.Context, payment model.PaymentRecord) error {
	query := `
		INSERT INTO payments (id, loan_id, amount, payment_date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query,
		payment.ID, payment.LoanID, payment.Amount, payment.Date,
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

// FindByLoanID returns all payments for a loan ordered by payment date, with
// insertion order (the serial sequence) breaking same-date ties.
func (r *PaymentRepo) FindByLoanID(ctx context.Context, loanID string) ([]model.PaymentRecord, error) {
	query := `
		SELECT id, loan_id, amount, payment_date
		FROM payments
		WHERE loan_id = $1
		ORDER BY payment_date ASC, seq ASC
	`
	rows, err := r.db.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]model.PaymentRecord, error) {
	var payments []model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		if err := rows.Scan(&p.ID, &p.LoanID, &p.Amount, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
