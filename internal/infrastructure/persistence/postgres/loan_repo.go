package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/model"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
	pkgpostgres "github.com/loanworks/loanengine/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	db pkgpostgres.Querier
}

// NewLoanRepo creates a PostgreSQL-backed loan repository.
func NewLoanRepo(db pkgpostgres.Querier) *LoanRepo {
	return &LoanRepo{db: db}
}

// Save upserts a loan description.
func (r *LoanRepo) Save(ctx context.Context, loan model.LoanInput) error {
	query := `
		INSERT INTO loans (
			id, principal, annual_rate_percent, start_date, end_date,
			term_months, interest_type, payment_frequency, current_balance, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			principal           = EXCLUDED.principal,
			annual_rate_percent = EXCLUDED.annual_rate_percent,
			start_date          = EXCLUDED.start_date,
			end_date            = EXCLUDED.end_date,
			term_months         = EXCLUDED.term_months,
			interest_type       = EXCLUDED.interest_type,
			payment_frequency   = EXCLUDED.payment_frequency,
			current_balance     = EXCLUDED.current_balance,
			updated_at          = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		loan.ID, loan.Principal, loan.AnnualRatePercent, loan.StartDate, loan.EndDate,
		loan.TermMonths, loan.InterestType.String(), loan.Frequency.String(),
		loan.CurrentBalance, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	return nil
}

// FindByID retrieves a loan description by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.LoanInput, error) {
	query := `
		SELECT id, principal, annual_rate_percent, start_date, end_date,
		       term_months, interest_type, payment_frequency, current_balance
		FROM loans
		WHERE id = $1
	`

	var (
		loan         model.LoanInput
		principal    decimal.Decimal
		rate         decimal.Decimal
		balance      decimal.Decimal
		interestType string
		frequency    string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&loan.ID, &principal, &rate, &loan.StartDate, &loan.EndDate,
		&loan.TermMonths, &interestType, &frequency, &balance,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanInput{}, fmt.Errorf("loan %s: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return model.LoanInput{}, fmt.Errorf("find loan: %w", err)
	}

	loan.Principal = principal
	loan.AnnualRatePercent = rate
	loan.CurrentBalance = balance

	loan.InterestType, err = valueobject.NewInterestType(interestType)
	if err != nil {
		return model.LoanInput{}, fmt.Errorf("find loan: %w", err)
	}
	loan.Frequency, err = valueobject.NewPaymentFrequency(frequency)
	if err != nil {
		return model.LoanInput{}, fmt.Errorf("find loan: %w", err)
	}

	return loan, nil
}
