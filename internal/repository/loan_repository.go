package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loanhub/api/internal/models"
)

var ErrLoanNotFound = errors.New("loan not found")

type LoanRepository struct {
	pool *pgxpool.Pool
}

func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

func (r *LoanRepository) Create(ctx context.Context, loan models.Loan) error {
	const query = `
		INSERT INTO loans (
			id, applicant_id, amount, tenure, income, purpose, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		loan.ID,
		loan.ApplicantID,
		loan.Amount,
		loan.Tenure,
		loan.Income,
		loan.Purpose,
		loan.Status,
	)
	return err
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (models.Loan, error) {
	const query = `
		SELECT id, applicant_id, amount, tenure, income, purpose, status, created_at, updated_at
		FROM loans WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	loan, err := scanLoan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Loan{}, ErrLoanNotFound
		}
		return models.Loan{}, err
	}
	return loan, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]models.Loan, error) {
	const query = `
		SELECT id, applicant_id, amount, tenure, income, purpose, status, created_at, updated_at
		FROM loans
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// UpdateStatus sets the status and returns the updated record. Setting the
// same status again is a no-op update, not an error.
func (r *LoanRepository) UpdateStatus(ctx context.Context, id string, status models.LoanStatus) (models.Loan, error) {
	const query = `
		UPDATE loans SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, applicant_id, amount, tenure, income, purpose, status, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query, id, status)
	loan, err := scanLoan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Loan{}, ErrLoanNotFound
		}
		return models.Loan{}, err
	}
	return loan, nil
}

func (r *LoanRepository) CountByStatus(ctx context.Context) (map[models.LoanStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM loans GROUP BY status`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.LoanStatus]int)
	for rows.Next() {
		var status models.LoanStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanLoan(row pgx.Row) (models.Loan, error) {
	var loan models.Loan
	err := row.Scan(
		&loan.ID,
		&loan.ApplicantID,
		&loan.Amount,
		&loan.Tenure,
		&loan.Income,
		&loan.Purpose,
		&loan.Status,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	return loan, err
}
