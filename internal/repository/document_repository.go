package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"loanhub/api/internal/models"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func (r *DocumentRepository) Create(ctx context.Context, doc models.LoanDocument) error {
	const query = `
		INSERT INTO loan_documents (
			id, loan_id, bucket, object_key, file_name, content_type, size_bytes, checksum, signature, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.LoanID,
		doc.Bucket,
		doc.ObjectKey,
		doc.FileName,
		doc.ContentType,
		doc.SizeBytes,
		doc.Checksum,
		doc.Signature,
	)
	return err
}

func (r *DocumentRepository) ListByLoan(ctx context.Context, loanID string) ([]models.LoanDocument, error) {
	const query = `
		SELECT id, loan_id, bucket, object_key, file_name, content_type, size_bytes, checksum, signature, created_at
		FROM loan_documents
		WHERE loan_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.LoanDocument
	for rows.Next() {
		var doc models.LoanDocument
		if err := rows.Scan(
			&doc.ID,
			&doc.LoanID,
			&doc.Bucket,
			&doc.ObjectKey,
			&doc.FileName,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.Checksum,
			&doc.Signature,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
