package service

import (
	"context"
	"io"

	"loanhub/api/internal/models"
)

// Narrow store abstractions so services can be exercised against in-memory
// fakes. The pgx repositories in internal/repository are the production
// implementations.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type LoanStore interface {
	Create(ctx context.Context, loan models.Loan) error
	GetByID(ctx context.Context, id string) (models.Loan, error)
	List(ctx context.Context) ([]models.Loan, error)
	UpdateStatus(ctx context.Context, id string, status models.LoanStatus) (models.Loan, error)
	CountByStatus(ctx context.Context) (map[models.LoanStatus]int, error)
}

type DocumentStore interface {
	Create(ctx context.Context, doc models.LoanDocument) error
	ListByLoan(ctx context.Context, loanID string) ([]models.LoanDocument, error)
}

type BlobStore interface {
	Bucket() string
	Put(ctx context.Context, bucket string, objectKey string, reader io.Reader, size int64, contentType string) error
}

// Generator is the outbound edge to the generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
