package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"loanhub/api/internal/config"
	"loanhub/api/internal/models"
	"loanhub/api/internal/repository"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTSecret:       "test-secret",
			TokenTTL:        time.Hour,
			BcryptCost:      4,
			SignatureSecret: "seal-secret",
			OfficerEmails:   []string{"officer@bank.in"},
		},
	}
}

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

type fakeLoanStore struct {
	loans []models.Loan
}

func (f *fakeLoanStore) Create(_ context.Context, loan models.Loan) error {
	loan.CreatedAt = time.Now()
	loan.UpdatedAt = loan.CreatedAt
	f.loans = append(f.loans, loan)
	return nil
}

func (f *fakeLoanStore) GetByID(_ context.Context, id string) (models.Loan, error) {
	for _, l := range f.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Loan{}, repository.ErrLoanNotFound
}

func (f *fakeLoanStore) List(_ context.Context) ([]models.Loan, error) {
	return append([]models.Loan(nil), f.loans...), nil
}

func (f *fakeLoanStore) UpdateStatus(_ context.Context, id string, status models.LoanStatus) (models.Loan, error) {
	for i, l := range f.loans {
		if l.ID == id {
			f.loans[i].Status = status
			f.loans[i].UpdatedAt = time.Now()
			return f.loans[i], nil
		}
	}
	return models.Loan{}, repository.ErrLoanNotFound
}

func (f *fakeLoanStore) CountByStatus(_ context.Context) (map[models.LoanStatus]int, error) {
	counts := make(map[models.LoanStatus]int)
	for _, l := range f.loans {
		counts[l.Status]++
	}
	return counts, nil
}

type fakeDocumentStore struct {
	docs []models.LoanDocument
}

func (f *fakeDocumentStore) Create(_ context.Context, doc models.LoanDocument) error {
	doc.CreatedAt = time.Now()
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocumentStore) ListByLoan(_ context.Context, loanID string) ([]models.LoanDocument, error) {
	var out []models.LoanDocument
	for _, d := range f.docs {
		if d.LoanID == loanID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeBlobStore struct {
	objects map[string][]byte
}

func (f *fakeBlobStore) Bucket() string { return "test-bucket" }

func (f *fakeBlobStore) Put(_ context.Context, bucket string, objectKey string, reader io.Reader, size int64, contentType string) error {
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[bucket+"/"+objectKey] = data
	return nil
}

type fakeGenerator struct {
	lastPrompt string
	response   string
	err        error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }
