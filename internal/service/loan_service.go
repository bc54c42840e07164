package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"loanhub/api/internal/config"
	"loanhub/api/internal/docs/sniffer"
	"loanhub/api/internal/ids"
	"loanhub/api/internal/models"
	"loanhub/api/internal/security"
)

var (
	ErrInvalidAction       = errors.New("action must be approve or reject")
	ErrInvalidLoanID       = errors.New("invalid loan id")
	ErrUnsupportedDocument = errors.New("unsupported document type")
)

type LoanService struct {
	loans LoanStore
	docs  DocumentStore
	blobs BlobStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewLoanService(loans LoanStore, docs DocumentStore, blobs BlobStore, cfg *config.AppConfig, log zerolog.Logger) *LoanService {
	return &LoanService{
		loans: loans,
		docs:  docs,
		blobs: blobs,
		cfg:   cfg,
		log:   log,
	}
}

type ApplyInput struct {
	ApplicantID string
	Amount      string
	Tenure      string
	Income      string
	Purpose     string
}

func (s *LoanService) Apply(ctx context.Context, input ApplyInput) (models.Loan, error) {
	input.Amount = strings.TrimSpace(input.Amount)
	input.Tenure = strings.TrimSpace(input.Tenure)
	input.Income = strings.TrimSpace(input.Income)
	input.Purpose = strings.TrimSpace(input.Purpose)
	if input.Amount == "" || input.Tenure == "" || input.Income == "" || input.Purpose == "" {
		return models.Loan{}, ErrMissingFields
	}

	loan := models.Loan{
		ID:          ids.New(),
		ApplicantID: input.ApplicantID,
		Amount:      input.Amount,
		Tenure:      input.Tenure,
		Income:      input.Income,
		Purpose:     input.Purpose,
		Status:      models.LoanStatusPending,
	}

	if err := s.loans.Create(ctx, loan); err != nil {
		return models.Loan{}, err
	}

	return loan, nil
}

func (s *LoanService) List(ctx context.Context) ([]models.Loan, error) {
	return s.loans.List(ctx)
}

// Decide maps an exact, case-sensitive action onto the target status.
// Re-applying a decision a loan already carries succeeds and returns the
// unchanged record.
func (s *LoanService) Decide(ctx context.Context, loanID string, action string) (models.Loan, error) {
	var status models.LoanStatus
	switch action {
	case "approve":
		status = models.LoanStatusApproved
	case "reject":
		status = models.LoanStatusRejected
	default:
		return models.Loan{}, ErrInvalidAction
	}

	if !ids.Valid(loanID) {
		return models.Loan{}, ErrInvalidLoanID
	}

	loan, err := s.loans.UpdateStatus(ctx, loanID, status)
	if err != nil {
		return models.Loan{}, err
	}

	s.log.Info().
		Str("loan_id", loan.ID).
		Str("status", string(loan.Status)).
		Msg("loan decision recorded")

	return loan, nil
}

type DocumentUpload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// AttachDocument stores a proof-of-income document for an existing loan.
// Content is sniffed, and a declared Content-Type that contradicts the
// sniffed one is rejected.
func (s *LoanService) AttachDocument(ctx context.Context, loanID string, upload DocumentUpload) (models.LoanDocument, error) {
	if upload.File == nil || upload.Header == nil {
		return models.LoanDocument{}, ErrMissingFields
	}
	if !ids.Valid(loanID) {
		return models.LoanDocument{}, ErrInvalidLoanID
	}

	if _, err := s.loans.GetByID(ctx, loanID); err != nil {
		return models.LoanDocument{}, err
	}

	data, err := io.ReadAll(upload.File)
	if err != nil {
		return models.LoanDocument{}, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return models.LoanDocument{}, ErrMissingFields
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.Detect(head)
	if err != nil {
		return models.LoanDocument{}, ErrUnsupportedDocument
	}

	declared := sniffer.MimeTypeFromHeader(upload.Header.Header)
	if declared != "" && declared != result.MIME {
		return models.LoanDocument{}, fmt.Errorf("%w: declared %s, actual %s", ErrUnsupportedDocument, declared, result.MIME)
	}

	docID := ids.New()
	objectKey := s.buildObjectKey(loanID, docID, string(result.Type))
	bucket := s.blobs.Bucket()

	if err := s.blobs.Put(ctx, bucket, objectKey, bytes.NewReader(data), int64(len(data)), result.MIME); err != nil {
		return models.LoanDocument{}, err
	}

	sum := sha256.Sum256(data)
	doc := models.LoanDocument{
		ID:          docID,
		LoanID:      loanID,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		FileName:    upload.Header.Filename,
		ContentType: result.MIME,
		SizeBytes:   int64(len(data)),
		Checksum:    sum[:],
		Signature:   security.SignResource(s.cfg.Security.SignatureSecret, docID, objectKey),
	}

	if err := s.docs.Create(ctx, doc); err != nil {
		return models.LoanDocument{}, fmt.Errorf("save document metadata: %w", err)
	}

	return doc, nil
}

func (s *LoanService) buildObjectKey(loanID string, docID string, ext string) string {
	datePrefix := time.Now().UTC().Format("2006/01/02")
	return path.Join(datePrefix, loanID, fmt.Sprintf("%s.%s", docID, ext))
}
