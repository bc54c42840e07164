package models

import "time"

type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "Pending"
	LoanStatusApproved LoanStatus = "Approved"
	LoanStatusRejected LoanStatus = "Rejected"
)

// Loan keeps amount, tenure and income text-encoded; nothing in the system
// does arithmetic on them, they are echoed back to clients and into the
// eligibility prompt as given.
type Loan struct {
	ID          string
	ApplicantID string
	Amount      string
	Tenure      string
	Income      string
	Purpose     string
	Status      LoanStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LoanDocument struct {
	ID          string
	LoanID      string
	Bucket      string
	ObjectKey   string
	FileName    string
	ContentType string
	SizeBytes   int64
	Checksum    []byte
	Signature   []byte
	CreatedAt   time.Time
}
