package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"loanhub/api/internal/models"
)

type stubCounter struct {
	counts map[models.LoanStatus]int
	err    error
	calls  int
}

func (s *stubCounter) CountByStatus(context.Context) (map[models.LoanStatus]int, error) {
	s.calls++
	return s.counts, s.err
}

func TestReportLoanBook(t *testing.T) {
	counter := &stubCounter{counts: map[models.LoanStatus]int{
		models.LoanStatusPending:  3,
		models.LoanStatusApproved: 1,
	}}
	s := NewScheduler(counter, zerolog.Nop())

	s.reportLoanBook()
	if counter.calls != 1 {
		t.Fatalf("store queried %d times, want 1", counter.calls)
	}
}

func TestReportLoanBook_StoreError(t *testing.T) {
	counter := &stubCounter{err: errors.New("db down")}
	s := NewScheduler(counter, zerolog.Nop())

	// must not panic, only log
	s.reportLoanBook()
}

func TestStart_NilStore(t *testing.T) {
	s := NewScheduler(nil, zerolog.Nop())
	if err := s.Start(); err != nil {
		t.Fatalf("Start with nil store: %v", err)
	}
}
