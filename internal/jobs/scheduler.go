package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"loanhub/api/internal/models"
)

type LoanCounter interface {
	CountByStatus(ctx context.Context) (map[models.LoanStatus]int, error)
}

// Scheduler periodically logs the state of the loan book so operators can
// see backlog without querying the store.
type Scheduler struct {
	cron  *cron.Cron
	loans LoanCounter
	log   zerolog.Logger
}

func NewScheduler(loans LoanCounter, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		loans: loans,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.loans == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 * * * *", s.reportLoanBook); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running job, up to a short grace period.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) reportLoanBook() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	counts, err := s.loans.CountByStatus(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("loan book stats failed")
		return
	}

	s.log.Info().
		Int("pending", counts[models.LoanStatusPending]).
		Int("approved", counts[models.LoanStatusApproved]).
		Int("rejected", counts[models.LoanStatusRejected]).
		Msg("loan book")
}
