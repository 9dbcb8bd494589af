package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// snapshotTimeout bounds one nightly snapshot run.
const snapshotTimeout = time.Minute

// SnapshotTaker records the nightly balance snapshot.
type SnapshotTaker interface {
	TakeBalanceSnapshot(ctx context.Context, day time.Time) (*domain.BalanceSnapshot, error)
}

// Scheduler runs the background jobs on cron specs in the business timezone.
type Scheduler struct {
	cron      *cron.Cron
	snapshots SnapshotTaker
	location  *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewScheduler creates a scheduler. An empty snapshotSpec disables the
// snapshot job; the expression uses seconds precision, e.g. "0 0 23 * * *".
func NewScheduler(snapshotSpec string, loc *time.Location, snapshots SnapshotTaker, logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		snapshots: snapshots,
		location:  loc,
		logger:    logger,
		now:       time.Now,
	}

	if snapshotSpec == "" {
		logger.Info("Balance snapshot job disabled")
		return s, nil
	}
	if _, err := s.cron.AddFunc(snapshotSpec, s.takeBalanceSnapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", snapshotSpec, err)
	}
	logger.Info("Balance snapshot job registered", slog.String("schedule", snapshotSpec), slog.String("timezone", loc.String()))
	return s, nil
}

func (s *Scheduler) takeBalanceSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	_ = s.RunSnapshot(ctx)
}

// RunSnapshot takes the snapshot for the current business day.
func (s *Scheduler) RunSnapshot(ctx context.Context) error {
	day := s.now().In(s.location)
	snap, err := s.snapshots.TakeBalanceSnapshot(ctx, day)
	if err != nil {
		s.logger.Error("Balance snapshot failed", slog.String("day", day.Format("2006-01-02")), slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("Balance snapshot recorded",
		slog.String("day", snap.SnapshotDate.Format("2006-01-02")),
		slog.String("gcash_float", snap.GCashFloat.String()),
		slog.String("cash_on_hand", snap.CashOnHand.String()),
		slog.Int("transaction_count", snap.TransactionCount))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// Stop waits for running jobs and stops the scheduler.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Cron scheduler stopped")
}

// HasJobs reports whether any job is registered.
func (s *Scheduler) HasJobs() bool {
	return len(s.cron.Entries()) > 0
}
