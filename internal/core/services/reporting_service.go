package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/utils/pagination"
)

const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 200
)

// reportingService implements portssvc.ReportingSvcFacade
type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	txnRepo       portsrepo.TransactionReader
	logRepo       portsrepo.BalanceLogReader
	reportingRepo portsrepo.ReportingRepositoryFacade
	location      *time.Location
}

// ReportingServiceOption is a function that configures a reportingService
type ReportingServiceOption func(*reportingService)

// WithBusinessLocation sets the timezone that defines a business day.
func WithBusinessLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithReportingBaseOptions applies shared clock and id options.
func WithReportingBaseOptions(options ...Option) ReportingServiceOption {
	return func(s *reportingService) {
		s.apply(options)
	}
}

// NewReportingService creates a new reporting service with the given dependencies
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	txnRepo portsrepo.TransactionReader,
	logRepo portsrepo.BalanceLogReader,
	reportingRepo portsrepo.ReportingRepositoryFacade,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		accountRepo:   accountRepo,
		txnRepo:       txnRepo,
		logRepo:       logRepo,
		reportingRepo: reportingRepo,
		location:      time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// dayBounds returns [start, end) of the business day containing day.
func (s *reportingService) dayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.In(s.location).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func (s *reportingService) Balances(ctx context.Context) (domain.Balances, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return domain.Balances{}, fmt.Errorf("failed to read balances: %w", err)
	}
	byID := make(map[domain.AccountID]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}
	return domain.BalancesFromAccounts(byID), nil
}

func (s *reportingService) ListOperatorTransactions(ctx context.Context, operatorID string, day time.Time) ([]domain.Transaction, error) {
	from, to := s.dayBounds(day)
	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{UserID: operatorID, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list operator transactions", slog.Time("from", from))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// DailySummary totals the operator's sales for the day. CashOnHand is the
// current drawer balance, not a per-day figure.
func (s *reportingService) DailySummary(ctx context.Context, operatorID string, day time.Time) (*domain.DailySummary, error) {
	from, to := s.dayBounds(day)
	totals, err := s.reportingRepo.SummarizeTransactions(ctx, operatorID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize transactions", slog.Time("from", from))
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	balances, err := s.Balances(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DailySummary{
		OperatorID:       operatorID,
		Day:              from.In(s.location),
		TransactionCount: totals.TransactionCount,
		ServiceSales:     totals.ServiceSales,
		GCashFees:        totals.GCashFees,
		CashOnHand:       balances.CashOnHand,
	}, nil
}

// AuditTimeline merges transactions and balance logs newest first. Both
// sources are paged by the same (timestamp, id) keyset, so each is asked for
// one row more than the page to learn whether anything follows.
func (s *reportingService) AuditTimeline(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	if limit <= 0 {
		limit = DefaultAuditPageSize
	}
	if limit > MaxAuditPageSize {
		limit = MaxAuditPageSize
	}
	if !to.IsZero() && !from.IsZero() && !to.After(from) {
		return nil, nil, fmt.Errorf("%w: 'to' must be after 'from'", apperrors.ErrValidation)
	}

	var cursor *domain.TimelineCursor
	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeTimelineToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &domain.TimelineCursor{Timestamp: ts, ID: id}
	}

	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{From: from, To: to, Before: cursor, Limit: limit + 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for audit")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	logs, err := s.logRepo.ListLogs(ctx, domain.LogFilter{From: from, To: to, Before: cursor, Limit: limit + 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance logs for audit")
		return nil, nil, fmt.Errorf("failed to list balance logs: %w", err)
	}

	entries := make([]domain.AuditEntry, 0, len(txns)+len(logs))
	for i := range txns {
		entries = append(entries, domain.AuditEntry{Kind: domain.AuditTransaction, Timestamp: txns[i].Timestamp, Transaction: &txns[i]})
	}
	for i := range logs {
		entries = append(entries, domain.AuditEntry{Kind: domain.AuditBalanceLog, Timestamp: logs[i].Timestamp, Log: &logs[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		pos := domain.TimelineCursor{Timestamp: entries[i].Timestamp, ID: entries[i].ID()}
		return pos.After(entries[j].Timestamp, entries[j].ID())
	})

	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	last := entries[limit-1]
	token := pagination.EncodeTimelineToken(last.Timestamp, last.ID())
	return entries, &token, nil
}

// TakeBalanceSnapshot records current balances together with the day's totals
// across all operators. Running it twice for one day replaces the first row.
func (s *reportingService) TakeBalanceSnapshot(ctx context.Context, day time.Time) (*domain.BalanceSnapshot, error) {
	from, to := s.dayBounds(day)
	balances, err := s.Balances(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportingRepo.SummarizeTransactions(ctx, "", from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize transactions for snapshot")
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	y, m, d := from.In(s.location).Date()
	snapshot := domain.BalanceSnapshot{
		SnapshotDate:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Balances:          balances,
		TransactionTotals: *totals,
		CreatedAt:         s.Now(),
	}
	if err := s.reportingRepo.SaveBalanceSnapshot(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to save balance snapshot")
		return nil, fmt.Errorf("failed to save balance snapshot: %w", err)
	}

	s.LogInfo(ctx, "Balance snapshot recorded",
		slog.String("date", snapshot.SnapshotDate.Format(time.DateOnly)),
		slog.String("gcash_float", balances.GCashFloat.String()),
		slog.String("cash_on_hand", balances.CashOnHand.String()),
		slog.String("service_revenue", balances.ServiceRevenue.String()))
	return &snapshot, nil
}
