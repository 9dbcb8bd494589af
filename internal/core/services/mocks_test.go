package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live pgx transaction. Mocks only compare it by identity.
type fakeTx struct {
	pgx.Tx
	name string
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []domain.AccountID) (map[domain.AccountID]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountID]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[domain.AccountID]domain.Cents, userID string, now time.Time) error {
	return m.Called(ctx, tx, changes, userID, now).Error(0)
}

// --- Mock BalanceLogRepository ---
type MockBalanceLogRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceLogRepositoryFacade = (*MockBalanceLogRepository)(nil)

func (m *MockBalanceLogRepository) ListLogs(ctx context.Context, filter domain.LogFilter) ([]domain.BalanceChangeLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceChangeLog), args.Error(1)
}

func (m *MockBalanceLogRepository) SaveLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.BalanceChangeLog) error {
	return m.Called(ctx, tx, logs).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (time.Time, error) {
	args := m.Called(ctx, tx, txn)
	return args.Get(0).(time.Time), args.Error(1)
}

// --- Mock PriceRepository ---
type MockPriceRepository struct {
	mock.Mock
}

var _ portsrepo.PriceRepositoryFacade = (*MockPriceRepository)(nil)

func (m *MockPriceRepository) LoadCatalog(ctx context.Context) (domain.PriceCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceCatalog), args.Error(1)
}

func (m *MockPriceRepository) ListPrices(ctx context.Context) ([]domain.ServicePrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePrice), args.Error(1)
}

func (m *MockPriceRepository) UpsertPrices(ctx context.Context, prices domain.PriceCatalog, userID string, now time.Time) error {
	return m.Called(ctx, prices, userID, now).Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SummarizeTransactions(ctx context.Context, userID string, from, to time.Time) (*domain.TransactionTotals, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionTotals), args.Error(1)
}

func (m *MockReportingRepository) SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

// --- Mock OperatorRepository ---
type MockOperatorRepository struct {
	mock.Mock
}

var _ portsrepo.OperatorRepositoryFacade = (*MockOperatorRepository)(nil)

func (m *MockOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) CreateOperatorIfAbsent(ctx context.Context, op domain.Operator) (bool, error) {
	args := m.Called(ctx, op)
	return args.Bool(0), args.Error(1)
}

// --- Mock SessionStore ---
type MockSessionStore struct {
	mock.Mock
}

var _ portsrepo.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockSessionStore) AcquireSessionLock(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, sessionID, token, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) ReleaseSessionLock(ctx context.Context, sessionID, token string) error {
	return m.Called(ctx, sessionID, token).Error(0)
}

// --- Mock LedgerService (as used by the POS service) ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerCommitter = (*MockLedgerService)(nil)

func (m *MockLedgerService) Commit(ctx context.Context, operatorID string, items []domain.LineItem) (*domain.CommitResult, error) {
	args := m.Called(ctx, operatorID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommitResult), args.Error(1)
}

// --- Mock CatalogService (as used by the POS service) ---
type MockCatalogService struct {
	mock.Mock
}

var _ portssvc.CatalogReaderSvc = (*MockCatalogService)(nil)

func (m *MockCatalogService) LoadCatalog(ctx context.Context) (domain.PriceCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceCatalog), args.Error(1)
}

func (m *MockCatalogService) ListPrices(ctx context.Context) ([]domain.ServicePrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePrice), args.Error(1)
}
