package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock POSService ---
type MockPOSService struct {
	mock.Mock
}

var _ portssvc.POSSvcFacade = (*MockPOSService)(nil)

func sessionOrNil(args mock.Arguments) (*domain.Session, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func resultOrNil(args mock.Arguments) (*domain.CommitResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommitResult), args.Error(1)
}

func (m *MockPOSService) OpenSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID))
}
func (m *MockPOSService) GetSession(ctx context.Context, operatorID, sessionID string) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID, sessionID))
}
func (m *MockPOSService) CloseSession(ctx context.Context, operatorID, sessionID string) error {
	return m.Called(ctx, operatorID, sessionID).Error(0)
}
func (m *MockPOSService) AddService(ctx context.Context, operatorID, sessionID string, req domain.ServiceRequest) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID, sessionID, req))
}
func (m *MockPOSService) AddGCash(ctx context.Context, operatorID, sessionID string, kind domain.LineItemType, amount domain.Cents, reference string, split *domain.FeeSplit) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID, sessionID, kind, amount, reference, split))
}
func (m *MockPOSService) RemoveItem(ctx context.Context, operatorID, sessionID string, index int) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID, sessionID, index))
}
func (m *MockPOSService) ClearCart(ctx context.Context, operatorID, sessionID string) (*domain.Session, error) {
	return sessionOrNil(m.Called(ctx, operatorID, sessionID))
}
func (m *MockPOSService) QuoteFee(amount domain.Cents) (domain.Cents, error) {
	args := m.Called(amount)
	return args.Get(0).(domain.Cents), args.Error(1)
}
func (m *MockPOSService) Checkout(ctx context.Context, operatorID, sessionID string) (*domain.CommitResult, error) {
	return resultOrNil(m.Called(ctx, operatorID, sessionID))
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) Commit(ctx context.Context, operatorID string, items []domain.LineItem) (*domain.CommitResult, error) {
	return resultOrNil(m.Called(ctx, operatorID, items))
}
func (m *MockLedgerService) Adjust(ctx context.Context, adminID string, adj domain.Adjustment) (*domain.CommitResult, error) {
	return resultOrNil(m.Called(ctx, adminID, adj))
}

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

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
func (m *MockCatalogService) SavePrices(ctx context.Context, adminID string, prices domain.PriceCatalog) error {
	return m.Called(ctx, adminID, prices).Error(0)
}
func (m *MockCatalogService) SeedFromFile(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) Balances(ctx context.Context) (domain.Balances, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Balances), args.Error(1)
}
func (m *MockReportingService) ListOperatorTransactions(ctx context.Context, operatorID string, day time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, operatorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockReportingService) DailySummary(ctx context.Context, operatorID string, day time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, operatorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}
func (m *MockReportingService) AuditTimeline(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	args := m.Called(ctx, from, to, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), next, args.Error(2)
}
func (m *MockReportingService) TakeBalanceSnapshot(ctx context.Context, day time.Time) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, *domain.Operator, error) {
	args := m.Called(ctx, username, password)
	var op *domain.Operator
	if args.Get(2) != nil {
		op = args.Get(2).(*domain.Operator)
	}
	return args.String(0), args.Get(1).(time.Time), op, args.Error(3)
}

func (m *MockAuthService) EnsureOperator(ctx context.Context, username, password string, role domain.OperatorRole) (bool, error) {
	args := m.Called(ctx, username, password, role)
	return args.Bool(0), args.Error(1)
}
