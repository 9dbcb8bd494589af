package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type LedgerServiceTestSuite struct {
	suite.Suite
	txManager   *MockTxManager
	accountRepo *MockAccountRepository
	logRepo     *MockBalanceLogRepository
	txnRepo     *MockTransactionRepository
	service     portssvc.LedgerSvcFacade
	tx          *fakeTx
	now         time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.txManager = new(MockTxManager)
	suite.accountRepo = new(MockAccountRepository)
	suite.logRepo = new(MockBalanceLogRepository)
	suite.txnRepo = new(MockTransactionRepository)
	suite.tx = &fakeTx{name: "ledger"}
	suite.now = time.Date(2025, 5, 15, 3, 0, 0, 0, time.UTC)
	suite.service = services.NewLedgerService(suite.txManager, suite.accountRepo, suite.logRepo, suite.txnRepo,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithIDGenerator(sequentialIDs()))
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.txManager.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
	suite.logRepo.AssertExpectations(suite.T())
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) lockAccounts(ctx context.Context, balances map[domain.AccountID]domain.Cents) {
	locked := make(map[domain.AccountID]domain.Account, len(balances))
	for id, b := range balances {
		locked[id] = domain.Account{AccountID: id, Balance: b}
	}
	suite.txManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.accountRepo.On("FindAccountsByIDsForUpdate", ctx, suite.tx, domain.LedgerAccounts).Return(locked, nil).Once()
}

func (suite *LedgerServiceTestSuite) cart() []domain.LineItem {
	cashIn, err := domain.NewGCashItem(domain.LineItemGCashIn, domain.Pesos(1000), "ref-001", nil)
	suite.Require().NoError(err)
	printing, err := domain.NewServiceItem("Printing: 5 pg(s) (letter, B&W)", domain.Pesos(2), 5)
	suite.Require().NoError(err)
	return []domain.LineItem{cashIn, printing}
}

func (suite *LedgerServiceTestSuite) TestCommit_Success() {
	ctx := context.Background()
	items := suite.cart()
	serverTS := suite.now.Add(15 * time.Millisecond)

	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(2000),
		domain.CashOnHand: domain.Pesos(500),
	})
	suite.accountRepo.On("ApplyBalanceChangesInTx", ctx, suite.tx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat:     -domain.Pesos(1000),
		domain.CashOnHand:     domain.Pesos(1020),
		domain.ServiceRevenue: domain.Pesos(10),
	}, "cashier1", suite.now).Return(nil).Once()
	suite.logRepo.On("SaveLogsInTx", ctx, suite.tx, mock.MatchedBy(func(logs []domain.BalanceChangeLog) bool {
		if len(logs) != 2 {
			return false
		}
		for _, l := range logs {
			if l.TransactionID != "id-1" || !l.Timestamp.Equal(serverTS) {
				return false
			}
		}
		return logs[0].LogID == "id-2" && logs[1].LogID == "id-3"
	})).Return(nil).Once()
	suite.txnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == "id-1" && txn.UserID == "cashier1" && len(txn.Items) == 2 &&
			txn.TotalAmount == domain.Pesos(1030)
	})).Return(serverTS, nil).Once()
	suite.txManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.Commit(ctx, "cashier1", items)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Transaction)
	suite.Equal("id-1", result.Transaction.TransactionID)
	suite.Equal(serverTS, result.Transaction.Timestamp)
	suite.Equal(domain.Balances{GCashFloat: domain.Pesos(2000), CashOnHand: domain.Pesos(500)}, result.Before)
	suite.Equal(domain.Balances{
		GCashFloat:     domain.Pesos(1000),
		CashOnHand:     domain.Pesos(1520),
		ServiceRevenue: domain.Pesos(10),
	}, result.After)
	suite.Len(result.Logs, 2)
	suite.txManager.AssertNotCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCommit_InsufficientFloatRollsBack() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(500),
		domain.CashOnHand: domain.Pesos(500),
	})
	suite.txManager.On("Rollback", ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.Commit(ctx, "cashier1", suite.cart())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInsufficientGcashFloat)
	suite.Equal("INSUFFICIENT_GCASH_FLOAT", apperrors.CodeOf(err))
	suite.accountRepo.AssertNotCalled(suite.T(), "ApplyBalanceChangesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.txManager.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCommit_AccountNotInitialized() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(5000),
	})
	suite.txManager.On("Rollback", ctx, suite.tx).Return(nil).Once()

	_, err := suite.service.Commit(ctx, "cashier1", suite.cart())

	suite.Require().Error(err)
	var notInit *apperrors.AccountNotInitializedError
	suite.Require().ErrorAs(err, &notInit)
	suite.Equal(string(domain.CashOnHand), notInit.Account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestCommit_LogWriteFailureIsCommitFailed() {
	ctx := context.Background()
	dbErr := assert.AnError
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(2000),
		domain.CashOnHand: domain.Pesos(500),
	})
	suite.accountRepo.On("ApplyBalanceChangesInTx", ctx, suite.tx, mock.Anything, "cashier1", suite.now).Return(nil).Once()
	suite.txnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.Anything).Return(suite.now, nil).Once()
	suite.logRepo.On("SaveLogsInTx", ctx, suite.tx, mock.Anything).Return(dbErr).Once()
	suite.txManager.On("Rollback", ctx, suite.tx).Return(nil).Once()

	_, err := suite.service.Commit(ctx, "cashier1", suite.cart())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCommitFailed)
	suite.ErrorIs(err, dbErr)
	suite.txManager.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCommit_CommitFailure() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(2000),
		domain.CashOnHand: domain.Pesos(500),
	})
	suite.accountRepo.On("ApplyBalanceChangesInTx", ctx, suite.tx, mock.Anything, "cashier1", suite.now).Return(nil).Once()
	suite.logRepo.On("SaveLogsInTx", ctx, suite.tx, mock.Anything).Return(nil).Once()
	suite.txnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.Anything).Return(suite.now, nil).Once()
	suite.txManager.On("Commit", ctx, suite.tx).Return(assert.AnError).Once()
	suite.txManager.On("Rollback", ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.Commit(ctx, "cashier1", suite.cart())

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCommitFailed)
}

func (suite *LedgerServiceTestSuite) TestCommit_BeginFailure() {
	ctx := context.Background()
	suite.txManager.On("Begin", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.Commit(ctx, "cashier1", suite.cart())

	suite.ErrorIs(err, apperrors.ErrCommitFailed)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCommit_EmptyCart() {
	_, err := suite.service.Commit(context.Background(), "cashier1", nil)

	var empty *apperrors.EmptyTransactionError
	suite.ErrorAs(err, &empty)
	suite.txManager.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAdjust_TopUpInitialisesFloat() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{})
	suite.accountRepo.On("ApplyBalanceChangesInTx", ctx, suite.tx, map[domain.AccountID]domain.Cents{
		domain.GCashFloat: domain.Pesos(5000),
	}, "admin", suite.now).Return(nil).Once()
	suite.logRepo.On("SaveLogsInTx", ctx, suite.tx, mock.MatchedBy(func(logs []domain.BalanceChangeLog) bool {
		return len(logs) == 1 &&
			logs[0].LogID == "id-1" &&
			logs[0].TransactionID == "" &&
			logs[0].Type == domain.LogTopUp &&
			logs[0].Stream == domain.StreamGCash &&
			logs[0].Reference == domain.DefaultAdminReference &&
			logs[0].NewGCashBalance == domain.Pesos(5000)
	})).Return(nil).Once()
	suite.txManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.Adjust(ctx, "admin", domain.Adjustment{Kind: domain.AdjustGCashTopUp, Amount: domain.Pesos(5000)})

	suite.Require().NoError(err)
	suite.Nil(result.Transaction)
	suite.Equal(domain.Pesos(5000), result.After.GCashFloat)
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAdjust_DeductCashBelowZero() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.CashOnHand: domain.Pesos(100),
	})
	suite.txManager.On("Rollback", ctx, suite.tx).Return(nil).Once()

	_, err := suite.service.Adjust(ctx, "admin", domain.Adjustment{Kind: domain.AdjustDeductCash, Amount: domain.Pesos(150), Reference: "bank deposit"})

	suite.ErrorIs(err, apperrors.ErrInsufficientCashOnHand)
}

func (suite *LedgerServiceTestSuite) TestAdjust_SetRevenue() {
	ctx := context.Background()
	suite.lockAccounts(ctx, map[domain.AccountID]domain.Cents{
		domain.ServiceRevenue: domain.Pesos(800),
	})
	suite.accountRepo.On("ApplyBalanceChangesInTx", ctx, suite.tx, map[domain.AccountID]domain.Cents{
		domain.ServiceRevenue: -domain.Pesos(800),
	}, "admin", suite.now).Return(nil).Once()
	suite.logRepo.On("SaveLogsInTx", ctx, suite.tx, mock.Anything).Return(nil).Once()
	suite.txManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	result, err := suite.service.Adjust(ctx, "admin", domain.Adjustment{Kind: domain.AdjustSetRevenue, Amount: 0})

	suite.Require().NoError(err)
	suite.Equal(domain.Cents(0), result.After.ServiceRevenue)
	suite.Equal(-domain.Pesos(800), result.Logs[0].Amount)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
