package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestDailySummary_UsesBusinessDay() {
	day := time.Date(2025, 5, 15, 0, 0, 0, 0, manila)
	summary := &domain.DailySummary{
		OperatorID:       "cashier1",
		Day:              day,
		TransactionCount: 3,
		ServiceSales:     domain.Pesos(150),
		GCashFees:        domain.Pesos(40),
		CashOnHand:       domain.Pesos(2500),
	}
	suite.mockReporting.On("DailySummary", mock.Anything, "cashier1",
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(day) })).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/summary?date=2025-05-15", nil, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.DailySummary
	suite.decode(w, &resp)
	suite.Equal(3, resp.TransactionCount)
	suite.Equal(domain.Pesos(2500), resp.CashOnHand)
}

func (suite *HandlerTestSuite) TestDailySummary_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/reports/summary?date=15-05-2025", nil, "cashier1", "user")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions() {
	day := time.Date(2025, 5, 15, 0, 0, 0, 0, manila)
	txns := []domain.Transaction{{TransactionID: "txn-2", UserID: "cashier1"}, {TransactionID: "txn-1", UserID: "cashier1"}}
	suite.mockReporting.On("ListOperatorTransactions", mock.Anything, "cashier1",
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(day) })).Return(txns, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/transactions?date=2025-05-15", nil, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Equal("2025-05-15", resp.Date)
	suite.Len(resp.Transactions, 2)
}

func (suite *HandlerTestSuite) TestBalances() {
	balances := domain.Balances{GCashFloat: domain.Pesos(1000), CashOnHand: domain.Pesos(1520), ServiceRevenue: domain.Pesos(10)}
	suite.mockReporting.On("Balances", mock.Anything).Return(balances, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balances", nil, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.Balances
	suite.decode(w, &resp)
	suite.Equal(balances, resp)
}
