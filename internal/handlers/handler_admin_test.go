package handlers_test

import (
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestAdmin_RequiresAdminRole() {
	w := suite.do(http.MethodGet, "/api/v1/admin/prices", nil, "cashier1", "user")
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestAdjustGCash_TopUp() {
	adj := domain.Adjustment{Kind: domain.AdjustGCashTopUp, Amount: domain.Pesos(5000), Reference: "Morning float"}
	result := &domain.CommitResult{
		After: domain.Balances{GCashFloat: domain.Pesos(5000)},
		Logs:  []domain.BalanceChangeLog{{LogID: "log-1", Type: domain.LogTopUp, Amount: domain.Pesos(5000)}},
	}
	suite.mockLedger.On("Adjust", mock.Anything, "owner", adj).Return(result, nil).Once()

	body := map[string]string{"amount": "5000", "direction": "top-up", "reference": "Morning float"}
	w := suite.do(http.MethodPost, "/api/v1/admin/balances/gcash", body, "owner", "admin")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AdjustmentResponse
	suite.decode(w, &resp)
	suite.Equal(domain.Pesos(5000), resp.After.GCashFloat)
	suite.Require().NotNil(resp.Log)
	suite.Equal("log-1", resp.Log.LogID)
}

func (suite *HandlerTestSuite) TestAdjustGCash_WrongDirectionForAccount() {
	body := map[string]string{"amount": "100", "direction": "add-cash"}
	w := suite.do(http.MethodPost, "/api/v1/admin/balances/gcash", body, "owner", "admin")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdjustCash_RejectsNonPositive() {
	body := map[string]string{"amount": "0", "direction": "deduct-cash"}
	w := suite.do(http.MethodPost, "/api/v1/admin/balances/cash", body, "owner", "admin")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]any
	suite.decode(w, &resp)
	suite.Equal("INVALID_AMOUNT", resp["code"])
}

func (suite *HandlerTestSuite) TestAdjustCash_Insufficient() {
	suite.mockLedger.On("Adjust", mock.Anything, "owner", mock.MatchedBy(func(a domain.Adjustment) bool {
		return a.Kind == domain.AdjustDeductCash && a.Amount == domain.Pesos(900)
	})).Return(nil, &apperrors.InsufficientFundsError{
		Account:         apperrors.AccountCashOnHand,
		CurrentBalance:  decimal.NewFromInt(500),
		ProposedBalance: decimal.NewFromInt(-400),
	}).Once()

	body := map[string]string{"amount": "900", "direction": "deduct-cash"}
	w := suite.do(http.MethodPost, "/api/v1/admin/balances/cash", body, "owner", "admin")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSetServiceRevenue_AllowsZero() {
	adj := domain.Adjustment{Kind: domain.AdjustSetRevenue, Amount: 0}
	suite.mockLedger.On("Adjust", mock.Anything, "owner", adj).Return(&domain.CommitResult{}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/balances/service-revenue", map[string]string{"balance": "0"}, "owner", "admin")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestSavePrices() {
	catalog := domain.PriceCatalog{"printing_bw_a4": 350, "pvc_edit": domain.Pesos(20)}
	suite.mockCatalog.On("SavePrices", mock.Anything, "owner", catalog).Return(nil).Once()
	suite.mockCatalog.On("ListPrices", mock.Anything).Return([]domain.ServicePrice{
		{Key: "printing_bw_a4", Price: 350},
		{Key: "pvc_edit", Price: domain.Pesos(20)},
	}, nil).Once()

	body := map[string]any{"prices": map[string]string{"printing_bw_a4": "3.50", "pvc_edit": "20"}}
	w := suite.do(http.MethodPut, "/api/v1/admin/prices", body, "owner", "admin")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListPricesResponse
	suite.decode(w, &resp)
	suite.Len(resp.Prices, 2)
}

func (suite *HandlerTestSuite) TestSavePrices_InvalidKey() {
	body := map[string]any{"prices": map[string]string{"Printing-BW": "3"}}
	w := suite.do(http.MethodPut, "/api/v1/admin/prices", body, "owner", "admin")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAuditTimeline() {
	from := time.Date(2025, 5, 14, 16, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	token := "abc"
	next := "def"
	entries := []domain.AuditEntry{{
		Kind:        domain.AuditTransaction,
		Timestamp:   from.Add(time.Hour),
		Transaction: &domain.Transaction{TransactionID: "txn-1"},
	}}
	suite.mockReporting.On("AuditTimeline", mock.Anything,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(from) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(to) }),
		25, &token).Return(entries, &next, nil).Once()

	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))
	q.Set("limit", "25")
	q.Set("nextToken", token)
	w := suite.do(http.MethodGet, "/api/v1/admin/audit?"+q.Encode(), nil, "owner", "admin")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuditTimelineResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("txn-1", resp.Entries[0].ID())
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestAuditTimeline_BadParams() {
	w := suite.do(http.MethodGet, "/api/v1/admin/audit?from=yesterday&to=2025-05-15T00:00:00Z", nil, "owner", "admin")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/admin/audit?from=2025-05-14T00:00:00Z&to=2025-05-15T00:00:00Z&limit=500", nil, "owner", "admin")
	suite.Equal(http.StatusBadRequest, w.Code)
}
