package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/SscSPs/gcash_pos_backend/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testSession(items ...domain.LineItem) *domain.Session {
	s := domain.NewSession("sess-1", "cashier1", domain.PriceCatalog{"scan_only": domain.Pesos(5)},
		time.Date(2025, 5, 15, 1, 0, 0, 0, time.UTC))
	s.Cart = domain.NewCart(items...)
	return s
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions", nil, "", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestOpenSession() {
	suite.mockPOS.On("OpenSession", mock.Anything, "cashier1").Return(testSession(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/sessions", nil, "cashier1", "user")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	suite.decode(w, &resp)
	suite.Equal("sess-1", resp.SessionID)
	suite.Empty(resp.Items)
	suite.Equal(domain.Pesos(5), resp.Catalog["scan_only"])
}

func (suite *HandlerTestSuite) TestGetSession_OtherOperator() {
	suite.mockPOS.On("GetSession", mock.Anything, "cashier2", "sess-1").
		Return(nil, fmt.Errorf("%w: session sess-1 belongs to another operator", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodGet, "/api/v1/pos/sessions/sess-1", nil, "cashier2", "user")

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestAddGCashIn_WithSplit() {
	item, err := domain.NewGCashItem(domain.LineItemGCashIn, domain.Pesos(1000), "ref-9", &domain.FeeSplit{ToGcash: domain.Pesos(5), ToCash: domain.Pesos(15)})
	suite.Require().NoError(err)
	suite.mockPOS.On("AddGCash", mock.Anything, "cashier1", "sess-1", domain.LineItemGCashIn, domain.Pesos(1000), "ref-9",
		&domain.FeeSplit{ToGcash: domain.Pesos(5), ToCash: domain.Pesos(15)}).
		Return(testSession(item), nil).Once()

	body := map[string]string{"amount": "1000", "reference": "ref-9", "feeToGcash": "5", "feeToCash": "15"}
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/gcash-in", body, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SessionResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Items, 1)
	suite.Equal(domain.Pesos(1020), resp.Totals.GrandTotal)
}

func (suite *HandlerTestSuite) TestAddGCashOut_MissingAmount() {
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/gcash-out", map[string]string{}, "cashier1", "user")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAddGCash_FeeSplitMismatch() {
	splitErr := &apperrors.FeeSplitMismatchError{Fee: decimal.NewFromInt(20), FeeToGcash: decimal.NewFromInt(5), FeeToCash: decimal.NewFromInt(5)}
	suite.mockPOS.On("AddGCash", mock.Anything, "cashier1", "sess-1", domain.LineItemGCashOut, domain.Pesos(1000), "", mock.Anything).
		Return(nil, splitErr).Once()

	body := map[string]string{"amount": "1000", "feeToGcash": "5", "feeToCash": "5"}
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/gcash-out", body, "cashier1", "user")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("FEE_SPLIT_MISMATCH", resp.Code)
}

func (suite *HandlerTestSuite) TestAddService() {
	req := domain.ServiceRequest{Type: domain.ServicePVC, PVCType: "back", WithEdit: true, Quantity: 2}
	suite.mockPOS.On("AddService", mock.Anything, "cashier1", "sess-1", req).Return(testSession(), nil).Once()

	body := map[string]any{"type": "pvc", "pvcType": "back", "withEdit": true, "quantity": 2}
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/service", body, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestAddService_PriceNotConfigured() {
	suite.mockPOS.On("AddService", mock.Anything, "cashier1", "sess-1", mock.Anything).
		Return(nil, &apperrors.PriceNotConfiguredError{Key: "lamination_a3"}).Once()

	body := map[string]any{"type": "lamination", "size": "a3", "quantity": 1}
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/service", body, "cashier1", "user")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]any
	suite.decode(w, &resp)
	suite.Equal("PRICE_NOT_CONFIGURED", resp["code"])
	suite.Equal("lamination_a3", resp["details"].(map[string]any)["key"])
}

func (suite *HandlerTestSuite) TestAddService_UnknownType() {
	body := map[string]any{"type": "binding", "quantity": 1}
	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/items/service", body, "cashier1", "user")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRemoveItem() {
	suite.mockPOS.On("RemoveItem", mock.Anything, "cashier1", "sess-1", 0).Return(testSession(), nil).Once()
	w := suite.do(http.MethodDelete, "/api/v1/pos/sessions/sess-1/items/0", nil, "cashier1", "user")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/pos/sessions/sess-1/items/first", nil, "cashier1", "user")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRemoveItem_OutOfRange() {
	suite.mockPOS.On("RemoveItem", mock.Anything, "cashier1", "sess-1", 3).
		Return(nil, &apperrors.IndexOutOfRangeError{Index: 3, Length: 1}).Once()

	w := suite.do(http.MethodDelete, "/api/v1/pos/sessions/sess-1/items/3", nil, "cashier1", "user")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestClearCartAndClose() {
	suite.mockPOS.On("ClearCart", mock.Anything, "cashier1", "sess-1").Return(testSession(), nil).Once()
	suite.mockPOS.On("CloseSession", mock.Anything, "cashier1", "sess-1").Return(nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, "/api/v1/pos/sessions/sess-1/items", nil, "cashier1", "user").Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/pos/sessions/sess-1", nil, "cashier1", "user").Code)
}

func (suite *HandlerTestSuite) TestCheckout_Success() {
	result := &domain.CommitResult{
		Transaction: &domain.Transaction{TransactionID: "txn-1", UserID: "cashier1", TotalAmount: domain.Pesos(520)},
		Before:      domain.Balances{GCashFloat: domain.Pesos(2000), CashOnHand: domain.Pesos(500)},
		After:       domain.Balances{GCashFloat: domain.Pesos(1000), CashOnHand: domain.Pesos(1520), ServiceRevenue: domain.Pesos(10)},
	}
	suite.mockPOS.On("Checkout", mock.Anything, "cashier1", "sess-1").Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/checkout", nil, "cashier1", "user")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CheckoutResponse
	suite.decode(w, &resp)
	suite.Equal("txn-1", resp.Transaction.TransactionID)
	suite.Equal(domain.Pesos(1520), resp.After.CashOnHand)
}

func (suite *HandlerTestSuite) TestCheckout_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name: "insufficient float",
			err: &apperrors.InsufficientFundsError{
				Account:         apperrors.AccountGCashFloat,
				CurrentBalance:  decimal.NewFromInt(500),
				ProposedBalance: decimal.NewFromInt(-480),
			},
			status: http.StatusConflict,
			code:   "INSUFFICIENT_GCASH_FLOAT",
		},
		{name: "empty cart", err: &apperrors.EmptyTransactionError{}, status: http.StatusBadRequest, code: "EMPTY_TRANSACTION"},
		{name: "not initialized", err: &apperrors.AccountNotInitializedError{Account: apperrors.AccountCashOnHand}, status: http.StatusPreconditionFailed, code: "ACCOUNT_NOT_INITIALIZED"},
		{name: "in progress", err: &apperrors.CheckoutInProgressError{SessionID: "sess-1"}, status: http.StatusConflict, code: "CHECKOUT_IN_PROGRESS"},
		{name: "commit failed", err: &apperrors.CommitFailedError{Op: "save transaction", Err: errors.New("conn reset")}, status: http.StatusInternalServerError, code: "COMMIT_FAILED"},
		{name: "unknown session", err: apperrors.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockPOS.On("Checkout", mock.Anything, "cashier1", "sess-1").Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/checkout", nil, "cashier1", "user")

			suite.Equal(tc.status, w.Code)
			var resp handlers.ErrorResponse
			suite.decode(w, &resp)
			suite.Equal(tc.code, resp.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestCheckout_InsufficientFundsDetails() {
	suite.mockPOS.On("Checkout", mock.Anything, "cashier1", "sess-1").Return(nil, &apperrors.InsufficientFundsError{
		Account:         apperrors.AccountCashOnHand,
		CurrentBalance:  decimal.NewFromInt(100),
		ProposedBalance: decimal.NewFromInt(-400),
	}).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/checkout", nil, "cashier1", "user")

	var resp map[string]any
	suite.decode(w, &resp)
	details := resp["details"].(map[string]any)
	suite.Equal("cash_on_hand", details["account"])
	suite.Equal("-400", details["proposedBalance"])
}

func (suite *HandlerTestSuite) TestCommitFailedHidesInternalMessage() {
	suite.mockPOS.On("Checkout", mock.Anything, "cashier1", "sess-1").
		Return(nil, &apperrors.CommitFailedError{Op: "lock accounts", Err: errors.New("password authentication failed")}).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/sessions/sess-1/checkout", nil, "cashier1", "user")

	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestQuoteFee() {
	suite.mockPOS.On("QuoteFee", domain.Pesos(1000)).Return(domain.Pesos(20), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/pos/fee?amount=1000", nil, "cashier1", "user")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FeeQuoteResponse
	suite.decode(w, &resp)
	suite.Equal(domain.Pesos(20), resp.Fee)
	suite.Equal(domain.Pesos(1020), resp.Total)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/pos/fee?amount=abc", nil, "cashier1", "user").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/pos/fee", nil, "cashier1", "user").Code)
}
