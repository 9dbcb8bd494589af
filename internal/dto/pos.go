package dto

import (
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SessionResponse is an open terminal session with its cart.
type SessionResponse struct {
	SessionID  string              `json:"sessionId"`
	OperatorID string              `json:"operatorId"`
	OpenedAt   time.Time           `json:"openedAt"`
	Items      []domain.LineItem   `json:"items"`
	Totals     domain.CartTotals   `json:"totals"`
	Catalog    domain.PriceCatalog `json:"catalog"`
}

// ToSessionResponse converts a domain.Session to SessionResponse.
func ToSessionResponse(s *domain.Session) SessionResponse {
	items := s.Cart.Items()
	if items == nil {
		items = []domain.LineItem{}
	}
	return SessionResponse{
		SessionID:  s.SessionID,
		OperatorID: s.OperatorID,
		OpenedAt:   s.OpenedAt,
		Items:      items,
		Totals:     s.Cart.Totals(),
		Catalog:    s.Catalog,
	}
}

// AddServiceRequest is the structured service choice from the POS form.
type AddServiceRequest struct {
	Type      domain.ServiceType `json:"type" binding:"required,oneof=printing photocopy scan lamination pvc"`
	PrintType string             `json:"printType" binding:"omitempty,oneof=bw color"`
	PaperSize string             `json:"paperSize" binding:"omitempty,pricekey"`
	ScanType  string             `json:"scanType" binding:"omitempty,oneof=scan_only ecopy"`
	Size      string             `json:"size" binding:"omitempty,pricekey"`
	PVCType   string             `json:"pvcType" binding:"omitempty,oneof=front back"`
	WithEdit  bool               `json:"withEdit"`
	Quantity  int                `json:"quantity" binding:"required,gte=1,lte=100000"`
}

// ToDomain converts the request to a domain.ServiceRequest.
func (r AddServiceRequest) ToDomain() domain.ServiceRequest {
	return domain.ServiceRequest{
		Type:      r.Type,
		PrintType: r.PrintType,
		PaperSize: r.PaperSize,
		ScanType:  r.ScanType,
		Size:      r.Size,
		PVCType:   r.PVCType,
		WithEdit:  r.WithEdit,
		Quantity:  r.Quantity,
	}
}

// AddGCashRequest adds a cash-in or cash-out line. When both split fields are
// omitted the whole fee goes to cash on hand.
type AddGCashRequest struct {
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Reference  string           `json:"reference" binding:"max=255"`
	FeeToGcash *decimal.Decimal `json:"feeToGcash"`
	FeeToCash  *decimal.Decimal `json:"feeToCash"`
}

// Split converts the optional fee split fields. A single provided field is
// paired with zero for the other.
func (r AddGCashRequest) Split() (*domain.FeeSplit, error) {
	if r.FeeToGcash == nil && r.FeeToCash == nil {
		return nil, nil
	}
	var split domain.FeeSplit
	var err error
	if r.FeeToGcash != nil {
		if split.ToGcash, err = domain.CentsFromDecimal("feeToGcash", *r.FeeToGcash); err != nil {
			return nil, err
		}
	}
	if r.FeeToCash != nil {
		if split.ToCash, err = domain.CentsFromDecimal("feeToCash", *r.FeeToCash); err != nil {
			return nil, err
		}
	}
	return &split, nil
}

// FeeQuoteParams is the query for a fee quote.
type FeeQuoteParams struct {
	Amount string `form:"amount" binding:"required"`
}

// FeeQuoteResponse is the fee for one GCash amount.
type FeeQuoteResponse struct {
	Amount domain.Cents `json:"amount"`
	Fee    domain.Cents `json:"fee"`
	Total  domain.Cents `json:"total"`
}

// CheckoutResponse is the committed transaction and the balances around it.
type CheckoutResponse struct {
	Transaction *domain.Transaction       `json:"transaction"`
	Before      domain.Balances           `json:"before"`
	After       domain.Balances           `json:"after"`
	Logs        []domain.BalanceChangeLog `json:"logs"`
}

// ToCheckoutResponse converts a commit result.
func ToCheckoutResponse(r *domain.CommitResult) CheckoutResponse {
	return CheckoutResponse{Transaction: r.Transaction, Before: r.Before, After: r.After, Logs: r.Logs}
}
