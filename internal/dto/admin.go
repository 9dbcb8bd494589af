package dto

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdjustBalanceRequest moves an amount into or out of the GCash float or the
// cash drawer. Direction is one of top-up, deduction, add-cash, deduct-cash.
type AdjustBalanceRequest struct {
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Direction string           `json:"direction" binding:"required,direction"`
	Reference string           `json:"reference" binding:"max=255"`
}

// SetRevenueRequest overwrites the service revenue balance.
type SetRevenueRequest struct {
	Balance   *decimal.Decimal `json:"balance" binding:"required"`
	Reference string           `json:"reference" binding:"max=255"`
}

// SavePricesRequest upserts catalog prices keyed by price key.
type SavePricesRequest struct {
	Prices map[string]decimal.Decimal `json:"prices" binding:"required,min=1,dive,keys,pricekey,endkeys"`
}

// ToCatalog converts the request prices to cents.
func (r SavePricesRequest) ToCatalog() (domain.PriceCatalog, error) {
	catalog := make(domain.PriceCatalog, len(r.Prices))
	for k, v := range r.Prices {
		c, err := domain.CentsFromDecimal(k, v)
		if err != nil {
			return nil, err
		}
		catalog[k] = c
	}
	return catalog, nil
}

// AdjustmentResponse is the account state after an admin adjustment.
type AdjustmentResponse struct {
	Before domain.Balances          `json:"before"`
	After  domain.Balances          `json:"after"`
	Log    *domain.BalanceChangeLog `json:"log,omitempty"`
}

// ToAdjustmentResponse converts a commit result from an adjustment.
func ToAdjustmentResponse(r *domain.CommitResult) AdjustmentResponse {
	resp := AdjustmentResponse{Before: r.Before, After: r.After}
	if len(r.Logs) > 0 {
		resp.Log = &r.Logs[0]
	}
	return resp
}

// ListPricesResponse lists the catalog.
type ListPricesResponse struct {
	Prices []domain.ServicePrice `json:"prices"`
}
