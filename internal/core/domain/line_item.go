package domain

import (
	"fmt"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LineItemType tags the variant of a cart line.
type LineItemType string

const (
	LineItemGCashIn  LineItemType = "gcash_in"
	LineItemGCashOut LineItemType = "gcash_out"
	LineItemService  LineItemType = "service"
)

// FeeSplit allocates a GCash fee between the float and the drawer.
type FeeSplit struct {
	ToGcash Cents `json:"feeToGcash"`
	ToCash  Cents `json:"feeToCash"`
}

// LineItem is one immutable cart entry. GCash lines carry Amount (principal)
// and Fee; service lines carry UnitPrice and Quantity with Fee = 0.
type LineItem struct {
	Type        LineItemType `json:"type"`
	Description string       `json:"description"`
	Reference   string       `json:"reference,omitempty"`
	Amount      Cents        `json:"amount"`
	Fee         Cents        `json:"fee"`
	FeeToGcash  Cents        `json:"feeToGcash"`
	FeeToCash   Cents        `json:"feeToCash"`
	UnitPrice   Cents        `json:"unitPrice,omitempty"`
	Quantity    int          `json:"quantity,omitempty"`
	Total       Cents        `json:"total"`
}

// NewGCashItem prices a cash-in or cash-out line. A nil split books the whole
// fee to cash on hand.
func NewGCashItem(kind LineItemType, amount Cents, reference string, split *FeeSplit) (LineItem, error) {
	fee, err := GCashFee(amount)
	if err != nil {
		return LineItem{}, err
	}

	s := FeeSplit{ToCash: fee}
	if split != nil {
		if split.ToGcash < 0 || split.ToCash < 0 || split.ToGcash+split.ToCash != fee {
			return LineItem{}, &apperrors.FeeSplitMismatchError{
				Fee:        fee.Decimal(),
				FeeToGcash: split.ToGcash.Decimal(),
				FeeToCash:  split.ToCash.Decimal(),
			}
		}
		s = *split
	}

	description := "GCash Cash In"
	if kind == LineItemGCashOut {
		description = "GCash Cash Out"
	}

	return LineItem{
		Type:        kind,
		Description: description,
		Reference:   reference,
		Amount:      amount,
		Fee:         fee,
		FeeToGcash:  s.ToGcash,
		FeeToCash:   s.ToCash,
		Total:       amount + fee,
	}, nil
}

// MaxServiceQuantity caps the pieces or pages on one service line.
const MaxServiceQuantity = 100000

// NewServiceItem prices a service line at unitPrice * quantity.
func NewServiceItem(description string, unitPrice Cents, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, &apperrors.InvalidAmountError{Field: "quantity", Amount: decimal.NewFromInt(int64(quantity))}
	}
	if unitPrice < 0 {
		return LineItem{}, &apperrors.InvalidAmountError{Field: "unitPrice", Amount: unitPrice.Decimal(), Reason: "must not be negative"}
	}
	if quantity > MaxServiceQuantity {
		return LineItem{}, &apperrors.InvalidAmountError{Field: "quantity", Amount: decimal.NewFromInt(int64(quantity)), Reason: fmt.Sprintf("must not exceed %d", MaxServiceQuantity)}
	}
	if unitPrice > 0 && Cents(quantity) > MaxCents/unitPrice {
		return LineItem{}, &apperrors.InvalidAmountError{Field: "total", Amount: unitPrice.Decimal().Mul(decimal.NewFromInt(int64(quantity))), Reason: "exceeds 999,999,999,999.99"}
	}
	total := unitPrice * Cents(quantity)
	return LineItem{
		Type:        LineItemService,
		Description: description,
		Amount:      total,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Total:       total,
	}, nil
}

// IsGCash reports whether the line moves e-wallet money.
func (li LineItem) IsGCash() bool {
	return li.Type == LineItemGCashIn || li.Type == LineItemGCashOut
}

// validate re-checks a line that may have been rehydrated from storage.
func (li LineItem) validate() error {
	switch li.Type {
	case LineItemGCashIn, LineItemGCashOut:
		fee, err := GCashFee(li.Amount)
		if err != nil {
			return err
		}
		if li.Fee != fee || li.FeeToGcash < 0 || li.FeeToCash < 0 || li.FeeToGcash+li.FeeToCash != fee {
			return &apperrors.FeeSplitMismatchError{
				Fee:        fee.Decimal(),
				FeeToGcash: li.FeeToGcash.Decimal(),
				FeeToCash:  li.FeeToCash.Decimal(),
			}
		}
	case LineItemService:
		if li.Total < 0 {
			return &apperrors.InvalidAmountError{Field: "total", Amount: li.Total.Decimal(), Reason: "must not be negative"}
		}
		priced, err := NewServiceItem(li.Description, li.UnitPrice, li.Quantity)
		if err != nil {
			return err
		}
		if priced.Total != li.Total || li.Amount != li.Total {
			return &apperrors.InvalidAmountError{Field: "total", Amount: li.Total.Decimal(), Reason: "does not match unit price times quantity"}
		}
	default:
		return fmt.Errorf("%w: unknown line item type %q", apperrors.ErrValidation, li.Type)
	}
	return nil
}
