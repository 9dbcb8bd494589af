package domain

import (
	"encoding/json"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

// Cart is the ordered set of lines an operator builds before checkout.
// A Cart is not safe for concurrent use; a session owns exactly one.
type Cart struct {
	items []LineItem
}

// CartTotals breaks the cart total down for display.
type CartTotals struct {
	Subtotal   Cents `json:"subtotal"`
	Fees       Cents `json:"fees"`
	GrandTotal Cents `json:"grandTotal"`
}

// NewCart builds a cart holding items, in order.
func NewCart(items ...LineItem) *Cart {
	c := &Cart{}
	c.items = append(c.items, items...)
	return c
}

// AddService prices req from catalog and appends it.
func (c *Cart) AddService(catalog PriceCatalog, req ServiceRequest) (LineItem, error) {
	q, err := req.Quote(catalog)
	if err != nil {
		return LineItem{}, err
	}
	item, err := NewServiceItem(q.Description, q.UnitPrice, q.Quantity)
	if err != nil {
		return LineItem{}, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// AddGCashCashIn appends a cash-in line.
func (c *Cart) AddGCashCashIn(amount Cents, reference string, split *FeeSplit) (LineItem, error) {
	return c.addGCash(LineItemGCashIn, amount, reference, split)
}

// AddGCashCashOut appends a cash-out line.
func (c *Cart) AddGCashCashOut(amount Cents, reference string, split *FeeSplit) (LineItem, error) {
	return c.addGCash(LineItemGCashOut, amount, reference, split)
}

func (c *Cart) addGCash(kind LineItemType, amount Cents, reference string, split *FeeSplit) (LineItem, error) {
	item, err := NewGCashItem(kind, amount, reference, split)
	if err != nil {
		return LineItem{}, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the line at index.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return &apperrors.IndexOutOfRangeError{Index: index, Length: len(c.items)}
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the lines.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the grand total of all lines.
func (c *Cart) Total() Cents {
	var total Cents
	for _, it := range c.items {
		total += it.Total
	}
	return total
}

// Totals returns subtotal, fees and grand total.
func (c *Cart) Totals() CartTotals {
	var t CartTotals
	for _, it := range c.items {
		t.Subtotal += it.Amount
		t.Fees += it.Fee
		t.GrandTotal += it.Total
	}
	return t
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Cart) UnmarshalJSON(b []byte) error {
	var items []LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	c.items = items
	return nil
}
