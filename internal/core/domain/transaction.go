package domain

import "time"

// Transaction is the committed, append-only record of one checkout. Items are
// embedded exactly as they were in the cart.
type Transaction struct {
	TransactionID string     `json:"transactionId"`
	UserID        string     `json:"user"`
	Timestamp     time.Time  `json:"timestamp"`
	TotalAmount   Cents      `json:"totalAmount"`
	Items         []LineItem `json:"items"`
}

// ServiceTotal sums the service lines.
func (t Transaction) ServiceTotal() Cents {
	var total Cents
	for _, it := range t.Items {
		if it.Type == LineItemService {
			total += it.Total
		}
	}
	return total
}

// GCashFees sums the fees of the GCash lines.
func (t Transaction) GCashFees() Cents {
	var total Cents
	for _, it := range t.Items {
		if it.IsGCash() {
			total += it.Fee
		}
	}
	return total
}

// CommitResult is what a successful checkout or adjustment produced. Callers
// that refresh a dashboard do so from this value or a fresh read, never from
// inside the commit.
type CommitResult struct {
	Transaction *Transaction       `json:"transaction,omitempty"`
	Before      Balances           `json:"before"`
	After       Balances           `json:"after"`
	Logs        []BalanceChangeLog `json:"logs"`
}
