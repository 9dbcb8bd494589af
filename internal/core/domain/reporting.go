package domain

import "time"

// DailySummary is the end-of-shift view for one operator and day.
type DailySummary struct {
	OperatorID       string    `json:"operatorId"`
	Day              time.Time `json:"day"`
	TransactionCount int       `json:"transactionCount"`
	ServiceSales     Cents     `json:"serviceSales"`
	GCashFees        Cents     `json:"gcashFees"`
	CashOnHand       Cents     `json:"cashOnHand"`
}

// TransactionTotals aggregates committed transactions over a period.
type TransactionTotals struct {
	TransactionCount int   `json:"transactionCount"`
	ServiceSales     Cents `json:"serviceSales"`
	GCashFees        Cents `json:"gcashFees"`
}

// AuditEntryKind says which record an audit timeline entry came from.
type AuditEntryKind string

const (
	AuditTransaction AuditEntryKind = "transaction"
	AuditBalanceLog  AuditEntryKind = "balance_log"
)

// AuditEntry is one row of the merged audit timeline.
type AuditEntry struct {
	Kind        AuditEntryKind    `json:"kind"`
	Timestamp   time.Time         `json:"timestamp"`
	Transaction *Transaction      `json:"transaction,omitempty"`
	Log         *BalanceChangeLog `json:"log,omitempty"`
}

// ID returns the id of the underlying record.
func (e AuditEntry) ID() string {
	if e.Transaction != nil {
		return e.Transaction.TransactionID
	}
	if e.Log != nil {
		return e.Log.LogID
	}
	return ""
}

// BalanceSnapshot is the nightly record of balances plus that day's totals.
type BalanceSnapshot struct {
	SnapshotDate time.Time `json:"snapshotDate"`
	Balances
	TransactionTotals
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineCursor is a keyset position in a newest-first listing.
type TimelineCursor struct {
	Timestamp time.Time
	ID        string
}

// After reports whether (ts, id) sorts strictly after the cursor in
// newest-first order, i.e. belongs on a later page.
func (c TimelineCursor) After(ts time.Time, id string) bool {
	if ts.Equal(c.Timestamp) {
		return id < c.ID
	}
	return ts.Before(c.Timestamp)
}

// TransactionFilter selects committed transactions.
type TransactionFilter struct {
	UserID string // empty matches every operator
	From   time.Time
	To     time.Time // exclusive
	Before *TimelineCursor
	Limit  int // 0 means no limit
}

// LogFilter selects balance change logs.
type LogFilter struct {
	Stream LogStream // empty matches every stream
	From   time.Time
	To     time.Time // exclusive
	Before *TimelineCursor
	Limit  int
}
