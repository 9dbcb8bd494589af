package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is a row of balance_snapshots, one per business day.
type BalanceSnapshot struct {
	SnapshotDate     time.Time       `db:"snapshot_date"`
	GCashFloat       decimal.Decimal `db:"gcash_float"`
	CashOnHand       decimal.Decimal `db:"cash_on_hand"`
	ServiceRevenue   decimal.Decimal `db:"service_revenue"`
	TransactionCount int             `db:"transaction_count"`
	ServiceSales     decimal.Decimal `db:"service_sales"`
	GCashFees        decimal.Decimal `db:"gcash_fees"`
	CreatedAt        time.Time       `db:"created_at"`
}
