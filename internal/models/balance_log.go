package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceChangeLog is a row of balance_change_logs.
type BalanceChangeLog struct {
	LogID                string          `db:"log_id"`
	TransactionID        sql.NullString  `db:"transaction_id"` // Null for admin adjustments
	Stream               string          `db:"stream"`
	LogType              string          `db:"log_type"`
	Amount               decimal.Decimal `db:"amount"`
	CashImpact           decimal.Decimal `db:"cash_impact"`
	GCashPrincipalImpact decimal.Decimal `db:"gcash_principal_impact"`
	FeeCollected         decimal.Decimal `db:"fee_collected"`
	NewGCashBalance      decimal.Decimal `db:"new_gcash_balance"`
	NewCashBalance       decimal.Decimal `db:"new_cash_balance"`
	NewBalance           decimal.Decimal `db:"new_balance"` // service revenue after the change
	Reference            string          `db:"reference"`
	UserID               string          `db:"user_id"`
	CreatedAt            time.Time       `db:"created_at"`
}
