package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PosTransaction is a row of pos_transactions. Items is the JSONB line list.
type PosTransaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Items         []byte          `db:"items"`
	CreatedAt     time.Time       `db:"created_at"`
}
