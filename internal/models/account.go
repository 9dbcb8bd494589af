package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. Balance is NUMERIC(14,2).
type Account struct {
	AccountID   string          `db:"account_id"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields                 // Embed common audit fields
}
