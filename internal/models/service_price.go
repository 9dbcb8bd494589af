package models

import "github.com/shopspring/decimal"

// ServicePrice is a row of service_prices.
type ServicePrice struct {
	PriceKey string          `db:"price_key"`
	Price    decimal.Decimal `db:"price"`
	AuditFields
}
