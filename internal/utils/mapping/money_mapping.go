package mapping

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToDomainCents converts a NUMERIC(14,2) value to Cents. Columns are scale 2,
// so rounding never changes a stored value.
func ToDomainCents(d decimal.Decimal) domain.Cents {
	return domain.Cents(d.Shift(2).Round(0).IntPart())
}

// ToModelDecimal converts Cents to the decimal written to NUMERIC columns.
func ToModelDecimal(c domain.Cents) decimal.Decimal {
	return c.Decimal()
}
