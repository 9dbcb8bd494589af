package domain

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Cents is an amount of Philippine pesos in centavos. All ledger arithmetic is
// done on Cents; decimals only appear at the JSON and SQL boundaries.
type Cents int64

// MaxCents is the largest amount a NUMERIC(14,2) column can hold.
const MaxCents Cents = 99_999_999_999_999

var maxScaled = decimal.NewFromInt(int64(MaxCents))

// Pesos converts a whole peso amount into Cents.
func Pesos(p int64) Cents {
	return Cents(p * 100)
}

// CentsFromDecimal converts a decimal peso amount into Cents. Amounts with more
// than two decimal places are rejected rather than rounded.
func CentsFromDecimal(field string, d decimal.Decimal) (Cents, error) {
	scaled := d.Shift(2)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, &apperrors.InvalidAmountError{Field: field, Amount: d, Reason: "more than two decimal places"}
	}
	if scaled.Abs().GreaterThan(maxScaled) {
		return 0, &apperrors.InvalidAmountError{Field: field, Amount: d, Reason: "exceeds 999,999,999,999.99"}
	}
	return Cents(scaled.IntPart()), nil
}

// PositiveCentsFromDecimal is CentsFromDecimal that also rejects amounts <= 0.
func PositiveCentsFromDecimal(field string, d decimal.Decimal) (Cents, error) {
	c, err := CentsFromDecimal(field, d)
	if err != nil {
		return 0, err
	}
	if c <= 0 {
		return 0, &apperrors.InvalidAmountError{Field: field, Amount: d}
	}
	return c, nil
}

// Decimal returns the amount in pesos.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a plain JSON number in pesos, e.g. 1030.00.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", string(b), err)
	}
	v, err := CentsFromDecimal("amount", d)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
