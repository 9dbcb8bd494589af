package domain

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

var priceKeyPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// PriceCatalog maps a service price key such as printing_bw_a4 to its unit price.
type PriceCatalog map[string]Cents

// Price looks up key. A missing key is a configuration error, never zero.
func (c PriceCatalog) Price(key string) (Cents, error) {
	p, ok := c[key]
	if !ok {
		return 0, &apperrors.PriceNotConfiguredError{Key: key}
	}
	return p, nil
}

// Clone returns an independent copy, used as a session snapshot.
func (c PriceCatalog) Clone() PriceCatalog {
	out := make(PriceCatalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Keys returns the catalog keys in sorted order.
func (c PriceCatalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every key and price.
func (c PriceCatalog) Validate() error {
	for _, k := range c.Keys() {
		if err := ValidatePriceKey(k); err != nil {
			return err
		}
		if c[k] < 0 {
			return &apperrors.InvalidAmountError{Field: "price." + k, Amount: c[k].Decimal(), Reason: "must not be negative"}
		}
	}
	return nil
}

// ValidatePriceKey checks the lowercase underscore-separated key format.
func ValidatePriceKey(key string) error {
	if !priceKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: invalid price key %q", apperrors.ErrValidation, key)
	}
	return nil
}

// ServicePrice is one persisted catalog row.
type ServicePrice struct {
	Key   string `json:"key"`
	Price Cents  `json:"price"`
	AuditFields
}
