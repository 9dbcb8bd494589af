package dto

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the POS-specific binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("pricekey", validatePriceKey); err != nil {
		return err
	}
	return v.RegisterValidation("direction", validateDirection)
}

func validatePriceKey(fl validator.FieldLevel) bool {
	return domain.ValidatePriceKey(fl.Field().String()) == nil
}

// validateDirection accepts the delta adjustments. set-revenue has its own route.
func validateDirection(fl validator.FieldLevel) bool {
	switch domain.AdjustmentKind(fl.Field().String()) {
	case domain.AdjustGCashTopUp, domain.AdjustGCashDeduction, domain.AdjustAddCash, domain.AdjustDeductCash:
		return true
	}
	return false
}
