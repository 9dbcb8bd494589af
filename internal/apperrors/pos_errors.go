package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Account names used in error payloads. They match the ledger account ids.
const (
	AccountGCashFloat     = "gcash_float"
	AccountCashOnHand     = "cash_on_hand"
	AccountServiceRevenue = "service_revenue"
)

// Coded is implemented by every POS error variant. The code is stable and safe
// to hand to a terminal for rendering.
type Coded interface {
	error
	ErrorCode() string
}

// InvalidAmountError reports a non-positive or badly scaled money amount.
type InvalidAmountError struct {
	Field  string          `json:"field"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

func (e *InvalidAmountError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Amount.String(), e.Reason)
	}
	return fmt.Sprintf("invalid %s %s: must be greater than zero", e.Field, e.Amount.String())
}
func (e *InvalidAmountError) Is(target error) bool { return target == ErrValidation }
func (e *InvalidAmountError) ErrorCode() string    { return "INVALID_AMOUNT" }

// PriceNotConfiguredError reports a catalog key with no price.
type PriceNotConfiguredError struct {
	Key string `json:"key"`
}

func (e *PriceNotConfiguredError) Error() string {
	return fmt.Sprintf("price for '%s' is not configured", e.Key)
}
func (e *PriceNotConfiguredError) Is(target error) bool { return target == ErrValidation }
func (e *PriceNotConfiguredError) ErrorCode() string    { return "PRICE_NOT_CONFIGURED" }

// FeeSplitMismatchError reports a fee split that does not add up to the fee.
type FeeSplitMismatchError struct {
	Fee        decimal.Decimal `json:"fee"`
	FeeToGcash decimal.Decimal `json:"feeToGcash"`
	FeeToCash  decimal.Decimal `json:"feeToCash"`
}

func (e *FeeSplitMismatchError) Error() string {
	return fmt.Sprintf("fee split %s + %s does not equal fee %s",
		e.FeeToGcash.StringFixed(2), e.FeeToCash.StringFixed(2), e.Fee.StringFixed(2))
}
func (e *FeeSplitMismatchError) Is(target error) bool { return target == ErrValidation }
func (e *FeeSplitMismatchError) ErrorCode() string    { return "FEE_SPLIT_MISMATCH" }

// IndexOutOfRangeError reports a cart index that does not exist.
type IndexOutOfRangeError struct {
	Index  int `json:"index"`
	Length int `json:"length"`
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("item index %d out of range (cart has %d items)", e.Index, e.Length)
}
func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrValidation }
func (e *IndexOutOfRangeError) ErrorCode() string    { return "INDEX_OUT_OF_RANGE" }

// EmptyTransactionError reports a checkout of an empty cart.
type EmptyTransactionError struct{}

func (e *EmptyTransactionError) Error() string        { return "cannot complete an empty transaction" }
func (e *EmptyTransactionError) Is(target error) bool { return target == ErrValidation }
func (e *EmptyTransactionError) ErrorCode() string    { return "EMPTY_TRANSACTION" }

// InsufficientFundsError reports a commit that would drive a constrained
// account below zero.
type InsufficientFundsError struct {
	Account         string          `json:"account"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	ProposedBalance decimal.Decimal `json:"proposedBalance"`
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s: balance %s would become %s",
		accountLabel(e.Account), e.CurrentBalance.StringFixed(2), e.ProposedBalance.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	switch target {
	case ErrInsufficientFunds:
		return true
	case ErrInsufficientGcashFloat:
		return e.Account == AccountGCashFloat
	case ErrInsufficientCashOnHand:
		return e.Account == AccountCashOnHand
	}
	return false
}

func (e *InsufficientFundsError) ErrorCode() string {
	switch e.Account {
	case AccountGCashFloat:
		return "INSUFFICIENT_GCASH_FLOAT"
	case AccountCashOnHand:
		return "INSUFFICIENT_CASH_ON_HAND"
	}
	return "INSUFFICIENT_FUNDS"
}

// AccountNotInitializedError reports a required ledger account that has never
// been set up by an administrator.
type AccountNotInitializedError struct {
	Account string `json:"account"`
}

func (e *AccountNotInitializedError) Error() string {
	return fmt.Sprintf("%s account is not initialized; an administrator must set an initial balance", accountLabel(e.Account))
}
func (e *AccountNotInitializedError) Is(target error) bool { return target == ErrNotFound }
func (e *AccountNotInitializedError) ErrorCode() string    { return "ACCOUNT_NOT_INITIALIZED" }

// CommitFailedError wraps a persistence fault raised while committing.
type CommitFailedError struct {
	Op  string
	Err error
}

func (e *CommitFailedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}
func (e *CommitFailedError) Unwrap() error        { return e.Err }
func (e *CommitFailedError) Is(target error) bool { return target == ErrCommitFailed }
func (e *CommitFailedError) ErrorCode() string    { return "COMMIT_FAILED" }

// CheckoutInProgressError reports a session write (checkout, cart edit or
// close) attempted while another one holds the session lock.
type CheckoutInProgressError struct {
	SessionID string `json:"sessionId"`
}

func (e *CheckoutInProgressError) Error() string {
	return fmt.Sprintf("session %s is busy: a checkout or cart update is in progress", e.SessionID)
}
func (e *CheckoutInProgressError) Is(target error) bool { return target == ErrConflict }
func (e *CheckoutInProgressError) ErrorCode() string    { return "CHECKOUT_IN_PROGRESS" }

// CodeOf returns the stable code of err, or "" when err is not a POS variant.
func CodeOf(err error) string {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}

func accountLabel(account string) string {
	switch account {
	case AccountGCashFloat:
		return "GCash float"
	case AccountCashOnHand:
		return "cash on hand"
	case AccountServiceRevenue:
		return "service revenue"
	}
	return account
}
