package domain

import (
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

// AccountID names one of the shop's tracked balances.
type AccountID string

const (
	GCashFloat     AccountID = apperrors.AccountGCashFloat
	CashOnHand     AccountID = apperrors.AccountCashOnHand
	ServiceRevenue AccountID = apperrors.AccountServiceRevenue
)

// LedgerAccounts lists every tracked account in lock order.
var LedgerAccounts = []AccountID{CashOnHand, GCashFloat, ServiceRevenue}

// Valid reports whether a is a tracked account.
func (a AccountID) Valid() bool {
	switch a {
	case GCashFloat, CashOnHand, ServiceRevenue:
		return true
	}
	return false
}

// Account is a named balance. Only the ledger service mutates it.
type Account struct {
	AccountID     AccountID `json:"accountId"`
	Balance       Cents     `json:"balance"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Balances is a snapshot of the three tracked accounts.
type Balances struct {
	GCashFloat     Cents `json:"gcashFloat"`
	CashOnHand     Cents `json:"cashOnHand"`
	ServiceRevenue Cents `json:"serviceRevenue"`
}

// BalancesFromAccounts builds a snapshot from locked rows. Missing rows read as zero.
func BalancesFromAccounts(accounts map[AccountID]Account) Balances {
	return Balances{
		GCashFloat:     accounts[GCashFloat].Balance,
		CashOnHand:     accounts[CashOnHand].Balance,
		ServiceRevenue: accounts[ServiceRevenue].Balance,
	}
}

// Get returns the balance of one account.
func (b Balances) Get(id AccountID) Cents {
	switch id {
	case GCashFloat:
		return b.GCashFloat
	case CashOnHand:
		return b.CashOnHand
	case ServiceRevenue:
		return b.ServiceRevenue
	}
	return 0
}

// Changes returns the per-account deltas from b to after, skipping zeros.
func (b Balances) Changes(after Balances) map[AccountID]Cents {
	changes := make(map[AccountID]Cents, len(LedgerAccounts))
	for _, id := range LedgerAccounts {
		if d := after.Get(id) - b.Get(id); d != 0 {
			changes[id] = d
		}
	}
	return changes
}
