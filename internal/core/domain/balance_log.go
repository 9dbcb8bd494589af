package domain

import "time"

// LogStream groups balance change logs by the account family they audit.
type LogStream string

const (
	StreamGCash          LogStream = "gcash"
	StreamCashOnHand     LogStream = "cash_on_hand"
	StreamServiceRevenue LogStream = "service_revenue"
)

// BalanceLogType tags the operation that caused a balance change.
type BalanceLogType string

const (
	LogPOSGCashCashIn  BalanceLogType = "pos-gcash-cash-in"
	LogPOSGCashCashOut BalanceLogType = "pos-gcash-cash-out"
	LogPOSServiceSale  BalanceLogType = "pos-service-sale"
	LogTopUp           BalanceLogType = "top-up"
	LogDeduction       BalanceLogType = "deduction"
	LogAddCash         BalanceLogType = "add-cash"
	LogDeductCash      BalanceLogType = "deduct-cash"
	LogSetRevenue      BalanceLogType = "set-revenue"
)

// Default references written when the operator gave none.
const (
	DefaultCashInReference  = "Customer GCash Cash In (POS)"
	DefaultCashOutReference = "Customer GCash Cash Out (POS)"
	DefaultAdminReference   = "Admin Adjustment"
	DefaultServiceReference = "Service Sales (POS)"
)

// BalanceChangeLog is an append-only audit record written next to every
// account mutation. The New* fields snapshot all balances after the change.
type BalanceChangeLog struct {
	LogID                string         `json:"logId"`
	TransactionID        string         `json:"transactionId,omitempty"`
	Stream               LogStream      `json:"stream"`
	Type                 BalanceLogType `json:"type"`
	Amount               Cents          `json:"amount"`
	CashImpact           Cents          `json:"cashImpact"`
	GCashPrincipalImpact Cents          `json:"gcashPrincipalImpact"`
	FeeCollected         Cents          `json:"feeCollected"`
	NewGCashBalance      Cents          `json:"newGcashBalance"`
	NewCashOnHand        Cents          `json:"newCashOnHandBalance"`
	NewServiceRevenue    Cents          `json:"newServiceRevenue"`
	Reference            string         `json:"reference"`
	UserID               string         `json:"user"`
	Timestamp            time.Time      `json:"timestamp"`
}
