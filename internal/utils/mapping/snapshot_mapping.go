package mapping

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
)

// ToModelBalanceSnapshot converts a domain BalanceSnapshot to its row form
func ToModelBalanceSnapshot(d domain.BalanceSnapshot) models.BalanceSnapshot {
	return models.BalanceSnapshot{
		SnapshotDate:     d.SnapshotDate,
		GCashFloat:       ToModelDecimal(d.GCashFloat),
		CashOnHand:       ToModelDecimal(d.CashOnHand),
		ServiceRevenue:   ToModelDecimal(d.ServiceRevenue),
		TransactionCount: d.TransactionCount,
		ServiceSales:     ToModelDecimal(d.ServiceSales),
		GCashFees:        ToModelDecimal(d.GCashFees),
		CreatedAt:        d.CreatedAt,
	}
}
