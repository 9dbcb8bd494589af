package mapping

import (
	"database/sql"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
)

// ToModelBalanceLog converts a domain BalanceChangeLog to its row form
func ToModelBalanceLog(d domain.BalanceChangeLog) models.BalanceChangeLog {
	return models.BalanceChangeLog{
		LogID:                d.LogID,
		TransactionID:        sql.NullString{String: d.TransactionID, Valid: d.TransactionID != ""},
		Stream:               string(d.Stream),
		LogType:              string(d.Type),
		Amount:               ToModelDecimal(d.Amount),
		CashImpact:           ToModelDecimal(d.CashImpact),
		GCashPrincipalImpact: ToModelDecimal(d.GCashPrincipalImpact),
		FeeCollected:         ToModelDecimal(d.FeeCollected),
		NewGCashBalance:      ToModelDecimal(d.NewGCashBalance),
		NewCashBalance:       ToModelDecimal(d.NewCashOnHand),
		NewBalance:           ToModelDecimal(d.NewServiceRevenue),
		Reference:            d.Reference,
		UserID:               d.UserID,
		CreatedAt:            d.Timestamp,
	}
}

// ToDomainBalanceLog converts a balance_change_logs row to a domain log
func ToDomainBalanceLog(m models.BalanceChangeLog) domain.BalanceChangeLog {
	return domain.BalanceChangeLog{
		LogID:                m.LogID,
		TransactionID:        m.TransactionID.String,
		Stream:               domain.LogStream(m.Stream),
		Type:                 domain.BalanceLogType(m.LogType),
		Amount:               ToDomainCents(m.Amount),
		CashImpact:           ToDomainCents(m.CashImpact),
		GCashPrincipalImpact: ToDomainCents(m.GCashPrincipalImpact),
		FeeCollected:         ToDomainCents(m.FeeCollected),
		NewGCashBalance:      ToDomainCents(m.NewGCashBalance),
		NewCashOnHand:        ToDomainCents(m.NewCashBalance),
		NewServiceRevenue:    ToDomainCents(m.NewBalance),
		Reference:            m.Reference,
		UserID:               m.UserID,
		Timestamp:            m.CreatedAt,
	}
}
