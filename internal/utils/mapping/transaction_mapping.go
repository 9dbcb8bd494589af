package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to its row form. Line items
// are stored verbatim as JSONB.
func ToModelTransaction(d domain.Transaction) (models.PosTransaction, error) {
	items := d.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return models.PosTransaction{}, fmt.Errorf("failed to encode items of transaction %s: %w", d.TransactionID, err)
	}
	return models.PosTransaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		TotalAmount:   ToModelDecimal(d.TotalAmount),
		Items:         raw,
		CreatedAt:     d.Timestamp,
	}, nil
}

// ToDomainTransaction converts a pos_transactions row to a domain Transaction
func ToDomainTransaction(m models.PosTransaction) (domain.Transaction, error) {
	var items []domain.LineItem
	if err := json.Unmarshal(m.Items, &items); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode items of transaction %s: %w", m.TransactionID, err)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Timestamp:     m.CreatedAt,
		TotalAmount:   ToDomainCents(m.TotalAmount),
		Items:         items,
	}, nil
}
