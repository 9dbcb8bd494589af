package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

// Session is one operator's open POS terminal: who is ringing up sales, the
// price snapshot taken when the shift opened, and the cart in progress.
type Session struct {
	SessionID  string       `json:"sessionId"`
	OperatorID string       `json:"operatorId"`
	OpenedAt   time.Time    `json:"openedAt"`
	Catalog    PriceCatalog `json:"catalog"`
	Cart       *Cart        `json:"cart"`
}

// NewSession opens a session with an empty cart and a private catalog copy.
func NewSession(sessionID, operatorID string, catalog PriceCatalog, openedAt time.Time) *Session {
	return &Session{
		SessionID:  sessionID,
		OperatorID: operatorID,
		OpenedAt:   openedAt,
		Catalog:    catalog.Clone(),
		Cart:       NewCart(),
	}
}

// AuthorizeOperator rejects access by anyone but the owning operator.
func (s *Session) AuthorizeOperator(operatorID string) error {
	if s.OperatorID != operatorID {
		return fmt.Errorf("%w: session %s belongs to another operator", apperrors.ErrForbidden, s.SessionID)
	}
	return nil
}
