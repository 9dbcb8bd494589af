package dto

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// DayParams selects a business day as YYYY-MM-DD. Empty means today.
type DayParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsResponse is an operator's transactions for one day.
type ListTransactionsResponse struct {
	Date         string               `json:"date"`
	Transactions []domain.Transaction `json:"transactions"`
}

// AuditParams is the audit timeline query. From and To are RFC 3339.
type AuditParams struct {
	From      string  `form:"from" binding:"required"`
	To        string  `form:"to" binding:"required"`
	Limit     int     `form:"limit" binding:"omitempty,gte=1,lte=200"`
	NextToken *string `form:"nextToken"`
}

// AuditTimelineResponse is one page of the audit timeline.
type AuditTimelineResponse struct {
	Entries   []domain.AuditEntry `json:"entries"`
	NextToken *string             `json:"nextToken,omitempty"`
}
