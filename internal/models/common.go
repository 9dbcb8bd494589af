package models

import "time"

// AuditFields holds the last-writer columns shared by mutable tables.
type AuditFields struct {
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
