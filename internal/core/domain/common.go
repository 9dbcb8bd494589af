package domain

import "time"

// AuditFields records who last wrote a mutable row (an account balance or a service price).
type AuditFields struct {
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
