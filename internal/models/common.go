package models

import "time"

// AuditFields mirrors domain.AuditFields for DB storage.
type AuditFields struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
