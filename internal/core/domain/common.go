package domain

import "time"

// AuditFields holds standard audit information for owner-scoped entities.
// CreatedAt is set once at insertion; UpdatedAt advances on every
// successful write.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
