package models

// User is the DB representation of a user row.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	AuditFields
}
