package domain

// User is an authenticated account. Every business record is scoped to the
// user that created it; users themselves are not owner-scoped.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
