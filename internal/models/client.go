package models

// Client is the DB representation of a client row.
type Client struct {
	ClientID       string
	OwnerID        string
	DisplayName    string
	ContactPerson  string
	Email          string
	Phone          string
	BillingAddress string
	Notes          string
	AuditFields
}
