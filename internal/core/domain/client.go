package domain

// Client is a billable counterparty owned by a single user.
type Client struct {
	ClientID       string `json:"clientID"`
	OwnerID        string `json:"ownerID"`
	DisplayName    string `json:"displayName"`
	ContactPerson  string `json:"contactPerson"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BillingAddress string `json:"billingAddress"`
	Notes          string `json:"notes"`
	AuditFields
}
