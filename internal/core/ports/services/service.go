package services

// ServiceContainer groups all service facades for handler registration.
type ServiceContainer struct {
	User    UserSvcFacade
	Client  ClientSvcFacade
	Invoice InvoiceSvcFacade
	Item    InvoiceItemSvcFacade
	Receipt ReceiptSvcFacade
}
