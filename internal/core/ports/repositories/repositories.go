package repositories

// RepositoryContainer is an explicit registry of the per-entity storage
// handles, passed into the service layer at construction time.
type RepositoryContainer struct {
	User    UserRepositoryFacade
	Client  ClientRepositoryFacade
	Invoice InvoiceRepositoryFacade
	Item    InvoiceItemRepositoryFacade
	Receipt ReceiptRepositoryFacade
}
