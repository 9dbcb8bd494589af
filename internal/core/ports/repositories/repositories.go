package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager       TransactionManager
	AccountRepo     AccountRepositoryFacade
	BalanceLogRepo  BalanceLogRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	PriceRepo       PriceRepositoryFacade
	ReportingRepo   ReportingRepositoryFacade
	OperatorRepo    OperatorRepositoryFacade
	SessionStore    SessionStore
}
