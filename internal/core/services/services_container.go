package services

import (
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/platform/config"
)

// NewServiceContainer wires every service from its repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.TxManager, repos.AccountRepo, repos.BalanceLogRepo, repos.TransactionRepo)
	catalog := NewCatalogService(repos.PriceRepo)

	return &portssvc.ServiceContainer{
		Ledger:  ledger,
		Catalog: catalog,
		POS: NewPOSService(repos.SessionStore, catalog, ledger,
			WithSessionLockTTL(defaultSessionLockTTL)),
		Reporting: NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.BalanceLogRepo, repos.ReportingRepo,
			WithBusinessLocation(cfg.BusinessLocation)),
		Auth: NewAuthService(repos.OperatorRepo, TokenSettings{
			Secret: cfg.JWTSecret,
			Expiry: cfg.JWTExpiryDuration,
			Issuer: cfg.JWTIssuer,
		}),
	}
}
