package pgsql

import (
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every Postgres-backed repository. Sessions live
// outside Postgres, so the caller supplies the session store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sessionStore portsrepo.SessionStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       &BaseRepository{Pool: dbPool},
		AccountRepo:     newPgxAccountRepository(dbPool),
		BalanceLogRepo:  newPgxBalanceLogRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PriceRepo:       newPgxPriceRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
		OperatorRepo:    newPgxOperatorRepository(dbPool),
		SessionStore:    sessionStore,
	}
}
