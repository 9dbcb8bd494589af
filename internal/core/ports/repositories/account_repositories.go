package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for ledger accounts
type AccountReader interface {
	// FindAccountByID retrieves one account. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error)

	// ListAccounts retrieves every account that exists.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountTransactionSupport defines operations that run inside a ledger transaction
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects and row-locks the given accounts.
	// Accounts that do not exist are simply absent from the result.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []domain.AccountID) (map[domain.AccountID]domain.Account, error)

	// ApplyBalanceChangesInTx adds each delta to its account, creating the
	// account row when it does not exist yet.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[domain.AccountID]domain.Cents, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}
