package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// ledgerService commits carts and admin adjustments against the shop accounts.
// Every commit locks all ledger accounts, so concurrent commits serialize.
type ledgerService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountTransactionSupport
	logRepo     portsrepo.BalanceLogWriter
	txnRepo     portsrepo.TransactionWriter
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountTransactionSupport,
	logRepo portsrepo.BalanceLogWriter,
	txnRepo portsrepo.TransactionWriter,
	options ...Option,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txManager:   txManager,
		accountRepo: accountRepo,
		logRepo:     logRepo,
		txnRepo:     txnRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Commit applies a finalized cart.
func (s *ledgerService) Commit(ctx context.Context, operatorID string, items []domain.LineItem) (*domain.CommitResult, error) {
	if len(items) == 0 {
		return nil, &apperrors.EmptyTransactionError{}
	}

	var result *domain.CommitResult
	err := s.inLedgerTx(ctx, "checkout", func(tx pgx.Tx, locked map[domain.AccountID]domain.Account) error {
		for _, required := range []domain.AccountID{domain.GCashFloat, domain.CashOnHand} {
			if _, ok := locked[required]; !ok {
				return &apperrors.AccountNotInitializedError{Account: string(required)}
			}
		}

		now := s.Now()
		plan, err := domain.PlanCheckout(domain.BalancesFromAccounts(locked), items, operatorID, now)
		if err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: s.NewID(),
			UserID:        operatorID,
			TotalAmount:   plan.TotalAmount,
			Items:         items,
		}
		if err := s.applyChanges(ctx, tx, plan, operatorID); err != nil {
			return err
		}

		ts, err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn)
		if err != nil {
			return &apperrors.CommitFailedError{Op: "save transaction", Err: err}
		}
		txn.Timestamp = ts

		// Logs share the server timestamp of their transaction.
		for i := range plan.Logs {
			plan.Logs[i].Timestamp = ts
		}
		if err := s.saveLogs(ctx, tx, plan.Logs, txn.TransactionID); err != nil {
			return err
		}

		result = &domain.CommitResult{Transaction: &txn, Before: plan.Before, After: plan.After, Logs: plan.Logs}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Checkout committed",
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.String("total_amount", result.Transaction.TotalAmount.String()),
		slog.Int("item_count", len(items)),
		slog.String("gcash_float", result.After.GCashFloat.String()),
		slog.String("cash_on_hand", result.After.CashOnHand.String()))
	return result, nil
}

// Adjust applies an admin balance change. Unlike checkout, a missing account
// reads as zero here: this is how balances get initialised.
func (s *ledgerService) Adjust(ctx context.Context, adminID string, adj domain.Adjustment) (*domain.CommitResult, error) {
	if adj.Reference == "" {
		adj.Reference = domain.DefaultAdminReference
	}

	var result *domain.CommitResult
	err := s.inLedgerTx(ctx, "adjust "+string(adj.Kind), func(tx pgx.Tx, locked map[domain.AccountID]domain.Account) error {
		plan, err := domain.PlanAdjustment(domain.BalancesFromAccounts(locked), adj, adminID, s.Now())
		if err != nil {
			return err
		}
		if err := s.applyChanges(ctx, tx, plan, adminID); err != nil {
			return err
		}
		if err := s.saveLogs(ctx, tx, plan.Logs, ""); err != nil {
			return err
		}
		result = &domain.CommitResult{Before: plan.Before, After: plan.After, Logs: plan.Logs}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Balance adjusted",
		slog.String("kind", string(adj.Kind)),
		slog.String("account", string(adj.Account())),
		slog.String("amount", adj.Amount.String()),
		slog.String("new_balance", result.After.Get(adj.Account()).String()))
	return result, nil
}

func (s *ledgerService) applyChanges(ctx context.Context, tx pgx.Tx, plan *domain.CommitPlan, userID string) error {
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, plan.Changes(), userID, s.Now()); err != nil {
		return &apperrors.CommitFailedError{Op: "update balances", Err: err}
	}
	return nil
}

func (s *ledgerService) saveLogs(ctx context.Context, tx pgx.Tx, logs []domain.BalanceChangeLog, transactionID string) error {
	for i := range logs {
		logs[i].LogID = s.NewID()
		logs[i].TransactionID = transactionID
	}
	if err := s.logRepo.SaveLogsInTx(ctx, tx, logs); err != nil {
		return &apperrors.CommitFailedError{Op: "save balance logs", Err: err}
	}
	return nil
}

// inLedgerTx runs fn inside a transaction holding row locks on every ledger
// account. Errors returned by fn abort the transaction unchanged.
func (s *ledgerService) inLedgerTx(ctx context.Context, op string, fn func(tx pgx.Tx, locked map[domain.AccountID]domain.Account) error) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin ledger transaction", slog.String("op", op))
		return &apperrors.CommitFailedError{Op: op, Err: err}
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.txManager.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back ledger transaction", slog.String("op", op))
		}
	}()

	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, domain.LedgerAccounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock ledger accounts", slog.String("op", op))
		return &apperrors.CommitFailedError{Op: op, Err: err}
	}

	if err := fn(tx, locked); err != nil {
		s.LogDebug(ctx, "Ledger transaction aborted", slog.String("op", op), slog.String("reason", err.Error()))
		return err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit ledger transaction", slog.String("op", op))
		return &apperrors.CommitFailedError{Op: op, Err: err}
	}
	committed = true
	return nil
}
