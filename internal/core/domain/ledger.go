package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
)

// CommitPlan is the full effect of a commit, computed from locked balances
// before anything is written.
type CommitPlan struct {
	Before      Balances
	After       Balances
	Logs        []BalanceChangeLog
	TotalAmount Cents
}

// Changes returns the per-account deltas the plan applies.
func (p *CommitPlan) Changes() map[AccountID]Cents {
	return p.Before.Changes(p.After)
}

type gcashGroup struct {
	principal  Cents
	fees       Cents
	feeToGcash Cents
	feeToCash  Cents
	refs       []string
}

func (g *gcashGroup) add(it LineItem) {
	g.principal += it.Amount
	g.fees += it.Fee
	g.feeToGcash += it.FeeToGcash
	g.feeToCash += it.FeeToCash
	if it.Reference != "" {
		g.refs = append(g.refs, it.Reference)
	}
}

func (g *gcashGroup) reference(fallback string) string {
	if len(g.refs) == 0 {
		return fallback
	}
	return strings.Join(g.refs, "; ")
}

// PlanCheckout applies items to current and checks the non-negativity
// invariants. It is pure: it neither reads nor writes storage.
func PlanCheckout(current Balances, items []LineItem, userID string, at time.Time) (*CommitPlan, error) {
	if len(items) == 0 {
		return nil, &apperrors.EmptyTransactionError{}
	}

	var in, out gcashGroup
	var serviceTotal, total Cents
	var serviceDescs []string
	for _, it := range items {
		if err := it.validate(); err != nil {
			return nil, err
		}
		total += it.Total
		switch it.Type {
		case LineItemGCashIn:
			in.add(it)
		case LineItemGCashOut:
			out.add(it)
		case LineItemService:
			serviceTotal += it.Total
			serviceDescs = append(serviceDescs, it.Description)
		}
	}

	inGcash := -in.principal + in.feeToGcash
	inCash := in.principal + in.feeToCash
	outGcash := out.principal + out.feeToGcash
	outCash := -out.principal + out.feeToCash

	after := Balances{
		GCashFloat:     current.GCashFloat + inGcash + outGcash,
		CashOnHand:     current.CashOnHand + inCash + outCash,
		ServiceRevenue: current.ServiceRevenue + serviceTotal,
	}
	if err := checkNonNegative(current, after); err != nil {
		return nil, err
	}

	plan := &CommitPlan{Before: current, After: after, TotalAmount: total}
	snapshot := func(l BalanceChangeLog) BalanceChangeLog {
		l.NewGCashBalance = after.GCashFloat
		l.NewCashOnHand = after.CashOnHand
		l.NewServiceRevenue = after.ServiceRevenue
		l.UserID = userID
		l.Timestamp = at
		return l
	}

	if in.principal > 0 {
		plan.Logs = append(plan.Logs, snapshot(BalanceChangeLog{
			Stream:               StreamCashOnHand,
			Type:                 LogPOSGCashCashIn,
			Amount:               in.principal,
			CashImpact:           inCash,
			GCashPrincipalImpact: inGcash,
			FeeCollected:         in.fees,
			Reference:            in.reference(DefaultCashInReference),
		}))
	}
	if out.principal > 0 {
		plan.Logs = append(plan.Logs, snapshot(BalanceChangeLog{
			Stream:               StreamCashOnHand,
			Type:                 LogPOSGCashCashOut,
			Amount:               out.principal,
			CashImpact:           outCash,
			GCashPrincipalImpact: outGcash,
			FeeCollected:         out.fees,
			Reference:            out.reference(DefaultCashOutReference),
		}))
	}
	if len(serviceDescs) > 0 {
		plan.Logs = append(plan.Logs, snapshot(BalanceChangeLog{
			Stream:    StreamServiceRevenue,
			Type:      LogPOSServiceSale,
			Amount:    serviceTotal,
			Reference: strings.Join(serviceDescs, "; "),
		}))
	}

	return plan, nil
}

// AdjustmentKind is an administrative balance operation.
type AdjustmentKind string

const (
	AdjustGCashTopUp     AdjustmentKind = AdjustmentKind(LogTopUp)
	AdjustGCashDeduction AdjustmentKind = AdjustmentKind(LogDeduction)
	AdjustAddCash        AdjustmentKind = AdjustmentKind(LogAddCash)
	AdjustDeductCash     AdjustmentKind = AdjustmentKind(LogDeductCash)
	AdjustSetRevenue     AdjustmentKind = AdjustmentKind(LogSetRevenue)
)

// Adjustment is an admin change to one account outside the POS flow. For
// AdjustSetRevenue, Amount is the new balance rather than a delta.
type Adjustment struct {
	Kind      AdjustmentKind
	Amount    Cents
	Reference string
}

// Account returns the account the adjustment targets.
func (a Adjustment) Account() AccountID {
	switch a.Kind {
	case AdjustGCashTopUp, AdjustGCashDeduction:
		return GCashFloat
	case AdjustAddCash, AdjustDeductCash:
		return CashOnHand
	}
	return ServiceRevenue
}

// PlanAdjustment applies an admin adjustment to current.
func PlanAdjustment(current Balances, adj Adjustment, userID string, at time.Time) (*CommitPlan, error) {
	after := current
	log := BalanceChangeLog{
		Type:      BalanceLogType(adj.Kind),
		Reference: adj.Reference,
		UserID:    userID,
		Timestamp: at,
	}

	switch adj.Kind {
	case AdjustGCashTopUp, AdjustGCashDeduction, AdjustAddCash, AdjustDeductCash:
		if adj.Amount <= 0 {
			return nil, &apperrors.InvalidAmountError{Field: "amount", Amount: adj.Amount.Decimal()}
		}
	case AdjustSetRevenue:
		if adj.Amount < 0 {
			return nil, &apperrors.InvalidAmountError{Field: "balance", Amount: adj.Amount.Decimal(), Reason: "must not be negative"}
		}
	default:
		return nil, fmt.Errorf("%w: unknown adjustment %q", apperrors.ErrValidation, adj.Kind)
	}

	switch adj.Kind {
	case AdjustGCashTopUp:
		after.GCashFloat += adj.Amount
		log.Stream, log.Amount, log.GCashPrincipalImpact = StreamGCash, adj.Amount, adj.Amount
	case AdjustGCashDeduction:
		after.GCashFloat -= adj.Amount
		log.Stream, log.Amount, log.GCashPrincipalImpact = StreamGCash, -adj.Amount, -adj.Amount
	case AdjustAddCash:
		after.CashOnHand += adj.Amount
		log.Stream, log.Amount, log.CashImpact = StreamCashOnHand, adj.Amount, adj.Amount
	case AdjustDeductCash:
		after.CashOnHand -= adj.Amount
		log.Stream, log.Amount, log.CashImpact = StreamCashOnHand, -adj.Amount, -adj.Amount
	case AdjustSetRevenue:
		after.ServiceRevenue = adj.Amount
		log.Stream, log.Amount = StreamServiceRevenue, adj.Amount-current.ServiceRevenue
	}

	if err := checkNonNegative(current, after); err != nil {
		return nil, err
	}

	log.NewGCashBalance = after.GCashFloat
	log.NewCashOnHand = after.CashOnHand
	log.NewServiceRevenue = after.ServiceRevenue
	return &CommitPlan{Before: current, After: after, Logs: []BalanceChangeLog{log}}, nil
}

// checkNonNegative reports the float first, then the drawer.
func checkNonNegative(before, after Balances) error {
	if after.GCashFloat < 0 {
		return &apperrors.InsufficientFundsError{
			Account:         string(GCashFloat),
			CurrentBalance:  before.GCashFloat.Decimal(),
			ProposedBalance: after.GCashFloat.Decimal(),
		}
	}
	if after.CashOnHand < 0 {
		return &apperrors.InsufficientFundsError{
			Account:         string(CashOnHand),
			CurrentBalance:  before.CashOnHand.Decimal(),
			ProposedBalance: after.CashOnHand.Decimal(),
		}
	}
	return nil
}
