package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// PriceRepositoryFacade persists the service price catalog
type PriceRepositoryFacade interface {
	// LoadCatalog returns every configured price. An empty catalog is not an error.
	LoadCatalog(ctx context.Context) (domain.PriceCatalog, error)

	// ListPrices returns every row with its audit fields, ordered by key.
	ListPrices(ctx context.Context) ([]domain.ServicePrice, error)

	// UpsertPrices inserts or replaces the given prices in one transaction.
	UpsertPrices(ctx context.Context, prices domain.PriceCatalog, userID string, now time.Time) error
}
