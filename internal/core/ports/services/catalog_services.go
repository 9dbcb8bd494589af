package services

import (
	"context"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// CatalogReaderSvc reads the service price catalog
type CatalogReaderSvc interface {
	LoadCatalog(ctx context.Context) (domain.PriceCatalog, error)
	ListPrices(ctx context.Context) ([]domain.ServicePrice, error)
}

// CatalogWriterSvc maintains the service price catalog
type CatalogWriterSvc interface {
	SavePrices(ctx context.Context, adminID string, prices domain.PriceCatalog) error
	// SeedFromFile loads a YAML price file into an empty catalog and
	// returns how many prices were written.
	SeedFromFile(ctx context.Context, path string) (int, error)
}

// CatalogSvcFacade combines catalog read and write operations
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
