package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeedUserID is recorded as the last editor of prices loaded from a seed file.
const SeedUserID = "system"

type catalogService struct {
	BaseService
	priceRepo portsrepo.PriceRepositoryFacade
}

// NewCatalogService creates a new price catalog service
func NewCatalogService(priceRepo portsrepo.PriceRepositoryFacade, options ...Option) portssvc.CatalogSvcFacade {
	svc := &catalogService{priceRepo: priceRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) LoadCatalog(ctx context.Context) (domain.PriceCatalog, error) {
	catalog, err := s.priceRepo.LoadCatalog(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load price catalog")
		return nil, fmt.Errorf("failed to load price catalog: %w", err)
	}
	return catalog, nil
}

func (s *catalogService) ListPrices(ctx context.Context) ([]domain.ServicePrice, error) {
	prices, err := s.priceRepo.ListPrices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list prices")
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return prices, nil
}

// SavePrices upserts the given prices. Keys not present are left unchanged.
func (s *catalogService) SavePrices(ctx context.Context, adminID string, prices domain.PriceCatalog) error {
	if len(prices) == 0 {
		return fmt.Errorf("%w: at least one price is required", apperrors.ErrValidation)
	}
	if err := prices.Validate(); err != nil {
		return err
	}

	if err := s.priceRepo.UpsertPrices(ctx, prices, adminID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to save prices", slog.Int("count", len(prices)))
		return fmt.Errorf("failed to save prices: %w", err)
	}

	s.LogInfo(ctx, "Prices updated", slog.Any("keys", prices.Keys()))
	return nil
}

// priceSeedFile is the on-disk layout of a price seed:
//
//	prices:
//	  printing_bw_a4: "3.00"
//	  pvc_edit: 15
type priceSeedFile struct {
	Prices map[string]yaml.Node `yaml:"prices"`
}

// SeedFromFile fills an empty catalog from a YAML file. A catalog that already
// has prices is never overwritten.
func (s *catalogService) SeedFromFile(ctx context.Context, path string) (int, error) {
	existing, err := s.priceRepo.LoadCatalog(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load price catalog: %w", err)
	}
	if len(existing) > 0 {
		s.LogDebug(ctx, "Price catalog already populated, skipping seed", slog.Int("count", len(existing)))
		return 0, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read price seed %s: %w", path, err)
	}
	catalog, err := parsePriceSeed(raw)
	if err != nil {
		return 0, err
	}
	if len(catalog) == 0 {
		return 0, nil
	}

	if err := s.priceRepo.UpsertPrices(ctx, catalog, SeedUserID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to seed prices")
		return 0, fmt.Errorf("failed to seed prices: %w", err)
	}
	s.LogInfo(ctx, "Price catalog seeded", slog.String("path", path), slog.Int("count", len(catalog)))
	return len(catalog), nil
}

func parsePriceSeed(raw []byte) (domain.PriceCatalog, error) {
	var seed priceSeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("%w: invalid price seed: %v", apperrors.ErrValidation, err)
	}

	catalog := make(domain.PriceCatalog, len(seed.Prices))
	for key, node := range seed.Prices {
		// Parse the scalar text directly so 2.5 never passes through a float.
		d, err := decimal.NewFromString(node.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: price %s: %q is not a number", apperrors.ErrValidation, key, node.Value)
		}
		c, err := domain.CentsFromDecimal("price."+key, d)
		if err != nil {
			return nil, err
		}
		catalog[key] = c
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
