package mapping

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
)

// ToDomainServicePrice converts a service_prices row to a domain ServicePrice
func ToDomainServicePrice(m models.ServicePrice) domain.ServicePrice {
	return domain.ServicePrice{
		Key:         m.PriceKey,
		Price:       ToDomainCents(m.Price),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalog collapses price rows into a lookup catalog.
func ToDomainCatalog(ms []models.ServicePrice) domain.PriceCatalog {
	catalog := make(domain.PriceCatalog, len(ms))
	for _, m := range ms {
		catalog[m.PriceKey] = ToDomainCents(m.Price)
	}
	return catalog
}
