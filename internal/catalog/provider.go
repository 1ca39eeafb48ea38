package catalog

import (
	"strings"

	"github.com/example/quim/internal/models"
)

// Provider is the read-only catalog the cart consumes. Implementations
// must be safe for concurrent readers; the cart never writes back.
type Provider interface {
	List() []models.Product
	ListByCategory(category string) []models.Product
	Search(query string) []models.Product
	GetBySlug(slug string) (*models.Product, bool)
	Categories() []string
}

func matchesQuery(p *models.Product, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range []string{p.Name, p.ShortDescription, p.LongDescription, p.Category} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
