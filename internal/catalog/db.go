package catalog

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/example/quim/internal/models"
)

// DBProvider serves the catalog from Postgres. It satisfies the same
// Provider contract as the static menu, so the cart never knows which
// one is behind it.
type DBProvider struct {
	db *gorm.DB
}

func NewDBProvider(db *gorm.DB) *DBProvider {
	return &DBProvider{db: db}
}

func (p *DBProvider) List() []models.Product {
	var products []models.Product
	if err := p.db.Preload("ModifierGroups.Options").
		Order("category, name").Find(&products).Error; err != nil {
		log.Printf("[Catalog] list failed: %v", err)
		return nil
	}
	return products
}

func (p *DBProvider) ListByCategory(category string) []models.Product {
	if category == "" {
		return p.List()
	}
	var products []models.Product
	if err := p.db.Preload("ModifierGroups.Options").
		Where("lower(category) = ?", strings.ToLower(category)).
		Order("name").Find(&products).Error; err != nil {
		log.Printf("[Catalog] list by category failed: %v", err)
		return nil
	}
	return products
}

func (p *DBProvider) Search(query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return p.List()
	}
	pattern := "%" + term + "%"
	var products []models.Product
	if err := p.db.Preload("ModifierGroups.Options").
		Where("lower(name) LIKE ? OR lower(short_description) LIKE ? OR lower(long_description) LIKE ? OR lower(category) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("name").Find(&products).Error; err != nil {
		log.Printf("[Catalog] search failed: %v", err)
		return nil
	}
	return products
}

func (p *DBProvider) GetBySlug(slug string) (*models.Product, bool) {
	var product models.Product
	err := p.db.Preload("ModifierGroups.Options").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("[Catalog] lookup %q failed: %v", slug, err)
		}
		return nil, false
	}
	return &product, true
}

func (p *DBProvider) Categories() []string {
	var categories []string
	if err := p.db.Model(&models.Product{}).
		Distinct("category").Order("category").
		Pluck("category", &categories).Error; err != nil {
		log.Printf("[Catalog] categories failed: %v", err)
		return nil
	}
	return categories
}
