package coupons

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/example/quim/internal/models"
)

// DBRegistry resolves coupons from Postgres.
type DBRegistry struct {
	db *gorm.DB
}

func NewDBRegistry(db *gorm.DB) *DBRegistry {
	return &DBRegistry{db: db}
}

func (r *DBRegistry) Find(code string) (*models.Coupon, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}
	var coupon models.Coupon
	err := r.db.First(&coupon, "upper(code) = ?", strings.ToUpper(code)).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("[Coupons] lookup %q failed: %v", code, err)
		}
		return nil, false
	}
	return &coupon, true
}

func (r *DBRegistry) Active() []models.Coupon {
	var out []models.Coupon
	if err := r.db.Where("active").Order("code").Find(&out).Error; err != nil {
		log.Printf("[Coupons] list failed: %v", err)
		return nil
	}
	return out
}
