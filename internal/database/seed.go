package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/quim/internal/catalog"
	"github.com/example/quim/internal/coupons"
	"github.com/example/quim/internal/delivery"
	"github.com/example/quim/internal/models"
)

// Seed inserts the default menu, coupon set and zone table when the
// corresponding tables are still empty. Reruns are no-ops.
func Seed(conn *gorm.DB) error {
	if err := seedTable(conn, &models.Product{}, func() error {
		menu := catalog.DefaultMenu()
		return conn.Create(&menu).Error
	}); err != nil {
		return err
	}

	if err := seedTable(conn, &models.Coupon{}, func() error {
		list := coupons.DefaultCoupons()
		return conn.Create(&list).Error
	}); err != nil {
		return err
	}

	return seedTable(conn, &models.DeliveryZone{}, func() error {
		zones := delivery.DefaultZones()
		return conn.Create(&zones).Error
	})
}

func seedTable(conn *gorm.DB, model interface{}, insert func() error) error {
	var count int64
	if err := conn.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := insert(); err != nil {
		return err
	}
	log.Printf("[Database] seeded %T", model)
	return nil
}

// LoadZones reads the zone table in priority order, falling back to the
// built-in defaults when the table is empty or unreadable.
func LoadZones(conn *gorm.DB) []models.DeliveryZone {
	var zones []models.DeliveryZone
	err := conn.Preload("Ranges").Order("priority").Find(&zones).Error
	if err != nil || len(zones) == 0 {
		if err != nil {
			log.Printf("[Database] zone load failed, using defaults: %v", err)
		}
		return delivery.DefaultZones()
	}
	return zones
}
