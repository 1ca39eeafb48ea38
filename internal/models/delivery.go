package models

import "github.com/google/uuid"

// DeliveryZone maps postal-code ranges to a fee and an ETA window.
// Zones are checked in Priority order; the first matching range wins,
// so overlapping ranges are legal.
type DeliveryZone struct {
	BaseModel
	Name     string      `json:"name"`
	Priority int         `gorm:"index" json:"priority"`
	Fee      int64       `json:"fee"` // centavos
	ETAMin   int         `json:"eta_min"`
	ETAMax   int         `json:"eta_max"`
	Ranges   []ZoneRange `gorm:"foreignKey:ZoneID" json:"ranges,omitempty"`
}

// ZoneRange is an inclusive numeric interval over 8-digit CEPs.
type ZoneRange struct {
	BaseModel
	ZoneID uuid.UUID `gorm:"type:uuid;index" json:"zone_id"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
}
