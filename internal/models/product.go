package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is an immutable catalog record. Prices are minor currency
// units (centavos); PromoPrice, when set, must be below BasePrice.
type Product struct {
	BaseModel
	Slug              string          `gorm:"uniqueIndex" json:"slug"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	ShortDescription  string          `json:"short_description"`
	LongDescription   string          `json:"long_description"`
	BasePrice         int64           `json:"base_price"`
	PromoPrice        *int64          `json:"promo_price,omitempty"`
	Badges            pq.StringArray  `gorm:"type:text[]" json:"badges"`
	Allergens         pq.StringArray  `gorm:"type:text[]" json:"allergens"`
	Image             string          `json:"image"`
	DeliveryAvailable bool            `json:"delivery_available"`
	ModifierGroups    []ModifierGroup `json:"modifier_groups,omitempty"`
}

// ModifierGroup selection modes.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

type ModifierGroup struct {
	BaseModel
	ProductID    uuid.UUID        `gorm:"type:uuid;index" json:"product_id"`
	Name         string           `json:"name"`
	Mode         string           `json:"mode"` // single|multi
	Required     bool             `json:"required"`
	DisplayOrder int              `json:"display_order"`
	Options      []ModifierOption `gorm:"foreignKey:GroupID" json:"options,omitempty"`
}

type ModifierOption struct {
	BaseModel
	GroupID      uuid.UUID `gorm:"type:uuid;index" json:"group_id"`
	Label        string    `json:"label"`
	PriceDelta   int64     `json:"price_delta"` // centavos, may be negative
	DisplayOrder int       `json:"display_order"`
}

// EffectivePrice returns the promotional price when present and lower
// than the base price, else the base price.
func (p *Product) EffectivePrice() int64 {
	if p.PromoPrice != nil && *p.PromoPrice < p.BasePrice {
		return *p.PromoPrice
	}
	return p.BasePrice
}

// Group finds a modifier group by name.
func (p *Product) Group(name string) (*ModifierGroup, bool) {
	for i := range p.ModifierGroups {
		if p.ModifierGroups[i].Name == name {
			return &p.ModifierGroups[i], true
		}
	}
	return nil, false
}

// Option finds an option by label within the group.
func (g *ModifierGroup) Option(label string) (*ModifierOption, bool) {
	for i := range g.Options {
		if g.Options[i].Label == label {
			return &g.Options[i], true
		}
	}
	return nil, false
}
