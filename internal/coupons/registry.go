// Package coupons looks up discount codes. The registry interface is
// deliberately tiny so a remote lookup can replace the static table
// without touching the pricing rules.
package coupons

import (
	"fmt"
	"strings"

	"github.com/example/quim/internal/models"
)

// Registry resolves a code to a coupon. Codes match case-insensitively.
// A missing code is a lookup miss, not an error.
type Registry interface {
	Find(code string) (*models.Coupon, bool)
	Active() []models.Coupon
}

// StaticRegistry serves a fixed coupon list.
type StaticRegistry struct {
	coupons []models.Coupon
}

func NewStaticRegistry(coupons []models.Coupon) *StaticRegistry {
	return &StaticRegistry{coupons: coupons}
}

// NewDefaultRegistry serves the house coupon set.
func NewDefaultRegistry() *StaticRegistry {
	return NewStaticRegistry(DefaultCoupons())
}

func (r *StaticRegistry) Find(code string) (*models.Coupon, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}
	for i := range r.coupons {
		if strings.EqualFold(r.coupons[i].Code, code) {
			return &r.coupons[i], true
		}
	}
	return nil, false
}

// Active lists coupons currently enabled, for display.
func (r *StaticRegistry) Active() []models.Coupon {
	var out []models.Coupon
	for _, c := range r.coupons {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// Describe renders a human-readable discount description.
func Describe(c *models.Coupon) string {
	if c.Kind == models.CouponPercent {
		return fmt.Sprintf("%d%% de desconto", c.Magnitude)
	}
	if c.AppliesTo == models.AppliesToShipping {
		return fmt.Sprintf("até R$ %d,%02d de desconto no frete", c.Magnitude/100, c.Magnitude%100)
	}
	return fmt.Sprintf("R$ %d,%02d de desconto", c.Magnitude/100, c.Magnitude%100)
}

// DefaultCoupons is the seed registry. Magnitudes are percent points
// for percent coupons and centavos otherwise. FRETEGRATIS carries a
// magnitude above every zone fee so min(magnitude, fee) always offsets
// the whole fee.
func DefaultCoupons() []models.Coupon {
	return []models.Coupon{
		{Code: "BEMVINDO10", Kind: models.CouponPercent, AppliesTo: models.AppliesToSubtotal, Magnitude: 10, Active: true, Description: "Boas-vindas"},
		{Code: "QUIM10", Kind: models.CouponPercent, AppliesTo: models.AppliesToSubtotal, Magnitude: 10, Active: true, MinSubtotal: 5000, Description: "Clube Quim"},
		{Code: "PRIMEIRA15", Kind: models.CouponPercent, AppliesTo: models.AppliesToSubtotal, Magnitude: 15, Active: true, MinSubtotal: 3000, FirstOrderOnly: true, Description: "Primeira compra"},
		{Code: "BEMVINDO20", Kind: models.CouponPercent, AppliesTo: models.AppliesToSubtotal, Magnitude: 20, Active: true, MinSubtotal: 8000, Description: "Boas-vindas especial"},
		{Code: "DESCONTO25", Kind: models.CouponFixed, AppliesTo: models.AppliesToSubtotal, Magnitude: 2500, Active: true, MinSubtotal: 6000, Description: "Desconto fixo"},
		{Code: "FRETE5", Kind: models.CouponFixed, AppliesTo: models.AppliesToShipping, Magnitude: 500, Active: true, Description: "Abatimento no frete"},
		{Code: "FRETEGRATIS", Kind: models.CouponFixed, AppliesTo: models.AppliesToShipping, Magnitude: 10000, Active: true, Description: "Frete grátis"},
		{Code: "WEEKEND10", Kind: models.CouponPercent, AppliesTo: models.AppliesToSubtotal, Magnitude: 10, Active: false, MinSubtotal: 4000, WeekendOnly: true, Description: "Fim de semana"},
	}
}
