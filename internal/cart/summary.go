package cart

import (
	"github.com/example/quim/internal/pricing"
)

// DeliveryStatus distinguishes the fee's provenance. Unavailable means
// the destination is outside every zone and checkout must be blocked;
// that is not the same as Unknown (no destination entered yet) or Free.
type DeliveryStatus string

const (
	DeliveryPickup      DeliveryStatus = "pickup"
	DeliveryQuoted      DeliveryStatus = "quoted"
	DeliveryFree        DeliveryStatus = "free"
	DeliveryUnavailable DeliveryStatus = "unavailable"
	DeliveryUnknown     DeliveryStatus = "unknown"
)

// Summary is the fully derived view the UI consumes. It is never
// stored; identical inputs always produce an identical Summary.
type Summary struct {
	Subtotal       int64          `json:"subtotal"`
	DeliveryFee    int64          `json:"delivery_fee"`
	Discount       int64          `json:"discount"`
	Total          int64          `json:"total"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	ETAMin         int            `json:"eta_min,omitempty"`
	ETAMax         int            `json:"eta_max,omitempty"`
	CouponCode     string         `json:"coupon_code,omitempty"`
	CouponApplied  bool           `json:"coupon_applied"`
	CouponReason   string         `json:"coupon_reason,omitempty"`
	ItemCount      int            `json:"item_count"`
}

// Summary projects the current state into totals. The free-shipping
// threshold zeroes the fee before the coupon discount is computed, so a
// shipping coupon on an already-free order adds nothing.
func (c *Cart) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summaryLocked()
}

func (c *Cart) summaryLocked() Summary {
	s := Summary{DeliveryStatus: DeliveryUnknown}

	for _, it := range c.items {
		s.Subtotal += it.LineTotal()
		s.ItemCount += it.Quantity
	}

	switch {
	case c.pickup:
		s.DeliveryStatus = DeliveryPickup
	case c.postalCode == "":
		s.DeliveryStatus = DeliveryUnknown
	default:
		quote, ok := c.deps.Delivery.Resolve(c.postalCode)
		if !ok {
			s.DeliveryStatus = DeliveryUnavailable
			break
		}
		s.ETAMin, s.ETAMax = quote.ETAMin, quote.ETAMax
		if min := c.deps.Limits.FreeShippingMin; min > 0 && s.Subtotal >= min {
			s.DeliveryStatus = DeliveryFree
			break
		}
		s.DeliveryStatus = DeliveryQuoted
		s.DeliveryFee = quote.Fee
	}

	if c.couponCode != "" {
		coupon, found := c.deps.Coupons.Find(c.couponCode)
		s.CouponCode = c.couponCode
		if !found {
			s.CouponReason = pricing.ReasonUnknownCode
		} else {
			result := pricing.Discount(coupon, pricing.Context{
				Subtotal:    s.Subtotal,
				DeliveryFee: s.DeliveryFee,
				FirstOrder:  c.firstOrder,
				Now:         c.deps.Clock(),
			})
			s.Discount = result.Amount
			s.CouponApplied = result.Applicable
			s.CouponReason = result.Reason
		}
	}

	s.Total = s.Subtotal + s.DeliveryFee - s.Discount
	if s.Total < 0 {
		s.Total = 0
	}
	return s
}
