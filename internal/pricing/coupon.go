package pricing

import (
	"time"

	"github.com/example/quim/internal/models"
)

// Reason codes for inapplicable coupons. The UI tells "invalid coupon"
// apart from "system failure" by these, never by an error value.
const (
	ReasonOK          = ""
	ReasonUnknownCode = "unknown_code"
	ReasonInactive    = "inactive"
	ReasonMinSubtotal = "min_subtotal"
	ReasonFirstOrder  = "first_order_only"
	ReasonDayOfWeek   = "day_of_week"
)

// Context carries everything a coupon rule may inspect.
type Context struct {
	Subtotal    int64
	DeliveryFee int64
	FirstOrder  bool
	Now         time.Time
}

// Result of applying a coupon. Amount is zero whenever Applicable is
// false; Reason then names the failed restriction.
type Result struct {
	Amount     int64  `json:"amount"`
	Applicable bool   `json:"applicable"`
	Reason     string `json:"reason,omitempty"`
}

// Discount computes a coupon's discount for the given context. An
// inapplicable coupon yields a zero discount, not an error. All
// restrictions are checked independently; the first failure reported is
// just the one listed first here, but the coupon applies only when every
// check passes.
func Discount(coupon *models.Coupon, ctx Context) Result {
	if coupon == nil {
		return Result{Reason: ReasonUnknownCode}
	}
	if !coupon.Active {
		return Result{Reason: ReasonInactive}
	}
	if ctx.Subtotal < coupon.MinSubtotal {
		return Result{Reason: ReasonMinSubtotal}
	}
	if coupon.FirstOrderOnly && !ctx.FirstOrder {
		return Result{Reason: ReasonFirstOrder}
	}
	if coupon.WeekendOnly && !isWeekend(ctx.Now) {
		return Result{Reason: ReasonDayOfWeek}
	}

	var amount int64
	switch {
	case coupon.Kind == models.CouponPercent:
		amount = roundHalfUpPercent(ctx.Subtotal, coupon.Magnitude)
	case coupon.AppliesTo == models.AppliesToShipping:
		// Shipping coupons never touch the subtotal and never push the
		// fee below zero.
		amount = min64(coupon.Magnitude, ctx.DeliveryFee)
	default:
		amount = coupon.Magnitude
	}

	// Total discount may never exceed what is actually owed.
	if limit := ctx.Subtotal + ctx.DeliveryFee; amount > limit {
		amount = limit
	}
	if amount < 0 {
		amount = 0
	}
	return Result{Amount: amount, Applicable: true}
}

// roundHalfUpPercent computes round(subtotal*pct/100) with half-up
// rounding on minor units, avoiding float drift.
func roundHalfUpPercent(subtotal, pct int64) int64 {
	return (subtotal*pct + 50) / 100
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
