package cart_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/quim/internal/cart"
	"github.com/example/quim/internal/pricing"
)

func TestSummary_EmptyCart(t *testing.T) {
	c := newCart(t)
	s := c.Summary()
	if s.Subtotal != 0 || s.DeliveryFee != 0 || s.Discount != 0 || s.Total != 0 {
		t.Errorf("summary = %+v, want all zeroes", s)
	}
	if s.DeliveryStatus != cart.DeliveryUnknown {
		t.Errorf("status = %s, want unknown before a destination is set", s.DeliveryStatus)
	}
}

func TestSummary_SubtotalAndFee(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1) // 7800
	c.SetDestination("05400-000")                       // Centro Expandido, 890

	s := c.Summary()
	if s.Subtotal != 7800 {
		t.Errorf("subtotal = %d, want 7800", s.Subtotal)
	}
	if s.DeliveryStatus != cart.DeliveryQuoted || s.DeliveryFee != 890 {
		t.Errorf("fee = %d (%s), want quoted 890", s.DeliveryFee, s.DeliveryStatus)
	}
	if s.Total != 8690 {
		t.Errorf("total = %d, want 8690", s.Total)
	}
	if s.ETAMin != 25 || s.ETAMax != 40 {
		t.Errorf("eta = %d-%d, want 25-40", s.ETAMin, s.ETAMax)
	}
}

func TestSummary_FreeShippingThreshold(t *testing.T) {
	c := newCart(t)
	// Exactly at the threshold: 7800 + 7200 = 15000.
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	mustAdd(t, c, "gnocchi-ragu-cordeiro", nil, "", 1)
	c.SetDestination("05400-000")

	s := c.Summary()
	if s.Subtotal != 15000 {
		t.Fatalf("subtotal = %d, want 15000", s.Subtotal)
	}
	if s.DeliveryStatus != cart.DeliveryFree || s.DeliveryFee != 0 {
		t.Errorf("fee = %d (%s), want free 0 regardless of zone", s.DeliveryFee, s.DeliveryStatus)
	}
}

func TestSummary_PickupHasNoFee(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetDestination("05400-000")
	c.SetPickup(true)

	s := c.Summary()
	if s.DeliveryStatus != cart.DeliveryPickup || s.DeliveryFee != 0 {
		t.Errorf("fee = %d (%s), want pickup 0", s.DeliveryFee, s.DeliveryStatus)
	}
}

func TestSummary_UnservicedDestination(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetDestination("99999-999")

	s := c.Summary()
	if s.DeliveryStatus != cart.DeliveryUnavailable {
		t.Errorf("status = %s, want unavailable, which is distinct from a zero fee", s.DeliveryStatus)
	}
	if s.DeliveryFee != 0 {
		t.Errorf("fee = %d, want 0 while unavailable", s.DeliveryFee)
	}
}

func TestSummary_PercentCoupon(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "hamburguer-angus-artesanal", pricing.Selection{"Ponto da Carne": {"Ao ponto"}}, "", 1) // 5200
	c.SetPickup(true)
	c.SetCoupon("bemvindo10") // lookup is case-insensitive

	s := c.Summary()
	if s.Subtotal != 5200 {
		t.Fatalf("subtotal = %d, want 5200", s.Subtotal)
	}
	if !s.CouponApplied || s.Discount != 520 {
		t.Errorf("discount = %d (applied=%v), want 520", s.Discount, s.CouponApplied)
	}
	if s.Total != 4680 {
		t.Errorf("total = %d, want 4680", s.Total)
	}
}

func TestSummary_ShippingCouponOffsetsFeeOnly(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1) // 7800, below free shipping
	c.SetDestination("06100-000")                       // Grande São Paulo, 1290
	c.SetCoupon("FRETEGRATIS")

	s := c.Summary()
	if s.DeliveryFee != 1290 {
		t.Fatalf("fee = %d, want 1290", s.DeliveryFee)
	}
	if !s.CouponApplied || s.Discount != 1290 {
		t.Errorf("discount = %d (applied=%v), want the fee fully offset", s.Discount, s.CouponApplied)
	}
	if s.Total != 7800 {
		t.Errorf("total = %d, want subtotal untouched at 7800", s.Total)
	}
}

func TestSummary_NoDoubleFreeShipping(t *testing.T) {
	c := newCart(t)
	// Above the free-shipping threshold: the fee is zeroed before the
	// coupon runs, so a shipping coupon adds nothing.
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 2) // 15600
	c.SetDestination("06100-000")
	c.SetCoupon("FRETEGRATIS")

	s := c.Summary()
	if s.DeliveryStatus != cart.DeliveryFree {
		t.Fatalf("status = %s, want free", s.DeliveryStatus)
	}
	if s.Discount != 0 {
		t.Errorf("discount = %d, want 0 (no double benefit)", s.Discount)
	}
	if s.Total != 15600 {
		t.Errorf("total = %d, want 15600", s.Total)
	}
}

func TestSummary_UnknownCouponIsZeroDiscountNotError(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetCoupon("NAOEXISTE")

	s := c.Summary()
	if s.CouponApplied || s.Discount != 0 {
		t.Errorf("discount = %d (applied=%v), want 0/false", s.Discount, s.CouponApplied)
	}
	if s.CouponReason != pricing.ReasonUnknownCode {
		t.Errorf("reason = %q, want %q", s.CouponReason, pricing.ReasonUnknownCode)
	}
}

func TestSummary_CouponBelowMinSubtotal(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "bowl-acai-granola", nil, "", 1) // 2400, below QUIM10's 5000 minimum
	c.SetCoupon("QUIM10")

	s := c.Summary()
	if s.CouponApplied || s.Discount != 0 {
		t.Errorf("discount = %d (applied=%v), want inapplicable", s.Discount, s.CouponApplied)
	}
	if s.CouponReason != pricing.ReasonMinSubtotal {
		t.Errorf("reason = %q, want %q", s.CouponReason, pricing.ReasonMinSubtotal)
	}
}

func TestSummary_FirstOrderCouponStopsAfterCheckout(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetPickup(true)
	c.SetCoupon("PRIMEIRA15")

	if s := c.Summary(); !s.CouponApplied {
		t.Fatalf("first order: summary = %+v, want coupon applied", s)
	}

	c.Checkout()

	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetPickup(true)
	c.SetCoupon("PRIMEIRA15")
	if s := c.Summary(); s.CouponApplied || s.CouponReason != pricing.ReasonFirstOrder {
		t.Errorf("second order: summary = %+v, want first_order_only rejection", s)
	}
}

func TestSummary_WeekendCouponNeedsWeekendClock(t *testing.T) {
	deps := testDeps()
	deps.Clock = func() time.Time {
		return time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC) // Saturday
	}
	deps.Coupons = weekendRegistry()

	c := cart.New("weekend", deps)
	mustAdd(t, c, "salmao-grelhado-quinoa", nil, "", 1)
	c.SetPickup(true)
	c.SetCoupon("WEEKEND10")

	if s := c.Summary(); !s.CouponApplied || s.Discount != 780 {
		t.Errorf("saturday summary = %+v, want applied 780", s)
	}

	deps.Clock = testClock // Tuesday
	c2 := cart.New("weekday", deps)
	mustAdd(t, c2, "salmao-grelhado-quinoa", nil, "", 1)
	c2.SetPickup(true)
	c2.SetCoupon("WEEKEND10")
	if s := c2.Summary(); s.CouponApplied || s.CouponReason != pricing.ReasonDayOfWeek {
		t.Errorf("tuesday summary = %+v, want day_of_week rejection", s)
	}
}

func TestSummary_TotalNeverNegative(t *testing.T) {
	deps := testDeps()
	deps.Coupons = oversizedCouponRegistry()

	c := cart.New("clamp", deps)
	mustAdd(t, c, "bowl-acai-granola", nil, "", 1) // 2400
	c.SetPickup(true)
	c.SetCoupon("MEGA")

	s := c.Summary()
	if s.Total < 0 {
		t.Fatalf("total = %d, negative totals must never surface", s.Total)
	}
	if s.Total != 0 {
		t.Errorf("total = %d, want clamped 0", s.Total)
	}
	if s.Discount > s.Subtotal+s.DeliveryFee {
		t.Errorf("discount %d exceeds subtotal+fee %d", s.Discount, s.Subtotal+s.DeliveryFee)
	}
}

func TestSummary_ReferentialTransparency(t *testing.T) {
	c := newCart(t)
	mustAdd(t, c, "rigatoni-ragu-cupim", pricing.Selection{"Porção": {"Para 2"}}, "", 2)
	c.SetDestination("05400-000")
	c.SetCoupon("BEMVINDO10")

	first := c.Summary()
	second := c.Summary()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ with unchanged inputs:\n%+v\n%+v", first, second)
	}
}
