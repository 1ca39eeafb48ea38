package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/quim/internal/cart"
	"github.com/example/quim/internal/coupons"
	"github.com/example/quim/internal/pricing"
)

// CouponHandler lists coupons and checks applicability.
type CouponHandler struct {
	registry coupons.Registry
	sessions *cart.Manager
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(registry coupons.Registry, sessions *cart.Manager) *CouponHandler {
	return &CouponHandler{registry: registry, sessions: sessions}
}

// ListCoupons returns active coupons with display descriptions.
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	active := h.registry.Active()
	data := make([]fiber.Map, 0, len(active))
	for i := range active {
		data = append(data, fiber.Map{
			"code":        active[i].Code,
			"description": coupons.Describe(&active[i]),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// CheckCoupon reports whether ?code= would apply. With ?session= the
// check runs against that cart's current totals; otherwise against an
// empty context, which still catches unknown and inactive codes.
func (h *CouponHandler) CheckCoupon(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code query parameter is required")
	}

	coupon, found := h.registry.Find(code)
	if !found {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    pricing.Result{Reason: pricing.ReasonUnknownCode},
		})
	}

	ctx := pricing.Context{FirstOrder: true, Now: time.Now()}
	if session := c.Query("session"); session != "" {
		summary := h.sessions.Get(session).Summary()
		ctx.Subtotal = summary.Subtotal
		ctx.DeliveryFee = summary.DeliveryFee
	}

	return c.JSON(fiber.Map{"success": true, "data": pricing.Discount(coupon, ctx)})
}
