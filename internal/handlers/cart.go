package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/quim/internal/cart"
	"github.com/example/quim/internal/pricing"
)

// CartHandler exposes session carts over HTTP.
type CartHandler struct {
	sessions *cart.Manager
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(sessions *cart.Manager) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// CreateSession opens a new cart session.
func (h *CartHandler) CreateSession(c *fiber.Ctx) error {
	crt := h.sessions.NewSession()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"session_id": crt.SessionID()},
	})
}

// GetCart returns the rows and the derived summary.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	crt := h.sessions.Get(c.Params("session"))
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":   crt.Items(),
			"summary": crt.Summary(),
			"open":    crt.IsOpen(),
		},
	})
}

type addItemRequest struct {
	ProductID string            `json:"product_id"`
	Selection pricing.Selection `json:"selection"`
	Note      string            `json:"note"`
	Quantity  int               `json:"quantity"`
}

// AddItem adds (or merges) a row.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	crt := h.sessions.Get(c.Params("session"))
	item, err := crt.AddItem(req.ProductID, req.Selection, req.Note, req.Quantity)
	if err != nil {
		return cartError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"item": item, "summary": crt.Summary()},
	})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity replaces a row's quantity; zero removes the row.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	crt := h.sessions.Get(c.Params("session"))
	crt.UpdateQuantity(c.Params("key"), req.Quantity)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"items": crt.Items(), "summary": crt.Summary()},
	})
}

// RemoveItem deletes a row; removing an absent key succeeds.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	crt := h.sessions.Get(c.Params("session"))
	crt.RemoveItem(c.Params("key"))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"items": crt.Items(), "summary": crt.Summary()},
	})
}

// ClearCart empties the cart and resets coupon and destination.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	crt := h.sessions.Get(c.Params("session"))
	crt.Clear()
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": crt.Summary()}})
}

type couponRequest struct {
	Code string `json:"code"`
}

// SetCoupon stores the code; validation happens in the summary.
func (h *CartHandler) SetCoupon(c *fiber.Ctx) error {
	var req couponRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	crt := h.sessions.Get(c.Params("session"))
	crt.SetCoupon(req.Code)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": crt.Summary()}})
}

type destinationRequest struct {
	PostalCode string `json:"postal_code"`
}

// SetDestination stores the CEP; zone lookup happens in the summary.
func (h *CartHandler) SetDestination(c *fiber.Ctx) error {
	var req destinationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	crt := h.sessions.Get(c.Params("session"))
	crt.SetDestination(req.PostalCode)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": crt.Summary()}})
}

type pickupRequest struct {
	Pickup bool `json:"pickup"`
}

// SetPickup toggles the pickup flag.
func (h *CartHandler) SetPickup(c *fiber.Ctx) error {
	var req pickupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	crt := h.sessions.Get(c.Params("session"))
	crt.SetPickup(req.Pickup)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": crt.Summary()}})
}

// GetSummary returns the derived totals only.
func (h *CartHandler) GetSummary(c *fiber.Ctx) error {
	crt := h.sessions.Get(c.Params("session"))
	return c.JSON(fiber.Map{"success": true, "data": crt.Summary()})
}

// cartError translates core errors into HTTP statuses. Validation
// failures are the caller's fault; anything else bubbles up.
func cartError(err error) error {
	var selErr *pricing.SelectionError
	var qtyErr *cart.QuantityError
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &selErr), errors.As(err, &qtyErr):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}
