package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quim/internal/delivery"
)

// DeliveryHandler quotes delivery fees by CEP.
type DeliveryHandler struct {
	resolver *delivery.Resolver
}

// NewDeliveryHandler constructs DeliveryHandler.
func NewDeliveryHandler(resolver *delivery.Resolver) *DeliveryHandler {
	return &DeliveryHandler{resolver: resolver}
}

// Quote resolves ?cep= to a fee and ETA window. An unserviced or
// malformed CEP is reported as unavailable, not as a zero fee.
func (h *DeliveryHandler) Quote(c *fiber.Ctx) error {
	cep := c.Query("cep")
	if cep == "" {
		return fiber.NewError(fiber.StatusBadRequest, "cep query parameter is required")
	}

	quote, ok := h.resolver.Resolve(cep)
	if !ok {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"available": false},
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"available": true,
			"quote":     quote,
		},
	})
}
