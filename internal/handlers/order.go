package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/quim/internal/cart"
	"github.com/example/quim/internal/models"
	"github.com/example/quim/internal/services"
	"github.com/example/quim/internal/utils"
)

// OrderHandler turns a session cart into a persisted order.
type OrderHandler struct {
	db       *gorm.DB
	sessions *cart.Manager
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, sessions *cart.Manager, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, sessions: sessions, telegram: telegram}
}

type createOrderRequest struct {
	SessionID     string `json:"session_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	AddressLine   string `json:"address_line"`
	Number        string `json:"number"`
	Complement    string `json:"complement"`
	District      string `json:"district"`
	City          string `json:"city"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
}

// CreateOrder places the order. Checkout is blocked while the
// destination is unserviced or still unknown; that state is reported
// explicitly, never as a zero fee.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.SessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customer name and phone are required")
	}

	crt := h.sessions.Get(req.SessionID)
	items := crt.Items()
	if len(items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	summary := crt.Summary()
	postalCode, pickup := crt.Destination()
	switch summary.DeliveryStatus {
	case cart.DeliveryUnavailable:
		return fiber.NewError(fiber.StatusUnprocessableEntity, "address not serviced")
	case cart.DeliveryUnknown:
		return fiber.NewError(fiber.StatusUnprocessableEntity, "destination not set")
	}

	order := models.Order{
		OrderNumber:   generateOrderNumber(),
		SessionID:     req.SessionID,
		Status:        models.OrderReceived,
		PlacedAt:      time.Now(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Pickup:        pickup,
		PostalCode:    postalCode,
		AddressLine:   req.AddressLine,
		Number:        req.Number,
		Complement:    req.Complement,
		District:      req.District,
		City:          req.City,
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		CouponCode:    summary.CouponCode,
		Subtotal:      summary.Subtotal,
		DeliveryFee:   summary.DeliveryFee,
		Discount:      summary.Discount,
		Total:         summary.Total,
		ETAMin:        summary.ETAMin,
		ETAMax:        summary.ETAMax,
	}

	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductSlug: it.ProductID,
			ProductName: it.Name,
			Selection:   it.Selection.Canonical(),
			Note:        it.Note,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	crt.Checkout()

	if h.telegram != nil {
		go func(order models.Order) {
			if err := h.telegram.NotifyNewOrder(&order); err != nil {
				log.Printf("[Order] Telegram notification failed for %s: %v", order.OrderNumber, err)
			}
		}(order)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"placed_at":    order.PlacedAt,
			"total":        order.Total,
		},
	})
}

// ListOrders returns orders for a session.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	session := c.Query("session")
	if session == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session query parameter is required")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("session_id = ?", session).Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

func generateOrderNumber() string {
	return fmt.Sprintf("#%d", time.Now().UnixNano()%1000000000)
}
