package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses and payment states.
const (
	OrderReceived  = "recebido"
	OrderPreparing = "preparo"
	OrderEnRoute   = "rota"
	OrderDelivered = "entregue"

	PaymentPending = "pendente"
	PaymentPaid    = "pago"
	PaymentFailed  = "falhou"
)

type Order struct {
	BaseModel
	OrderNumber   string      `gorm:"uniqueIndex" json:"order_number"`
	SessionID     string      `gorm:"index" json:"session_id"`
	Status        string      `json:"status"`
	PlacedAt      time.Time   `json:"placed_at"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Pickup        bool        `json:"pickup"`
	PostalCode    string      `json:"postal_code"`
	AddressLine   string      `json:"address_line"`
	Number        string      `json:"number"`
	Complement    string      `json:"complement"`
	District      string      `json:"district"`
	City          string      `json:"city"`
	Instructions  string      `json:"instructions"`
	PaymentMethod string      `json:"payment_method"` // pix|cartao|entrega
	PaymentStatus string      `json:"payment_status"`
	CouponCode    string      `json:"coupon_code"`
	Subtotal      int64       `json:"subtotal"`
	DeliveryFee   int64       `json:"delivery_fee"`
	Discount      int64       `json:"discount"`
	Total         int64       `json:"total"`
	ETAMin        int         `json:"eta_min"`
	ETAMax        int         `json:"eta_max"`
	Items         []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductSlug string    `json:"product_slug"`
	ProductName string    `json:"product_name"`
	Selection   string    `json:"selection"`
	Note        string    `json:"note"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	LineTotal   int64     `json:"line_total"`
}
