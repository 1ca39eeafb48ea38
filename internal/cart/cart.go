// Package cart owns the mutable order state: the row collection, the
// selected coupon, the destination and the pickup flag. Totals are a
// pure projection over that state (see summary.go); they are recomputed
// on read, never stored.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/example/quim/internal/catalog"
	"github.com/example/quim/internal/cartstore"
	"github.com/example/quim/internal/coupons"
	"github.com/example/quim/internal/delivery"
	"github.com/example/quim/internal/pricing"
)

var ErrUnknownProduct = errors.New("unknown product")

// QuantityError rejects non-positive or otherwise malformed quantities
// at the call boundary; they never reach stored state.
type QuantityError struct {
	Quantity int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity must be a positive integer, got %d", e.Quantity)
}

// Limits bound row quantities and trigger free shipping.
type Limits struct {
	MinQuantity     int
	MaxQuantity     int
	FreeShippingMin int64 // centavos of subtotal; 0 disables
}

// DefaultLimits clamps quantities to 1..10 and grants free shipping
// from R$150,00.
func DefaultLimits() Limits {
	return Limits{MinQuantity: 1, MaxQuantity: 10, FreeShippingMin: 15000}
}

// Deps are the collaborators a cart computes against. Store and Clock
// are optional.
type Deps struct {
	Catalog  catalog.Provider
	Coupons  coupons.Registry
	Delivery *delivery.Resolver
	Store    cartstore.Store
	Limits   Limits
	Clock    func() time.Time
}

// Cart aggregates one session's rows and scalar settings. Mutations
// build replacement slices rather than editing rows in place, so a
// reader under the lock always observes a complete state.
type Cart struct {
	deps      Deps
	sessionID string

	mu         sync.Mutex
	items      []Item
	couponCode string
	postalCode string
	pickup     bool
	open       bool
	firstOrder bool
}

// New builds an empty cart for the session.
func New(sessionID string, deps Deps) *Cart {
	if deps.Limits == (Limits{}) {
		deps.Limits = DefaultLimits()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Cart{deps: deps, sessionID: sessionID, firstOrder: true}
}

// SessionID identifies this cart's session.
func (c *Cart) SessionID() string { return c.sessionID }

// AddItem validates the candidate against the catalog, then merges it
// into an existing row with the same identity or appends a new row in
// insertion order. Merging adds quantities, so adding 2 then 3 of one
// configuration equals adding 5 at once.
func (c *Cart) AddItem(productID string, sel pricing.Selection, note string, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, &QuantityError{Quantity: quantity}
	}
	product, ok := c.deps.Catalog.GetBySlug(productID)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if err := pricing.ValidateSelection(product, sel); err != nil {
		return Item{}, err
	}

	sel = sel.Clone()
	candidate := Item{
		Key:       identityKey(productID, sel, note),
		ProductID: productID,
		Name:      product.Name,
		Image:     product.Image,
		BasePrice: product.EffectivePrice(),
		UnitPrice: pricing.UnitPrice(product, sel),
		Selection: sel,
		Note:      note,
		Quantity:  quantity,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Item, len(c.items))
	copy(next, c.items)

	merged := false
	for i := range next {
		if next[i].identity() == candidate.identity() {
			next[i].Quantity += quantity
			candidate = next[i]
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, candidate)
	}

	c.items = next
	c.open = true
	c.persistLocked()
	return candidate, nil
}

// UpdateQuantity replaces a row's quantity, clamped to the configured
// bounds. A quantity of zero or less behaves exactly like RemoveItem.
// It never creates a row; an absent key is a no-op.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	if quantity < c.deps.Limits.MinQuantity {
		quantity = c.deps.Limits.MinQuantity
	}
	if quantity > c.deps.Limits.MaxQuantity {
		quantity = c.deps.Limits.MaxQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	next := make([]Item, len(c.items))
	copy(next, c.items)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return
	}
	c.items = next
	c.persistLocked()
}

// RemoveItem deletes the row with that key; absent keys are a no-op,
// not an error.
func (c *Cart) RemoveItem(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.Key != key {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return
	}
	c.items = next
	c.persistLocked()
}

// Clear atomically empties the rows and resets coupon and destination.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.couponCode = ""
	c.postalCode = ""
	c.pickup = false
	c.persistLocked()
}

// SetCoupon stores the code without validating it; an unknown or
// inapplicable coupon simply yields a zero discount in the summary.
func (c *Cart) SetCoupon(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.couponCode = code
	c.persistLocked()
}

// SetDestination stores the destination CEP without validating it.
func (c *Cart) SetDestination(postalCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postalCode = postalCode
	c.persistLocked()
}

// SetPickup toggles pickup; pickup orders carry no delivery fee.
func (c *Cart) SetPickup(pickup bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pickup = pickup
	c.persistLocked()
}

// Open / Close / IsOpen track the UI drawer state; not a pricing concern.
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items returns a copy of the rows in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the total unit count across rows.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// CouponCode returns the currently stored code.
func (c *Cart) CouponCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.couponCode
}

// Destination returns the stored CEP and pickup flag.
func (c *Cart) Destination() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postalCode, c.pickup
}

// Checkout empties the cart after an order is placed and marks the
// session as no longer first-order.
func (c *Cart) Checkout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.couponCode = ""
	c.postalCode = ""
	c.pickup = false
	c.firstOrder = false
	c.persistLocked()
}
