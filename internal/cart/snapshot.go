package cart

import (
	"encoding/json"
	"log"
)

// snapshotState is the persisted slice of cart state. The UI open flag
// is intentionally excluded: items, coupon, destination and pickup all
// survive a reload, the drawer does not.
type snapshotState struct {
	Items      []Item `json:"items"`
	CouponCode string `json:"coupon_code"`
	PostalCode string `json:"postal_code"`
	Pickup     bool   `json:"pickup"`
	FirstOrder bool   `json:"first_order"`
}

// persistLocked writes a full-state snapshot, best-effort: a failure is
// logged and ignored, losing at most this mutation. Callers hold c.mu,
// which also keeps snapshots ordered so an older state can never
// overwrite a newer one.
func (c *Cart) persistLocked() {
	if c.deps.Store == nil {
		return
	}
	state := snapshotState{
		Items:      make([]Item, len(c.items)),
		CouponCode: c.couponCode,
		PostalCode: c.postalCode,
		Pickup:     c.pickup,
		FirstOrder: c.firstOrder,
	}
	copy(state.Items, c.items)

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("[Cart] snapshot marshal failed for %s: %v", c.sessionID, err)
		return
	}
	if err := c.deps.Store.Save(c.sessionID, payload); err != nil {
		log.Printf("[Cart] snapshot save failed for %s: %v", c.sessionID, err)
	}
}

// restore loads the latest snapshot, if any. Called once when a session
// cart is first materialized.
func (c *Cart) restore() {
	if c.deps.Store == nil {
		return
	}
	payload, ok, err := c.deps.Store.Load(c.sessionID)
	if err != nil {
		log.Printf("[Cart] snapshot load failed for %s: %v", c.sessionID, err)
		return
	}
	if !ok {
		return
	}
	var state snapshotState
	if err := json.Unmarshal(payload, &state); err != nil {
		log.Printf("[Cart] snapshot decode failed for %s: %v", c.sessionID, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = state.Items
	c.couponCode = state.CouponCode
	c.postalCode = state.PostalCode
	c.pickup = state.Pickup
	c.firstOrder = state.FirstOrder
}
