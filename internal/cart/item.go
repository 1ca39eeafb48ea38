package cart

import (
	"fmt"
	"hash/fnv"

	"github.com/example/quim/internal/pricing"
)

// Item is one cart row. Display name, image and prices are captured at
// add time so later catalog edits never reprice an open cart. Quantity
// is always a positive integer; removing the last unit deletes the row.
type Item struct {
	Key       string            `json:"key"`
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Image     string            `json:"image"`
	BasePrice int64             `json:"base_price"`
	UnitPrice int64             `json:"unit_price"` // base + option deltas, per unit
	Selection pricing.Selection `json:"selection,omitempty"`
	Note      string            `json:"note,omitempty"`
	Quantity  int               `json:"quantity"`
}

// LineTotal is the delta-adjusted unit price times quantity.
func (it Item) LineTotal() int64 {
	return it.UnitPrice * int64(it.Quantity)
}

// identity is the canonical (product, selection, note) triplet. Two
// additions sharing it must merge quantities instead of adding a row.
func (it Item) identity() string {
	return identity(it.ProductID, it.Selection, it.Note)
}

func identity(productID string, sel pricing.Selection, note string) string {
	return productID + "\x1f" + sel.Canonical() + "\x1f" + note
}

// identityKey is a short stable handle over the identity triplet,
// usable in URLs. Merging still compares full identities, so a hash
// collision can never merge distinct rows.
func identityKey(productID string, sel pricing.Selection, note string) string {
	h := fnv.New64a()
	h.Write([]byte(identity(productID, sel, note)))
	return fmt.Sprintf("%016x", h.Sum64())
}
