// Package pricing holds the stateless money math: line prices from a
// product plus its selected modifiers, and coupon discounts over a
// subtotal/fee context. Everything operates on minor currency units.
package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/quim/internal/models"
)

// Selection maps a modifier group name to the chosen option labels.
// Insertion order is irrelevant; labels within a group must be unique.
type Selection map[string][]string

// Canonical renders the selection with group names and labels sorted,
// so two selections differing only in key order serialize identically.
func (s Selection) Canonical() string {
	if len(s) == 0 {
		return ""
	}
	groups := make([]string, 0, len(s))
	for name := range s {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	var b strings.Builder
	for i, name := range groups {
		labels := append([]string(nil), s[name]...)
		sort.Strings(labels)
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strings.Join(labels, ","))
	}
	return b.String()
}

// Clone returns a deep copy so stored carts never alias caller maps.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	for name, labels := range s {
		out[name] = append([]string(nil), labels...)
	}
	return out
}

// SelectionError reports why a selection was rejected for a product.
// It names every offending group rather than stopping at the first.
type SelectionError struct {
	ProductSlug    string
	MissingGroups  []string
	UnknownGroups  []string
	UnknownOptions []string
	Conflicts      []string
}

func (e *SelectionError) Error() string {
	var parts []string
	if len(e.MissingGroups) > 0 {
		parts = append(parts, fmt.Sprintf("missing required group(s): %s", strings.Join(e.MissingGroups, ", ")))
	}
	if len(e.UnknownGroups) > 0 {
		parts = append(parts, fmt.Sprintf("unknown group(s): %s", strings.Join(e.UnknownGroups, ", ")))
	}
	if len(e.UnknownOptions) > 0 {
		parts = append(parts, fmt.Sprintf("unknown option(s): %s", strings.Join(e.UnknownOptions, ", ")))
	}
	if len(e.Conflicts) > 0 {
		parts = append(parts, fmt.Sprintf("invalid selection: %s", strings.Join(e.Conflicts, ", ")))
	}
	return fmt.Sprintf("product %s: %s", e.ProductSlug, strings.Join(parts, "; "))
}

func (e *SelectionError) empty() bool {
	return len(e.MissingGroups) == 0 && len(e.UnknownGroups) == 0 &&
		len(e.UnknownOptions) == 0 && len(e.Conflicts) == 0
}

// ValidateSelection rejects selections referencing groups or options the
// product does not offer, duplicate labels, multi-selection on single
// groups, and required groups left without a choice. Validation happens
// at the add-to-cart boundary; invalid selections never reach stored
// state.
func ValidateSelection(product *models.Product, sel Selection) error {
	verr := &SelectionError{ProductSlug: product.Slug}

	for name, labels := range sel {
		group, ok := product.Group(name)
		if !ok {
			verr.UnknownGroups = append(verr.UnknownGroups, name)
			continue
		}
		if group.Mode == models.ModeSingle && len(labels) > 1 {
			verr.Conflicts = append(verr.Conflicts, fmt.Sprintf("%s accepts a single option", name))
		}
		seen := make(map[string]bool, len(labels))
		for _, label := range labels {
			if seen[label] {
				verr.Conflicts = append(verr.Conflicts, fmt.Sprintf("%s repeats %q", name, label))
				continue
			}
			seen[label] = true
			if _, ok := group.Option(label); !ok {
				verr.UnknownOptions = append(verr.UnknownOptions, fmt.Sprintf("%s/%s", name, label))
			}
		}
	}

	for _, group := range product.ModifierGroups {
		if group.Required && len(sel[group.Name]) == 0 {
			verr.MissingGroups = append(verr.MissingGroups, group.Name)
		}
	}

	sort.Strings(verr.MissingGroups)
	sort.Strings(verr.UnknownGroups)
	sort.Strings(verr.UnknownOptions)

	if verr.empty() {
		return nil
	}
	return verr
}

// UnitPrice is the effective price of one unit: promotional price when
// lower than base, plus every selected option's delta applied exactly
// once per unit. Quantity multiplies the result, never the deltas.
func UnitPrice(product *models.Product, sel Selection) int64 {
	price := product.EffectivePrice()
	for name, labels := range sel {
		group, ok := product.Group(name)
		if !ok {
			continue
		}
		for _, label := range labels {
			if opt, ok := group.Option(label); ok {
				price += opt.PriceDelta
			}
		}
	}
	return price
}

// LineTotal multiplies the delta-adjusted unit price by quantity.
func LineTotal(product *models.Product, sel Selection, quantity int) int64 {
	return UnitPrice(product, sel) * int64(quantity)
}
