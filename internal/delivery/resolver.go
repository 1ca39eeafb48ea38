// Package delivery resolves destination CEPs to fees and ETA windows.
package delivery

import (
	"sort"
	"strconv"
	"strings"

	"github.com/example/quim/internal/models"
)

// cepDigits is the exact digit count a Brazilian CEP carries.
const cepDigits = 8

// Quote is the fee and ETA window for a serviced destination.
type Quote struct {
	Zone   string `json:"zone"`
	Fee    int64  `json:"fee"` // centavos
	ETAMin int    `json:"eta_min"`
	ETAMax int    `json:"eta_max"`
}

// Resolver looks destinations up against an ordered zone table. Zones
// are checked in priority order; ranges may overlap, the first declared
// match wins. An unmatched CEP means delivery is unavailable there,
// which is not the same as a zero fee.
type Resolver struct {
	zones []models.DeliveryZone
}

// NewResolver copies and priority-sorts the zone table. The sort is
// stable so zones sharing a priority keep declaration order.
func NewResolver(zones []models.DeliveryZone) *Resolver {
	sorted := make([]models.DeliveryZone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &Resolver{zones: sorted}
}

// NewDefaultResolver uses the restaurant's standard zone table.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultZones())
}

// NormalizeCEP strips non-digits and reports whether the remainder has
// exactly eight digits.
func NormalizeCEP(cep string) (string, bool) {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	return digits, len(digits) == cepDigits
}

// Resolve maps a CEP to a Quote. The second return is false when the
// CEP is malformed or outside every zone.
func (r *Resolver) Resolve(cep string) (Quote, bool) {
	digits, ok := NormalizeCEP(cep)
	if !ok {
		return Quote{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Quote{}, false
	}

	for _, zone := range r.zones {
		for _, rng := range zone.Ranges {
			if n >= rng.Start && n <= rng.End {
				return Quote{
					Zone:   zone.Name,
					Fee:    zone.Fee,
					ETAMin: zone.ETAMin,
					ETAMax: zone.ETAMax,
				}, true
			}
		}
	}
	return Quote{}, false
}

// DefaultZones is the seed zone table. Fees are centavos.
func DefaultZones() []models.DeliveryZone {
	return []models.DeliveryZone{
		{
			Name:     "Centro Expandido",
			Priority: 1,
			Fee:      890,
			ETAMin:   25,
			ETAMax:   40,
			Ranges: []models.ZoneRange{
				{Start: 1000000, End: 5999999},
				{Start: 8000000, End: 8499999},
			},
		},
		{
			Name:     "Grande São Paulo",
			Priority: 2,
			Fee:      1290,
			ETAMin:   35,
			ETAMax:   55,
			Ranges: []models.ZoneRange{
				{Start: 6000000, End: 6999999},
				{Start: 7000000, End: 7999999},
				{Start: 9000000, End: 9999999},
			},
		},
		{
			Name:     "Região Metropolitana",
			Priority: 3,
			Fee:      1590,
			ETAMin:   45,
			ETAMax:   70,
			Ranges: []models.ZoneRange{
				{Start: 10000000, End: 19999999},
			},
		},
	}
}
