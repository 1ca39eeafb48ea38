package models

// Coupon kinds and targets.
const (
	CouponPercent = "percent"
	CouponFixed   = "fixed"

	AppliesToSubtotal = "subtotal"
	AppliesToShipping = "shipping"
)

// Coupon is a discount rule matched by case-insensitive code. Magnitude
// is percent points for percent coupons and centavos for fixed ones.
type Coupon struct {
	BaseModel
	Code           string `gorm:"uniqueIndex" json:"code"`
	Kind           string `json:"kind"`       // percent|fixed
	AppliesTo      string `json:"applies_to"` // subtotal|shipping
	Magnitude      int64  `json:"magnitude"`
	Active         bool   `json:"active"`
	MinSubtotal    int64  `json:"min_subtotal"`
	FirstOrderOnly bool   `json:"first_order_only"`
	WeekendOnly    bool   `json:"weekend_only"`
	Description    string `json:"description"`
}
