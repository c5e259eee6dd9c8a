// README: Pure discount arithmetic applied per vehicle-type quote.
package promo

// DiscountOutcome is the result of applying a validated promo to one base price.
type DiscountOutcome struct {
	Applied bool
	Amount  float64
	Total   float64
}

// ApplyDiscount computes the discounted fare for a single base price. The
// promo applies only when its minimum trip amount is strictly below the base
// price, so a fare priced exactly at the minimum gets no discount. A nonzero
// maximum discount amount caps the computed discount.
//
// A quote evaluates each vehicle type independently against the same validated
// promo: a promo below one type's minimum may still apply to a pricier type.
func ApplyDiscount(p *Promo, basePrice float64) DiscountOutcome {
	if p == nil || p.MinimumTripAmount >= basePrice {
		return DiscountOutcome{}
	}
	discount := basePrice * p.DiscountPercent / 100
	if p.MaximumDiscountAmount > 0 && discount > p.MaximumDiscountAmount {
		discount = p.MaximumDiscountAmount
	}
	return DiscountOutcome{
		Applied: true,
		Amount:  discount,
		Total:   basePrice - discount,
	}
}
