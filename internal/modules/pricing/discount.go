// README: Discount rule evaluation for the dynamic strategy.
package pricing

import (
	"math"
	"slices"
	"time"

	"wasalny/internal/modules/catalog"
)

// discounts returns every rule whose conditions hold, in catalog order.
// With exclusivity enforced the stackable set competes against the single
// best non-stackable rule.
func (s *DynamicStrategy) discounts(r catalog.Route, trip TripDetails, departure time.Time, subtotal float64) []AppliedDiscount {
	now := s.now()
	daysAhead := int(math.Floor(departure.Sub(now).Hours() / 24))

	var stackable, exclusive []AppliedDiscount
	for _, rule := range s.cat.Discounts() {
		if !s.eligible(rule, r, trip, now, daysAhead, subtotal) {
			continue
		}
		d := AppliedDiscount{ID: rule.ID, NameAr: rule.NameAr, Amount: discountAmount(rule, subtotal)}
		if rule.IsStackable || !s.exclusive {
			stackable = append(stackable, d)
		} else {
			exclusive = append(exclusive, d)
		}
	}
	if len(exclusive) == 0 {
		return stackable
	}

	best := exclusive[0]
	for _, d := range exclusive[1:] {
		if d.Amount > best.Amount {
			best = d
		}
	}
	if best.Amount > sumDiscounts(stackable) {
		return []AppliedDiscount{best}
	}
	return stackable
}

func (s *DynamicStrategy) eligible(rule catalog.DiscountRule, r catalog.Route, trip TripDetails, now time.Time, daysAhead int, subtotal float64) bool {
	c := rule.Conditions
	switch {
	case c.RoundTrip && !trip.IsRoundTrip:
		return false
	case c.MinPassengers > 0 && trip.PassengerCount < c.MinPassengers:
		return false
	case c.AdvanceBookingDays > 0 && daysAhead < c.AdvanceBookingDays:
		return false
	case len(c.SpecificRoutes) > 0 && !slices.Contains(c.SpecificRoutes, r.ID):
		return false
	case c.MinTotalAmount > 0 && subtotal < c.MinTotalAmount:
		return false
	}

	// Validity bounds are whole calendar days in the pricing location.
	if rule.ValidTo != "" {
		end, err := time.ParseInLocation(catalog.DateLayout, rule.ValidTo, s.loc)
		if err == nil && !now.Before(end.AddDate(0, 0, 1)) {
			return false
		}
	}
	if rule.ValidFrom != "" {
		start, err := time.ParseInLocation(catalog.DateLayout, rule.ValidFrom, s.loc)
		if err == nil && now.Before(start) {
			return false
		}
	}
	return true
}

func discountAmount(rule catalog.DiscountRule, subtotal float64) float64 {
	amount := rule.Value
	if rule.Type == catalog.DiscountPercentage {
		amount = subtotal * rule.Value / 100
	}
	if rule.MaxAmount > 0 && amount > rule.MaxAmount {
		amount = rule.MaxAmount
	}
	return amount
}

func sumDiscounts(ds []AppliedDiscount) float64 {
	var total float64
	for _, d := range ds {
		total += d.Amount
	}
	return total
}
