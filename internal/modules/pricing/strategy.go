// README: Strategy selection. "fixed" prices route groups from a fare table; "dynamic" multiplies flat route base prices.
package pricing

import (
	"fmt"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/route"
)

const (
	StrategyFixed   = "fixed"
	StrategyDynamic = "dynamic"
)

// Strategy is a pure calculator over an injected catalog.
type Strategy interface {
	Name() string
	Calculate(trip TripDetails) (*Result, error)
	// Network exposes the origins and destinations this strategy can price.
	Network() route.Network
	// PricesReturnLeg reports whether the return date and time affect the price.
	PricesReturnLeg() bool
}

type Options struct {
	// Location interprets trip dates and clocks. Defaults to UTC.
	Location *time.Location
	// Now is the clock used for booking-window discounts. Defaults to time.Now.
	Now func() time.Time
	// EnforceStackability applies either the stackable rules together or the
	// single best non-stackable rule, whichever saves more.
	EnforceStackability bool
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func NewStrategy(name string, cat *catalog.Catalog, opts Options) (Strategy, error) {
	switch name {
	case StrategyFixed:
		return NewFixedStrategy(cat, opts), nil
	case StrategyDynamic:
		return NewDynamicStrategy(cat, opts)
	default:
		return nil, fmt.Errorf("pricing: %q: %w", name, ErrUnknownStrategy)
	}
}

const (
	warnAboveMax = "عدد الركاب يتجاوز السعة القصوى للسيارة (%d)"
	warnBelowMin = "عدد الركاب أقل من الحد الأدنى للسيارة (%d)"
)

// capacityWarnings never fails a quote; an out-of-range head count is
// reported and priced anyway.
func capacityWarnings(v catalog.VehiclePricing, passengers int) []string {
	warnings := []string{}
	if passengers > v.MaxPassengers {
		warnings = append(warnings, fmt.Sprintf(warnAboveMax, v.MaxPassengers))
	}
	if passengers < v.MinPassengers {
		warnings = append(warnings, fmt.Sprintf(warnBelowMin, v.MinPassengers))
	}
	return warnings
}

// returnDateTime combines the return schedule when one is present.
func returnDateTime(trip TripDetails, loc *time.Location) (*time.Time, error) {
	if !trip.IsRoundTrip || trip.ReturnDate == nil || trip.ReturnTime == "" {
		return nil, nil
	}
	at, err := Combine(*trip.ReturnDate, trip.ReturnTime, loc)
	if err != nil {
		return nil, fmt.Errorf("pricing: return time: %w", err)
	}
	return &at, nil
}
