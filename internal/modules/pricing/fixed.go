// README: Fixed-fare strategy; one price per route group and vehicle category, one-way or round trip.
package pricing

import (
	"fmt"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/route"
)

type FixedStrategy struct {
	cat      *catalog.Catalog
	resolver *route.GroupResolver
	loc      *time.Location
}

func NewFixedStrategy(cat *catalog.Catalog, opts Options) *FixedStrategy {
	opts = opts.withDefaults()
	return &FixedStrategy{cat: cat, resolver: route.NewGroupResolver(cat), loc: opts.Location}
}

func (s *FixedStrategy) Name() string { return StrategyFixed }

func (s *FixedStrategy) Network() route.Network { return s.resolver }

func (s *FixedStrategy) PricesReturnLeg() bool { return false }

func (s *FixedStrategy) Calculate(trip TripDetails) (*Result, error) {
	match, ok := s.resolver.Resolve(trip.From, trip.To)
	if !ok {
		return nil, fmt.Errorf("pricing: %s -> %s: %w", trip.From, trip.To, ErrRouteNotFound)
	}
	vehicle, ok := s.cat.Vehicle(trip.VehicleCategory)
	if !ok {
		return nil, fmt.Errorf("pricing: vehicle %q: %w", trip.VehicleCategory, ErrUnknownVehicle)
	}
	fare, ok := match.Group.Pricing[trip.VehicleCategory]
	if !ok {
		return nil, fmt.Errorf("pricing: group %s vehicle %q: %w", match.Group.ID, trip.VehicleCategory, ErrMissingFare)
	}

	tripAt, err := Combine(trip.TripDate, trip.TripTime, s.loc)
	if err != nil {
		return nil, fmt.Errorf("pricing: trip time: %w", err)
	}

	price := fare.OneWay
	if trip.IsRoundTrip {
		price = fare.RoundTrip
	}

	return &Result{
		Strategy: StrategyFixed,
		Breakdown: Breakdown{
			VehicleType: vehicle.CategoryAr,
			BasePrice:   price,
			Subtotal:    price,
			Total:       price,
		},
		// One table fare covers both directions. The return schedule is
		// arranged with the operator and is not part of the quote.
		Details: Details{
			RouteID:           match.Group.ID,
			RouteNameAr:       match.Group.NameAr,
			RouteType:         match.Group.Type,
			VehicleCategory:   vehicle.Category,
			VehicleCategoryAr: vehicle.CategoryAr,
			PassengerCount:    trip.PassengerCount,
			TripDateTime:      tripAt,
			IsRoundTrip:       trip.IsRoundTrip,
		},
		Warnings: capacityWarnings(vehicle, trip.PassengerCount),
	}, nil
}
