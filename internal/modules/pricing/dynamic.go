// README: Dynamic strategy; base price x vehicle x time slot x day type, plus extra passengers and services, per leg.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/route"
)

const warnUnknownService = "خدمة إضافية غير معروفة: %s"

type DynamicStrategy struct {
	cat       *catalog.Catalog
	resolver  *route.FlatResolver
	loc       *time.Location
	now       func() time.Time
	exclusive bool
}

// NewDynamicStrategy fails when the catalog lacks the tables dynamic
// pricing reads.
func NewDynamicStrategy(cat *catalog.Catalog, opts Options) (*DynamicStrategy, error) {
	opts = opts.withDefaults()
	var errs []error
	if len(cat.Routes()) == 0 {
		errs = append(errs, errors.New("no routes"))
	}
	if len(cat.TimeSlots()) == 0 {
		errs = append(errs, errors.New("no time slots"))
	}
	for _, id := range []catalog.DayTypeID{catalog.DayWeekday, catalog.DayWeekend, catalog.DayHoliday} {
		if _, ok := cat.DayType(id); !ok {
			errs = append(errs, fmt.Errorf("missing day type %q", id))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("pricing: dynamic strategy: %w", errors.Join(errs...))
	}
	return &DynamicStrategy{
		cat:       cat,
		resolver:  route.NewFlatResolver(cat),
		loc:       opts.Location,
		now:       opts.Now,
		exclusive: opts.EnforceStackability,
	}, nil
}

func (s *DynamicStrategy) Name() string { return StrategyDynamic }

func (s *DynamicStrategy) Network() route.Network { return s.resolver }

func (s *DynamicStrategy) PricesReturnLeg() bool { return true }

func (s *DynamicStrategy) Calculate(trip TripDetails) (*Result, error) {
	r, ok := s.resolver.Resolve(trip.From, trip.To)
	if !ok {
		return nil, fmt.Errorf("pricing: %s -> %s: %w", trip.From, trip.To, ErrRouteNotFound)
	}
	vehicle, ok := s.cat.Vehicle(trip.VehicleCategory)
	if !ok {
		return nil, fmt.Errorf("pricing: vehicle %q: %w", trip.VehicleCategory, ErrUnknownVehicle)
	}
	warnings := capacityWarnings(vehicle, trip.PassengerCount)

	services, unknown := s.selectServices(trip.Services)
	for _, id := range unknown {
		warnings = append(warnings, fmt.Sprintf(warnUnknownService, id))
	}

	tripAt, err := Combine(trip.TripDate, trip.TripTime, s.loc)
	if err != nil {
		return nil, fmt.Errorf("pricing: trip time: %w", err)
	}
	outbound := s.leg(r, vehicle, tripAt, trip.PassengerCount, services)

	returnAt, err := returnDateTime(trip, s.loc)
	if err != nil {
		return nil, err
	}
	var back *Leg
	subtotal := outbound.Total
	if returnAt != nil {
		back = s.leg(r, vehicle, *returnAt, trip.PassengerCount, services)
		subtotal += back.Total
	}

	applied := s.discounts(r, trip, tripAt, subtotal)
	totalDiscount := sumDiscounts(applied)

	lines := make([]ServiceLine, len(services))
	for i, svc := range services {
		lines[i] = ServiceLine{ID: svc.ID, NameAr: svc.NameAr, Price: svc.Price}
	}

	return &Result{
		Strategy: StrategyDynamic,
		Breakdown: Breakdown{
			VehicleType:   vehicle.CategoryAr,
			BasePrice:     r.BasePriceEGP,
			Outbound:      outbound,
			Return:        back,
			Subtotal:      subtotal,
			Discounts:     applied,
			TotalDiscount: totalDiscount,
			Total:         math.Max(0, subtotal-totalDiscount),
		},
		Details: Details{
			RouteID:           r.ID,
			RouteNameAr:       r.NameAr,
			VehicleCategory:   vehicle.Category,
			VehicleCategoryAr: vehicle.CategoryAr,
			PassengerCount:    trip.PassengerCount,
			TripDateTime:      tripAt,
			IsRoundTrip:       trip.IsRoundTrip,
			ReturnDateTime:    returnAt,
			TimeSlotAr:        outbound.TimeSlotAr,
			DayTypeAr:         outbound.DayTypeAr,
			Services:          lines,
		},
		Warnings: warnings,
	}, nil
}

// selectServices resolves ids in request order, skipping repeats.
func (s *DynamicStrategy) selectServices(ids []string) (known []catalog.AdditionalService, unknown []string) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		svc, ok := s.cat.Service(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		known = append(known, svc)
	}
	return known, unknown
}

func (s *DynamicStrategy) leg(r catalog.Route, v catalog.VehiclePricing, at time.Time, passengers int, services []catalog.AdditionalService) *Leg {
	slot := timeSlotFor(s.cat.TimeSlots(), at.Hour())
	day := dayTypeFor(s.cat, at)

	l := &Leg{
		DateTime:          at,
		TimeSlotAr:        slot.NameAr,
		DayTypeAr:         day.NameAr,
		VehicleMultiplier: v.BaseMultiplier,
		TimeMultiplier:    slot.Multiplier,
		DayTypeMultiplier: day.Multiplier,
	}
	l.VehiclePrice = r.BasePriceEGP * v.BaseMultiplier
	l.TimePrice = l.VehiclePrice * slot.Multiplier
	l.DayTypePrice = l.TimePrice * day.Multiplier

	if extra := passengers - s.cat.Settings().BasePassengers; extra > 0 {
		l.ExtraPassengerPrice = float64(extra) * v.PricePerExtraPassenger
	}
	for _, svc := range services {
		l.ServicesPrice += svc.Price
	}
	l.Total = l.DayTypePrice + l.ExtraPassengerPrice + l.ServicesPrice
	return l
}
