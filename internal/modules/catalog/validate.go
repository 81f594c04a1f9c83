// README: Catalog validation pass run at load time; rejects bad references, fare inversions and overlapping route groups.
package catalog

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalid = errors.New("invalid catalog")

// Validate reports every problem found in data, or nil.
func Validate(data Data) error {
	v := &validator{
		locations: map[string]bool{},
		vehicles:  map[VehicleCategory]bool{},
		routes:    map[string]bool{},
	}
	v.checkLocations(data.Locations)
	v.checkVehicles(data.Vehicles)
	v.checkRouteGroups(data.RouteGroups)
	v.checkRoutes(data.Routes)
	v.checkCalendar(data.TimeSlots, data.DayTypes, data.Holidays)
	v.checkServices(data.Services)
	v.checkDiscounts(data.Discounts)
	v.checkSettings(data.Settings)
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(v.errs...))
}

type validator struct {
	errs      []error
	locations map[string]bool
	vehicles  map[VehicleCategory]bool
	routes    map[string]bool
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) checkLocations(locs []Location) {
	for _, l := range locs {
		switch {
		case l.ID == "":
			v.addf("location with empty id")
			continue
		case v.locations[l.ID]:
			v.addf("location %q declared twice", l.ID)
			continue
		}
		v.locations[l.ID] = true
		if l.NameAr == "" {
			v.addf("location %q has no Arabic name", l.ID)
		}
		if l.Type != "" && !validRouteType(l.Type) {
			v.addf("location %q has unknown route type %q", l.ID, l.Type)
		}
		if p := l.Coordinates; p != nil && (p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180) {
			v.addf("location %q has coordinates out of range", l.ID)
		}
	}
}

func (v *validator) checkVehicles(vehicles []VehiclePricing) {
	for _, vp := range vehicles {
		switch {
		case vp.Category == "":
			v.addf("vehicle with empty category")
			continue
		case v.vehicles[vp.Category]:
			v.addf("vehicle %q declared twice", vp.Category)
			continue
		}
		v.vehicles[vp.Category] = true
		if vp.MinPassengers < 1 {
			v.addf("vehicle %q: minPassengers must be at least 1", vp.Category)
		}
		if vp.MinPassengers > vp.MaxPassengers {
			v.addf("vehicle %q: minPassengers %d > maxPassengers %d", vp.Category, vp.MinPassengers, vp.MaxPassengers)
		}
		if vp.BaseMultiplier < 0 || vp.PricePerExtraPassenger < 0 {
			v.addf("vehicle %q: negative multiplier or surcharge", vp.Category)
		}
	}
}

func (v *validator) checkRouteGroups(groups []RouteGroup) {
	seen := map[string]bool{}
	owner := map[routeKey]string{}
	reported := map[[2]string]bool{}

	for _, g := range groups {
		if g.ID == "" {
			v.addf("route group with empty id")
			continue
		}
		if seen[g.ID] {
			v.addf("route group %q declared twice", g.ID)
			continue
		}
		seen[g.ID] = true

		if !validRouteType(g.Type) {
			v.addf("route group %q has unknown type %q", g.ID, g.Type)
		}
		if len(g.FromLocations) == 0 || len(g.ToLocations) == 0 {
			v.addf("route group %q needs at least one origin and one destination", g.ID)
		}
		for _, id := range append(append([]string{}, g.FromLocations...), g.ToLocations...) {
			if !v.locations[id] {
				v.addf("route group %q references unknown location %q", g.ID, id)
			}
		}
		if len(g.Pricing) == 0 {
			v.addf("route group %q has no fares", g.ID)
		}
		for cat, fare := range g.Pricing {
			if !v.vehicles[cat] {
				v.addf("route group %q prices unknown vehicle %q", g.ID, cat)
			}
			if fare.OneWay <= 0 {
				v.addf("route group %q: %s one-way fare must be positive", g.ID, cat)
			}
			if fare.RoundTrip < fare.OneWay {
				v.addf("route group %q: %s round-trip fare %.2f is below one-way fare %.2f", g.ID, cat, fare.RoundTrip, fare.OneWay)
			}
		}

		claim := func(from, to string) {
			if from == to {
				return
			}
			k := routeKey{from, to}
			prev, taken := owner[k]
			if !taken {
				owner[k] = g.ID
				return
			}
			if prev == g.ID || reported[[2]string{prev, g.ID}] {
				return
			}
			reported[[2]string{prev, g.ID}] = true
			v.addf("route groups %q and %q overlap on %s -> %s", prev, g.ID, from, to)
		}
		for _, from := range g.FromLocations {
			for _, to := range g.ToLocations {
				claim(from, to)
				if g.Bidirectional {
					claim(to, from)
				}
			}
		}
	}
}

func (v *validator) checkRoutes(routes []Route) {
	pairs := map[routeKey]string{}
	for _, r := range routes {
		if r.ID == "" {
			v.addf("route with empty id")
			continue
		}
		if v.routes[r.ID] {
			v.addf("route %q declared twice", r.ID)
			continue
		}
		v.routes[r.ID] = true
		if !v.locations[r.From] || !v.locations[r.To] {
			v.addf("route %q references unknown location", r.ID)
		}
		if r.From == r.To {
			v.addf("route %q starts and ends at %q", r.ID, r.From)
		}
		if r.BasePriceEGP <= 0 {
			v.addf("route %q: base price must be positive", r.ID)
		}
		k := routeKey{r.From, r.To}
		if prev, ok := pairs[k]; ok {
			v.addf("routes %q and %q both cover %s -> %s", prev, r.ID, r.From, r.To)
		} else {
			pairs[k] = r.ID
		}
	}
}

func (v *validator) checkCalendar(slots []TimeSlot, days []DayType, h Holidays) {
	seen := map[string]bool{}
	for _, s := range slots {
		if seen[s.ID] {
			v.addf("time slot %q declared twice", s.ID)
		}
		seen[s.ID] = true
		if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
			v.addf("time slot %q has invalid hours [%d, %d)", s.ID, s.StartHour, s.EndHour)
		}
		if s.Multiplier <= 0 {
			v.addf("time slot %q: multiplier must be positive", s.ID)
		}
	}

	seenDays := map[DayTypeID]bool{}
	for _, d := range days {
		switch d.ID {
		case DayWeekday, DayWeekend, DayHoliday:
		default:
			v.addf("unknown day type %q", d.ID)
		}
		if seenDays[d.ID] {
			v.addf("day type %q declared twice", d.ID)
		}
		seenDays[d.ID] = true
		if d.Multiplier <= 0 {
			v.addf("day type %q: multiplier must be positive", d.ID)
		}
	}

	for _, md := range h.Fixed {
		if md.Month < 1 || md.Month > 12 || md.Day < 1 || md.Day > 31 {
			v.addf("fixed holiday %d/%d is not a calendar day", md.Month, md.Day)
		}
	}
	for _, d := range h.Variable {
		if _, err := time.Parse(DateLayout, d); err != nil {
			v.addf("holiday %q: %w", d, err)
		}
	}
}

func (v *validator) checkServices(services []AdditionalService) {
	seen := map[string]bool{}
	for _, s := range services {
		if s.ID == "" || seen[s.ID] {
			v.addf("service id %q is empty or duplicated", s.ID)
			continue
		}
		seen[s.ID] = true
		if s.Price < 0 || s.MaxQuantity < 0 {
			v.addf("service %q: negative price or quantity", s.ID)
		}
	}
}

func (v *validator) checkDiscounts(rules []DiscountRule) {
	seen := map[string]bool{}
	for _, r := range rules {
		if r.ID == "" || seen[r.ID] {
			v.addf("discount id %q is empty or duplicated", r.ID)
			continue
		}
		seen[r.ID] = true
		switch r.Type {
		case DiscountPercentage:
			if r.Value > 100 {
				v.addf("discount %q: percentage above 100", r.ID)
			}
		case DiscountFixed:
		default:
			v.addf("discount %q has unknown type %q", r.ID, r.Type)
		}
		if r.Value < 0 || r.MaxAmount < 0 {
			v.addf("discount %q: negative value or cap", r.ID)
		}
		for _, d := range []string{r.ValidFrom, r.ValidTo} {
			if d == "" {
				continue
			}
			if _, err := time.Parse(DateLayout, d); err != nil {
				v.addf("discount %q: bad date %q", r.ID, d)
			}
		}
		for _, id := range r.Conditions.SpecificRoutes {
			if !v.routes[id] {
				v.addf("discount %q references unknown route %q", r.ID, id)
			}
		}
	}
}

func (v *validator) checkSettings(s Settings) {
	if s.BasePassengers < 0 || s.MinimumBookingHours < 0 || s.MaxAdvanceBookingDays < 0 || s.RoundTripReturnMinHours < 0 {
		v.addf("settings contain negative values")
	}
	for _, wd := range s.WeekendDays {
		if wd < 0 || wd > 6 {
			v.addf("weekend day %d is not a weekday number", wd)
		}
	}
}

func validRouteType(t RouteType) bool {
	return t == RouteTypeTravel || t == RouteTypeInternal
}
