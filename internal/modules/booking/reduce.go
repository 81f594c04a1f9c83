// README: Pure form transitions; every auto-correction the form performs lives here.
package booking

import (
	"fmt"
	"slices"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

// Reduce applies ev to s and returns the corrected next state. Invalid edits
// (unknown ids, bad dates, non-positive counts) leave the state unchanged.
func Reduce(env Env, s State, ev Event) State {
	next := s.clone()
	network := env.Strategy.Network()

	switch e := ev.(type) {
	case SetRouteType:
		next.RouteType = e.RouteType
		if next.From != "" && !hasLocation(network.Origins(e.RouteType), next.From) {
			next.From, next.To = "", ""
		}
		// a destination from the other partition would flip the type back
		if rt, ok := network.RouteType(next.From, next.To); ok && rt != "" && e.RouteType != "" && rt != e.RouteType {
			next.To = ""
		}

	case SetFrom:
		if e.ID != "" {
			if _, ok := env.Catalog.Location(e.ID); !ok {
				return s
			}
		}
		next.From = e.ID

	case SetTo:
		if e.ID != "" {
			if _, ok := env.Catalog.Location(e.ID); !ok {
				return s
			}
		}
		next.To = e.ID

	case SetVehicle:
		if _, ok := env.Catalog.Vehicle(e.Category); !ok {
			return s
		}
		next.VehicleCategory = e.Category

	case SetPassengers:
		if e.Count <= 0 {
			return s
		}
		next.PassengerCount = e.Count
		next.VehicleCategory = fitVehicle(env.Catalog, next.VehicleCategory, e.Count)

	case SetTripDate:
		if !validDate(e.Date) {
			return s
		}
		next.TripDate = e.Date
		if next.ReturnDate != "" && next.ReturnDate < next.TripDate {
			next.ReturnDate = next.TripDate
		}

	case SetTripTime:
		if !validClock(e.Time) {
			return s
		}
		next.TripTime = e.Time
		if next.ReturnDate == next.TripDate && validClock(next.ReturnTime) && minutes(next.ReturnTime) <= minutes(next.TripTime) {
			next.ReturnTime = addHours(next.TripTime, 2)
		}

	case SetRoundTrip:
		next.IsRoundTrip = e.On
		if e.On && next.ReturnDate == "" && next.TripDate != "" {
			next.ReturnDate = next.TripDate
			next.ReturnTime = next.TripTime
		}

	case SetReturnDate:
		if e.Date != "" && !validDate(e.Date) {
			return s
		}
		next.ReturnDate = e.Date

	case SetReturnTime:
		if e.Time != "" && !validClock(e.Time) {
			return s
		}
		next.ReturnTime = e.Time

	case ToggleService:
		if i := slices.Index(next.Services, e.ID); i >= 0 {
			next.Services = slices.Delete(next.Services, i, i+1)
		} else if _, ok := env.Catalog.Service(e.ID); ok {
			next.Services = append(next.Services, e.ID)
		}

	default:
		return s
	}

	return reconcile(env, next)
}

// reconcile keeps the destination reachable and the route type in step with
// the matched pair.
func reconcile(env Env, s State) State {
	network := env.Strategy.Network()
	if s.To != "" && !hasLocation(network.Destinations(s.From), s.To) {
		s.To = ""
	}
	if s.From != "" && s.To != "" {
		if rt, ok := network.RouteType(s.From, s.To); ok && rt != "" {
			s.RouteType = rt
		}
	}
	return s
}

// fitVehicle keeps current when it seats count, otherwise picks the first
// vehicle in catalog order that does.
func fitVehicle(cat *catalog.Catalog, current catalog.VehicleCategory, count int) catalog.VehicleCategory {
	if v, ok := cat.Vehicle(current); ok && count <= v.MaxPassengers {
		return current
	}
	for _, v := range cat.Vehicles() {
		if v.MaxPassengers >= count {
			return v.Category
		}
	}
	return current
}

func hasLocation(locs []catalog.Location, id string) bool {
	return slices.ContainsFunc(locs, func(l catalog.Location) bool { return l.ID == id })
}

func validDate(s string) bool {
	_, err := time.Parse(catalog.DateLayout, s)
	return err == nil
}

func validClock(s string) bool {
	_, _, err := pricing.ParseClock(s)
	return err == nil
}

func minutes(clock string) int {
	h, m, _ := pricing.ParseClock(clock)
	return h*60 + m
}

func addHours(clock string, hours int) string {
	total := (minutes(clock) + hours*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
