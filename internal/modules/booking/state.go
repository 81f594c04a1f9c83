// README: Booking form state and the environment it is reduced against.
package booking

import (
	"slices"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

// State is the form snapshot. Dates are YYYY-MM-DD, times HH:MM.
type State struct {
	RouteType       catalog.RouteType       `json:"routeType,omitempty"`
	From            string                  `json:"fromLocation"`
	To              string                  `json:"toLocation"`
	VehicleCategory catalog.VehicleCategory `json:"vehicleCategory"`
	PassengerCount  int                     `json:"passengerCount"`
	TripDate        string                  `json:"tripDate"`
	TripTime        string                  `json:"tripTime"`
	IsRoundTrip     bool                    `json:"isRoundTrip"`
	ReturnDate      string                  `json:"returnDate,omitempty"`
	ReturnTime      string                  `json:"returnTime,omitempty"`
	Services        []string                `json:"services,omitempty"`
}

func (s State) clone() State {
	s.Services = slices.Clone(s.Services)
	return s
}

// Env carries everything Reduce and Compute read besides the state itself.
type Env struct {
	Catalog  *catalog.Catalog
	Strategy pricing.Strategy
	Location *time.Location
	Now      func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now().In(e.location())
	}
	return e.Now().In(e.location())
}

func (e Env) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

const (
	defaultOrigin    = "damietta-city"
	defaultPassenger = 2
	defaultTripTime  = "10:00"
)

// DefaultState is the form a new visitor sees: leaving Damietta tomorrow at
// ten in a sedan with two passengers.
func DefaultState(env Env) State {
	s := State{
		VehicleCategory: catalog.VehicleSedan,
		PassengerCount:  defaultPassenger,
		TripDate:        env.now().AddDate(0, 0, 1).Format(catalog.DateLayout),
		TripTime:        defaultTripTime,
	}
	if _, ok := env.Catalog.Location(defaultOrigin); ok {
		s.From = defaultOrigin
	}
	if _, ok := env.Catalog.Vehicle(s.VehicleCategory); !ok {
		if vs := env.Catalog.Vehicles(); len(vs) > 0 {
			s.VehicleCategory = vs[0].Category
		}
	}
	return s
}
