// README: Values derived from a form state: availability, live quote, validation and the booking link.
package booking

import (
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
	"wasalny/internal/modules/quote"
)

type Computed struct {
	AvailableOrigins      []catalog.Location `json:"availableOrigins"`
	AvailableDestinations []catalog.Location `json:"availableDestinations"`
	RouteType             catalog.RouteType  `json:"routeType,omitempty"`
	Result                *pricing.Result    `json:"result,omitempty"`
	FormattedTotal        string             `json:"formattedTotal,omitempty"`
	CalculationError      string             `json:"calculationError,omitempty"`
	ValidationErrors      []string           `json:"validationErrors"`
	IsValid               bool               `json:"isValid"`
	WhatsAppLink          string             `json:"whatsappLink,omitempty"`
}

// Compute is a pure function of env and s.
func Compute(env Env, s State) Computed {
	network := env.Strategy.Network()
	c := Computed{
		AvailableOrigins:      network.Origins(s.RouteType),
		AvailableDestinations: network.Destinations(s.From),
		RouteType:             s.RouteType,
		ValidationErrors:      Validate(env, s),
	}

	if s.From != "" && s.To != "" {
		trip, err := TripDetails(env, s)
		if err == nil {
			c.Result, err = env.Strategy.Calculate(trip)
		}
		if err != nil {
			c.CalculationError = pricing.Message(err)
		}
	}

	if c.Result != nil {
		f := quote.NewFormatter(env.Catalog.Settings())
		c.FormattedTotal = f.Price(c.Result.Breakdown.Total)
		c.WhatsAppLink = f.WhatsAppLink(c.Result, "")
		if rt := c.Result.Details.RouteType; rt != "" {
			c.RouteType = rt
		}
	}
	c.IsValid = len(c.ValidationErrors) == 0 && c.Result != nil
	return c
}

// TripDetails converts the form fields into calculator input. The return
// schedule is passed only on round trips.
func TripDetails(env Env, s State) (pricing.TripDetails, error) {
	loc := env.location()
	date, err := time.ParseInLocation(catalog.DateLayout, s.TripDate, loc)
	if err != nil {
		return pricing.TripDetails{}, pricing.ErrInvalidTime
	}
	trip := pricing.TripDetails{
		From:            s.From,
		To:              s.To,
		VehicleCategory: s.VehicleCategory,
		PassengerCount:  s.PassengerCount,
		TripDate:        date,
		TripTime:        s.TripTime,
		IsRoundTrip:     s.IsRoundTrip,
		Services:        s.Services,
	}
	if s.IsRoundTrip && s.ReturnDate != "" {
		ret, err := time.ParseInLocation(catalog.DateLayout, s.ReturnDate, loc)
		if err != nil {
			return pricing.TripDetails{}, pricing.ErrInvalidTime
		}
		trip.ReturnDate = &ret
		trip.ReturnTime = s.ReturnTime
	}
	return trip, nil
}
