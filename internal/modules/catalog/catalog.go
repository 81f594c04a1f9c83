// README: Immutable catalog built once at startup and injected into the resolver and pricing strategies.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

type Catalog struct {
	data      Data
	locations map[string]int
	vehicles  map[VehicleCategory]int
	services  map[string]int
	routes    map[routeKey]int
	dayTypes  map[DayTypeID]int
	fixed     map[MonthDay]struct{}
	variable  map[string]struct{}
	weekend   map[time.Weekday]struct{}
}

type routeKey struct {
	from, to string
}

// New validates data and returns a read-only catalog. All validation problems
// are reported together.
func New(data Data) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c := &Catalog{
		data:      cloneData(data),
		locations: make(map[string]int, len(data.Locations)),
		vehicles:  make(map[VehicleCategory]int, len(data.Vehicles)),
		services:  make(map[string]int, len(data.Services)),
		routes:    make(map[routeKey]int, len(data.Routes)),
		dayTypes:  make(map[DayTypeID]int, len(data.DayTypes)),
		fixed:     make(map[MonthDay]struct{}, len(data.Holidays.Fixed)),
		variable:  make(map[string]struct{}, len(data.Holidays.Variable)),
		weekend:   make(map[time.Weekday]struct{}, len(data.Settings.WeekendDays)),
	}
	for i, l := range c.data.Locations {
		c.locations[l.ID] = i
	}
	for i, v := range c.data.Vehicles {
		c.vehicles[v.Category] = i
	}
	for i, s := range c.data.Services {
		c.services[s.ID] = i
	}
	for i, r := range c.data.Routes {
		c.routes[routeKey{r.From, r.To}] = i
	}
	for i, d := range c.data.DayTypes {
		c.dayTypes[d.ID] = i
	}
	for _, md := range c.data.Holidays.Fixed {
		c.fixed[md] = struct{}{}
	}
	for _, d := range c.data.Holidays.Variable {
		c.variable[d] = struct{}{}
	}
	for _, wd := range c.data.Settings.WeekendDays {
		c.weekend[time.Weekday(wd)] = struct{}{}
	}
	return c, nil
}

// MustNew is for package-level literals and tests.
func MustNew(data Data) *Catalog {
	c, err := New(data)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Data() Data {
	return cloneData(c.data)
}

func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.data.Locations))
	for i, l := range c.data.Locations {
		out[i] = cloneLocation(l)
	}
	return out
}

func (c *Catalog) Location(id string) (Location, bool) {
	i, ok := c.locations[id]
	if !ok {
		return Location{}, false
	}
	return cloneLocation(c.data.Locations[i]), true
}

func (c *Catalog) RouteGroups() []RouteGroup {
	out := make([]RouteGroup, len(c.data.RouteGroups))
	for i, g := range c.data.RouteGroups {
		out[i] = cloneGroup(g)
	}
	return out
}

func (c *Catalog) Routes() []Route {
	return slices.Clone(c.data.Routes)
}

// Route returns the flat route for the exact (from, to) direction.
func (c *Catalog) Route(from, to string) (Route, bool) {
	i, ok := c.routes[routeKey{from, to}]
	if !ok {
		return Route{}, false
	}
	return c.data.Routes[i], true
}

// Vehicles returns vehicle categories in declaration order.
func (c *Catalog) Vehicles() []VehiclePricing {
	return slices.Clone(c.data.Vehicles)
}

func (c *Catalog) Vehicle(cat VehicleCategory) (VehiclePricing, bool) {
	i, ok := c.vehicles[cat]
	if !ok {
		return VehiclePricing{}, false
	}
	return c.data.Vehicles[i], true
}

func (c *Catalog) TimeSlots() []TimeSlot {
	return slices.Clone(c.data.TimeSlots)
}

func (c *Catalog) DayType(id DayTypeID) (DayType, bool) {
	i, ok := c.dayTypes[id]
	if !ok {
		return DayType{}, false
	}
	return c.data.DayTypes[i], true
}

// IsHoliday checks the calendar date of t in t's own location.
func (c *Catalog) IsHoliday(t time.Time) bool {
	if _, ok := c.fixed[MonthDay{Month: int(t.Month()), Day: t.Day()}]; ok {
		return true
	}
	_, ok := c.variable[t.Format(DateLayout)]
	return ok
}

func (c *Catalog) IsWeekend(t time.Time) bool {
	_, ok := c.weekend[t.Weekday()]
	return ok
}

func (c *Catalog) Services() []AdditionalService {
	return slices.Clone(c.data.Services)
}

func (c *Catalog) Service(id string) (AdditionalService, bool) {
	i, ok := c.services[id]
	if !ok {
		return AdditionalService{}, false
	}
	return c.data.Services[i], true
}

func (c *Catalog) Discounts() []DiscountRule {
	out := make([]DiscountRule, len(c.data.Discounts))
	for i, d := range c.data.Discounts {
		out[i] = cloneDiscount(d)
	}
	return out
}

func (c *Catalog) Settings() Settings {
	s := c.data.Settings
	s.WeekendDays = slices.Clone(s.WeekendDays)
	return s
}

func cloneData(d Data) Data {
	out := Data{
		Routes:    slices.Clone(d.Routes),
		Vehicles:  slices.Clone(d.Vehicles),
		TimeSlots: slices.Clone(d.TimeSlots),
		DayTypes:  slices.Clone(d.DayTypes),
		Holidays: Holidays{
			Fixed:    slices.Clone(d.Holidays.Fixed),
			Variable: slices.Clone(d.Holidays.Variable),
		},
		Services: slices.Clone(d.Services),
		Settings: d.Settings,
	}
	out.Settings.WeekendDays = slices.Clone(d.Settings.WeekendDays)
	for _, l := range d.Locations {
		out.Locations = append(out.Locations, cloneLocation(l))
	}
	for _, g := range d.RouteGroups {
		out.RouteGroups = append(out.RouteGroups, cloneGroup(g))
	}
	for _, r := range d.Discounts {
		out.Discounts = append(out.Discounts, cloneDiscount(r))
	}
	return out
}

func cloneLocation(l Location) Location {
	if l.Coordinates != nil {
		p := *l.Coordinates
		l.Coordinates = &p
	}
	return l
}

func cloneGroup(g RouteGroup) RouteGroup {
	g.FromLocations = slices.Clone(g.FromLocations)
	g.ToLocations = slices.Clone(g.ToLocations)
	g.Pricing = maps.Clone(g.Pricing)
	return g
}

func cloneDiscount(d DiscountRule) DiscountRule {
	d.Conditions.SpecificRoutes = slices.Clone(d.Conditions.SpecificRoutes)
	return d
}
