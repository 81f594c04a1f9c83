// README: Catalog reference data (locations, route groups, flat routes, vehicles, calendar, services, discounts).
package catalog

type RouteType string

const (
	RouteTypeTravel   RouteType = "travel"
	RouteTypeInternal RouteType = "internal"
)

type VehicleCategory string

const (
	VehicleSedan         VehicleCategory = "sedan"
	VehicleSUV           VehicleCategory = "suv"
	VehicleFamilyCruiser VehicleCategory = "family_cruiser"
	VehicleMinibus       VehicleCategory = "minibus"
)

type DayTypeID string

const (
	DayWeekday DayTypeID = "weekday"
	DayWeekend DayTypeID = "weekend"
	DayHoliday DayTypeID = "holiday"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DateLayout is the calendar date format used by holidays and discount windows.
const DateLayout = "2006-01-02"

type Point struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

type Location struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	NameAr      string    `yaml:"nameAr" json:"nameAr"`
	Type        RouteType `yaml:"type,omitempty" json:"type,omitempty"`
	Coordinates *Point    `yaml:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Fare struct {
	OneWay    float64 `yaml:"oneWay" json:"oneWay"`
	RoundTrip float64 `yaml:"roundTrip" json:"roundTrip"`
}

// RouteGroup prices every origin in FromLocations to every destination in
// ToLocations with one fare table.
type RouteGroup struct {
	ID            string                   `yaml:"id" json:"id"`
	Type          RouteType                `yaml:"type" json:"type"`
	NameAr        string                   `yaml:"nameAr" json:"nameAr"`
	FromLocations []string                 `yaml:"fromLocations" json:"fromLocations"`
	ToLocations   []string                 `yaml:"toLocations" json:"toLocations"`
	Bidirectional bool                     `yaml:"bidirectional" json:"bidirectional"`
	Pricing       map[VehicleCategory]Fare `yaml:"pricing" json:"pricing"`
}

// Route is a single directional path used by the dynamic pricing model.
type Route struct {
	ID              string  `yaml:"id" json:"id"`
	From            string  `yaml:"from" json:"from"`
	To              string  `yaml:"to" json:"to"`
	NameAr          string  `yaml:"nameAr" json:"nameAr"`
	DistanceKm      float64 `yaml:"distanceKm" json:"distanceKm"`
	DurationMinutes int     `yaml:"durationMinutes" json:"durationMinutes"`
	BasePriceEGP    float64 `yaml:"basePriceEGP" json:"basePriceEGP"`
}

type VehiclePricing struct {
	Category               VehicleCategory `yaml:"category" json:"category"`
	CategoryAr             string          `yaml:"categoryAr" json:"categoryAr"`
	MinPassengers          int             `yaml:"minPassengers" json:"minPassengers"`
	MaxPassengers          int             `yaml:"maxPassengers" json:"maxPassengers"`
	BaseMultiplier         float64         `yaml:"baseMultiplier" json:"baseMultiplier"`
	PricePerExtraPassenger float64         `yaml:"pricePerExtraPassenger,omitempty" json:"pricePerExtraPassenger,omitempty"`
}

// TimeSlot covers hours in [StartHour, EndHour).
type TimeSlot struct {
	ID         string  `yaml:"id" json:"id"`
	NameAr     string  `yaml:"nameAr" json:"nameAr"`
	StartHour  int     `yaml:"startHour" json:"startHour"`
	EndHour    int     `yaml:"endHour" json:"endHour"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

type DayType struct {
	ID         DayTypeID `yaml:"id" json:"id"`
	NameAr     string    `yaml:"nameAr" json:"nameAr"`
	Multiplier float64   `yaml:"multiplier" json:"multiplier"`
}

type MonthDay struct {
	Month int `yaml:"month" json:"month"`
	Day   int `yaml:"day" json:"day"`
}

type Holidays struct {
	Fixed    []MonthDay `yaml:"fixed" json:"fixed"`
	Variable []string   `yaml:"variable" json:"variable"`
}

type AdditionalService struct {
	ID          string  `yaml:"id" json:"id"`
	NameAr      string  `yaml:"nameAr" json:"nameAr"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Price       float64 `yaml:"price" json:"price"`
	MaxQuantity int     `yaml:"maxQuantity,omitempty" json:"maxQuantity,omitempty"`
}

type DiscountConditions struct {
	MinPassengers      int      `yaml:"minPassengers,omitempty" json:"minPassengers,omitempty"`
	RoundTrip          bool     `yaml:"roundTrip,omitempty" json:"roundTrip,omitempty"`
	AdvanceBookingDays int      `yaml:"advanceBookingDays,omitempty" json:"advanceBookingDays,omitempty"`
	SpecificRoutes     []string `yaml:"specificRoutes,omitempty" json:"specificRoutes,omitempty"`
	MinTotalAmount     float64  `yaml:"minTotalAmount,omitempty" json:"minTotalAmount,omitempty"`
}

type DiscountRule struct {
	ID          string             `yaml:"id" json:"id"`
	NameAr      string             `yaml:"nameAr" json:"nameAr"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Type        DiscountType       `yaml:"type" json:"type"`
	Value       float64            `yaml:"value" json:"value"`
	MaxAmount   float64            `yaml:"maxAmount,omitempty" json:"maxAmount,omitempty"` // 0 means uncapped
	IsStackable bool               `yaml:"isStackable" json:"isStackable"`
	ValidFrom   string             `yaml:"validFrom,omitempty" json:"validFrom,omitempty"`
	ValidTo     string             `yaml:"validTo,omitempty" json:"validTo,omitempty"`
	Conditions  DiscountConditions `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

type Settings struct {
	Currency                string `yaml:"currency" json:"currency"`
	CurrencyAr              string `yaml:"currencyAr" json:"currencyAr"`
	BasePassengers          int    `yaml:"basePassengers" json:"basePassengers"`
	MinimumBookingHours     int    `yaml:"minimumBookingHours" json:"minimumBookingHours"`
	MaxAdvanceBookingDays   int    `yaml:"maxAdvanceBookingDays" json:"maxAdvanceBookingDays"`
	RoundTripReturnMinHours int    `yaml:"roundTripReturnMinHours" json:"roundTripReturnMinHours"`
	WhatsAppNumber          string `yaml:"whatsappNumber" json:"whatsappNumber"`
	ContactEmail            string `yaml:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	// WeekendDays uses time.Weekday numbering (0 = Sunday).
	WeekendDays []int `yaml:"weekendDays" json:"weekendDays"`
}

// Data is the plain, serializable form of a catalog.
type Data struct {
	Locations   []Location          `yaml:"locations"`
	RouteGroups []RouteGroup        `yaml:"routeGroups"`
	Routes      []Route             `yaml:"routes"`
	Vehicles    []VehiclePricing    `yaml:"vehicles"`
	TimeSlots   []TimeSlot          `yaml:"timeSlots"`
	DayTypes    []DayType           `yaml:"dayTypes"`
	Holidays    Holidays            `yaml:"holidays"`
	Services    []AdditionalService `yaml:"services"`
	Discounts   []DiscountRule      `yaml:"discounts"`
	Settings    Settings            `yaml:"settings"`
}
