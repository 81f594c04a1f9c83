// README: Pricing inputs (trip details) and outputs (breakdown, details, warnings).
package pricing

import (
	"time"

	"wasalny/internal/modules/catalog"
)

// TripDetails is built fresh for every calculation. TripDate and ReturnDate
// are calendar dates; only their year, month and day are read.
type TripDetails struct {
	From            string
	To              string
	VehicleCategory catalog.VehicleCategory
	PassengerCount  int
	TripDate        time.Time
	TripTime        string // HH:MM
	IsRoundTrip     bool
	ReturnDate      *time.Time
	ReturnTime      string
	Services        []string
}

type Result struct {
	Strategy  string    `json:"strategy"`
	Breakdown Breakdown `json:"breakdown"`
	Details   Details   `json:"details"`
	Warnings  []string  `json:"warnings"`
}

type Breakdown struct {
	VehicleType   string            `json:"vehicleType"`
	BasePrice     float64           `json:"basePrice"`
	Outbound      *Leg              `json:"outbound,omitempty"`
	Return        *Leg              `json:"return,omitempty"`
	Subtotal      float64           `json:"subtotal"`
	Discounts     []AppliedDiscount `json:"discounts,omitempty"`
	TotalDiscount float64           `json:"totalDiscount"`
	Total         float64           `json:"total"`
}

// Leg is one direction of a dynamically priced trip.
type Leg struct {
	DateTime            time.Time `json:"dateTime"`
	TimeSlotAr          string    `json:"timeSlotAr"`
	DayTypeAr           string    `json:"dayTypeAr"`
	VehicleMultiplier   float64   `json:"vehicleMultiplier"`
	VehiclePrice        float64   `json:"vehiclePrice"`
	TimeMultiplier      float64   `json:"timeMultiplier"`
	TimePrice           float64   `json:"timePrice"`
	DayTypeMultiplier   float64   `json:"dayTypeMultiplier"`
	DayTypePrice        float64   `json:"dayTypePrice"`
	ExtraPassengerPrice float64   `json:"extraPassengerPrice"`
	ServicesPrice       float64   `json:"servicesPrice"`
	Total               float64   `json:"total"`
}

type AppliedDiscount struct {
	ID     string  `json:"id"`
	NameAr string  `json:"nameAr"`
	Amount float64 `json:"amount"`
}

type ServiceLine struct {
	ID     string  `json:"id"`
	NameAr string  `json:"nameAr"`
	Price  float64 `json:"price"`
}

type Details struct {
	RouteID           string                  `json:"routeId"`
	RouteNameAr       string                  `json:"routeNameAr"`
	RouteType         catalog.RouteType       `json:"routeType,omitempty"`
	VehicleCategory   catalog.VehicleCategory `json:"vehicleCategory"`
	VehicleCategoryAr string                  `json:"vehicleCategoryAr"`
	PassengerCount    int                     `json:"passengerCount"`
	TripDateTime      time.Time               `json:"tripDateTime"`
	IsRoundTrip       bool                    `json:"isRoundTrip"`
	ReturnDateTime    *time.Time              `json:"returnDateTime,omitempty"`
	TimeSlotAr        string                  `json:"timeSlotAr,omitempty"`
	DayTypeAr         string                  `json:"dayTypeAr,omitempty"`
	Services          []ServiceLine           `json:"services,omitempty"`
}
