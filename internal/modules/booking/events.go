// README: Form events and their wire encoding {"type": ..., "value": ...}.
package booking

import (
	"encoding/json"
	"errors"
	"fmt"

	"wasalny/internal/modules/catalog"
)

var ErrUnknownEvent = errors.New("unknown booking event")

// Event is one user edit. The set is closed; see Reduce.
type Event interface {
	isEvent()
}

type (
	SetRouteType  struct{ RouteType catalog.RouteType }
	SetFrom       struct{ ID string }
	SetTo         struct{ ID string }
	SetVehicle    struct{ Category catalog.VehicleCategory }
	SetPassengers struct{ Count int }
	SetTripDate   struct{ Date string }
	SetTripTime   struct{ Time string }
	SetRoundTrip  struct{ On bool }
	SetReturnDate struct{ Date string }
	SetReturnTime struct{ Time string }
	ToggleService struct{ ID string }
)

func (SetRouteType) isEvent()  {}
func (SetFrom) isEvent()       {}
func (SetTo) isEvent()         {}
func (SetVehicle) isEvent()    {}
func (SetPassengers) isEvent() {}
func (SetTripDate) isEvent()   {}
func (SetTripTime) isEvent()   {}
func (SetRoundTrip) isEvent()  {}
func (SetReturnDate) isEvent() {}
func (SetReturnTime) isEvent() {}
func (ToggleService) isEvent() {}

// WireEvent is the JSON form posted by clients.
type WireEvent struct {
	Type  string          `json:"type" binding:"required"`
	Value json.RawMessage `json:"value"`
}

var wireTypes = map[string]bool{
	"setRouteType": true, "setFrom": true, "setTo": true, "setVehicle": true,
	"setPassengers": true, "setTripDate": true, "setTripTime": true, "setRoundTrip": true,
	"setReturnDate": true, "setReturnTime": true, "toggleService": true,
}

// Decode turns a wire event into an Event.
func (w WireEvent) Decode() (Event, error) {
	if !wireTypes[w.Type] {
		return nil, fmt.Errorf("booking: %q: %w", w.Type, ErrUnknownEvent)
	}
	var (
		str string
		num int
		on  bool
	)
	target := any(&str)
	switch w.Type {
	case "setPassengers":
		target = &num
	case "setRoundTrip":
		target = &on
	}
	if err := json.Unmarshal(w.Value, target); err != nil {
		return nil, fmt.Errorf("booking: event %q: %w", w.Type, err)
	}

	switch w.Type {
	case "setRouteType":
		return SetRouteType{RouteType: catalog.RouteType(str)}, nil
	case "setFrom":
		return SetFrom{ID: str}, nil
	case "setTo":
		return SetTo{ID: str}, nil
	case "setVehicle":
		return SetVehicle{Category: catalog.VehicleCategory(str)}, nil
	case "setPassengers":
		return SetPassengers{Count: num}, nil
	case "setTripDate":
		return SetTripDate{Date: str}, nil
	case "setTripTime":
		return SetTripTime{Time: str}, nil
	case "setRoundTrip":
		return SetRoundTrip{On: on}, nil
	case "setReturnDate":
		return SetReturnDate{Date: str}, nil
	case "setReturnTime":
		return SetReturnTime{Time: str}, nil
	case "toggleService":
		return ToggleService{ID: str}, nil
	default:
		return nil, fmt.Errorf("booking: %q: %w", w.Type, ErrUnknownEvent)
	}
}
