package booking

import (
	"testing"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

// 2026-10-15 is a Thursday.
var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func testEnv(t *testing.T, strategy string) Env {
	t.Helper()
	cat := catalog.Default()
	now := func() time.Time { return testNow }
	s, err := pricing.NewStrategy(strategy, cat, pricing.Options{Now: now})
	if err != nil {
		t.Fatal(err)
	}
	return Env{Catalog: cat, Strategy: s, Now: now}
}

func reduceAll(env Env, s State, events ...Event) State {
	for _, ev := range events {
		s = Reduce(env, s, ev)
	}
	return s
}

func TestDefaultState(t *testing.T) {
	s := DefaultState(testEnv(t, pricing.StrategyFixed))
	if s.From != "damietta-city" || s.To != "" || s.VehicleCategory != catalog.VehicleSedan || s.PassengerCount != 2 {
		t.Errorf("DefaultState() = %+v", s)
	}
	if s.TripDate != "2026-10-16" || s.TripTime != "10:00" || s.IsRoundTrip {
		t.Errorf("DefaultState() schedule = %s %s round=%v", s.TripDate, s.TripTime, s.IsRoundTrip)
	}
}

func TestReduce_PassengersSwitchVehicle(t *testing.T) {
	env := testEnv(t, pricing.StrategyFixed)

	tests := []struct {
		name        string
		start       catalog.VehicleCategory
		events      []Event
		wantVehicle catalog.VehicleCategory
		wantCount   int
	}{
		{"five passengers leave the sedan", catalog.VehicleSedan, []Event{SetPassengers{Count: 5}}, catalog.VehicleFamilyCruiser, 5},
		{"ten passengers need the minibus", catalog.VehicleSedan, []Event{SetPassengers{Count: 10}}, catalog.VehicleMinibus, 10},
		{"fits current vehicle", catalog.VehicleSUV, []Event{SetPassengers{Count: 4}}, catalog.VehicleSUV, 4},
		{"no downgrade when count drops", catalog.VehicleSedan, []Event{SetPassengers{Count: 10}, SetPassengers{Count: 3}}, catalog.VehicleMinibus, 3},
		{"nothing large enough keeps vehicle", catalog.VehicleSedan, []Event{SetPassengers{Count: 20}}, catalog.VehicleSedan, 20},
		{"zero ignored", catalog.VehicleSedan, []Event{SetPassengers{Count: 0}}, catalog.VehicleSedan, 2},
		{"negative ignored", catalog.VehicleSedan, []Event{SetPassengers{Count: -3}}, catalog.VehicleSedan, 2},
		{"unknown vehicle ignored", catalog.VehicleSUV, []Event{SetVehicle{Category: "limo"}}, catalog.VehicleSUV, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState(env)
			s.VehicleCategory = tt.start
			got := reduceAll(env, s, tt.events...)
			if got.VehicleCategory != tt.wantVehicle || got.PassengerCount != tt.wantCount {
				t.Errorf("vehicle/count = %s/%d, want %s/%d", got.VehicleCategory, got.PassengerCount, tt.wantVehicle, tt.wantCount)
			}
		})
	}
}

func TestReduce_Locations(t *testing.T) {
	env := testEnv(t, pricing.StrategyFixed)
	base := DefaultState(env)

	tests := []struct {
		name     string
		start    State
		events   []Event
		wantType catalog.RouteType
		wantFrom string
		wantTo   string
	}{
		{
			name:     "destination picks the route type",
			start:    base,
			events:   []Event{SetTo{ID: "faraskour"}},
			wantType: catalog.RouteTypeInternal, wantFrom: "damietta-city", wantTo: "faraskour",
		},
		{
			name:     "travel destination",
			start:    base,
			events:   []Event{SetRouteType{RouteType: catalog.RouteTypeInternal}, SetTo{ID: "cairo-downtown"}},
			wantType: catalog.RouteTypeTravel, wantFrom: "damietta-city", wantTo: "cairo-downtown",
		},
		{
			name:     "unreachable destination cleared on origin change",
			start:    base,
			events:   []Event{SetTo{ID: "faraskour"}, SetFrom{ID: "cairo-downtown"}},
			wantType: catalog.RouteTypeInternal, wantFrom: "cairo-downtown", wantTo: "",
		},
		{
			name:     "destination outside the reachable set rejected",
			start:    base,
			events:   []Event{SetFrom{ID: "cairo-downtown"}, SetTo{ID: "zamalek"}},
			wantFrom: "cairo-downtown", wantTo: "",
		},
		{
			name:     "route type without the origin clears both ends",
			start:    base,
			events:   []Event{SetFrom{ID: "zamalek"}, SetTo{ID: "ras-elbar"}, SetRouteType{RouteType: catalog.RouteTypeInternal}},
			wantType: catalog.RouteTypeInternal, wantFrom: "", wantTo: "",
		},
		{
			name:     "route type switch drops a destination of the other type",
			start:    base,
			events:   []Event{SetTo{ID: "cairo-downtown"}, SetRouteType{RouteType: catalog.RouteTypeInternal}},
			wantType: catalog.RouteTypeInternal, wantFrom: "damietta-city", wantTo: "",
		},
		{
			name:     "unknown location ignored",
			start:    base,
			events:   []Event{SetFrom{ID: "luxor"}},
			wantFrom: "damietta-city",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceAll(env, tt.start, tt.events...)
			if got.RouteType != tt.wantType || got.From != tt.wantFrom || got.To != tt.wantTo {
				t.Errorf("type/from/to = %q/%q/%q, want %q/%q/%q", got.RouteType, got.From, got.To, tt.wantType, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestReduce_Schedule(t *testing.T) {
	env := testEnv(t, pricing.StrategyDynamic)
	base := DefaultState(env)

	tests := []struct {
		name                     string
		events                   []Event
		wantTripDate, wantTrip   string
		wantReturnDate, wantBack string
		wantRound                bool
	}{
		{
			name:         "round trip defaults the return to the outbound",
			events:       []Event{SetRoundTrip{On: true}},
			wantTripDate: "2026-10-16", wantTrip: "10:00", wantReturnDate: "2026-10-16", wantBack: "10:00", wantRound: true,
		},
		{
			name:         "existing return kept when round trip switched on",
			events:       []Event{SetReturnDate{Date: "2026-10-20"}, SetReturnTime{Time: "18:00"}, SetRoundTrip{On: true}},
			wantTripDate: "2026-10-16", wantTrip: "10:00", wantReturnDate: "2026-10-20", wantBack: "18:00", wantRound: true,
		},
		{
			name:         "return pulled forward to a later trip date",
			events:       []Event{SetRoundTrip{On: true}, SetTripDate{Date: "2026-10-19"}},
			wantTripDate: "2026-10-19", wantTrip: "10:00", wantReturnDate: "2026-10-19", wantBack: "10:00", wantRound: true,
		},
		{
			name:         "same-day return pushed two hours after the trip",
			events:       []Event{SetRoundTrip{On: true}, SetReturnTime{Time: "11:00"}, SetTripTime{Time: "12:30"}},
			wantTripDate: "2026-10-16", wantTrip: "12:30", wantReturnDate: "2026-10-16", wantBack: "14:30", wantRound: true,
		},
		{
			name:         "pushed return wraps past midnight",
			events:       []Event{SetRoundTrip{On: true}, SetTripTime{Time: "23:00"}},
			wantTripDate: "2026-10-16", wantTrip: "23:00", wantReturnDate: "2026-10-16", wantBack: "01:00", wantRound: true,
		},
		{
			name:         "later return left alone",
			events:       []Event{SetRoundTrip{On: true}, SetReturnTime{Time: "20:00"}, SetTripTime{Time: "12:00"}},
			wantTripDate: "2026-10-16", wantTrip: "12:00", wantReturnDate: "2026-10-16", wantBack: "20:00", wantRound: true,
		},
		{
			name:         "return on another day left alone",
			events:       []Event{SetReturnDate{Date: "2026-10-18"}, SetReturnTime{Time: "08:00"}, SetTripTime{Time: "12:00"}},
			wantTripDate: "2026-10-16", wantTrip: "12:00", wantReturnDate: "2026-10-18", wantBack: "08:00",
		},
		{
			name:         "malformed values ignored",
			events:       []Event{SetTripDate{Date: "16/10/2026"}, SetTripTime{Time: "noon"}, SetReturnTime{Time: "25:00"}},
			wantTripDate: "2026-10-16", wantTrip: "10:00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceAll(env, base, tt.events...)
			if got.TripDate != tt.wantTripDate || got.TripTime != tt.wantTrip {
				t.Errorf("trip = %s %s, want %s %s", got.TripDate, got.TripTime, tt.wantTripDate, tt.wantTrip)
			}
			if got.ReturnDate != tt.wantReturnDate || got.ReturnTime != tt.wantBack {
				t.Errorf("return = %s %s, want %s %s", got.ReturnDate, got.ReturnTime, tt.wantReturnDate, tt.wantBack)
			}
			if got.IsRoundTrip != tt.wantRound {
				t.Errorf("round trip = %v", got.IsRoundTrip)
			}
		})
	}
}

func TestReduce_ToggleService(t *testing.T) {
	env := testEnv(t, pricing.StrategyDynamic)
	s := reduceAll(env, DefaultState(env),
		ToggleService{ID: "child-seat"},
		ToggleService{ID: "spa"},
		ToggleService{ID: "stop-over"},
	)
	if len(s.Services) != 2 || s.Services[0] != "child-seat" || s.Services[1] != "stop-over" {
		t.Fatalf("services = %v", s.Services)
	}

	before := s
	after := Reduce(env, before, ToggleService{ID: "child-seat"})
	if len(after.Services) != 1 || after.Services[0] != "stop-over" {
		t.Errorf("services after toggle off = %v", after.Services)
	}
	if len(before.Services) != 2 || before.Services[0] != "child-seat" {
		t.Errorf("Reduce mutated its input: %v", before.Services)
	}
}
