package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func minimalData() Data {
	return Data{
		Locations: []Location{
			{ID: "a", Name: "A", NameAr: "أ"},
			{ID: "b", Name: "B", NameAr: "ب"},
			{ID: "c", Name: "C", NameAr: "ج"},
		},
		Vehicles: []VehiclePricing{
			{Category: VehicleSedan, CategoryAr: "سيدان", MinPassengers: 1, MaxPassengers: 3, BaseMultiplier: 1},
			{Category: VehicleFamilyCruiser, CategoryAr: "عائلية", MinPassengers: 1, MaxPassengers: 7, BaseMultiplier: 1.6},
		},
		RouteGroups: []RouteGroup{
			{
				ID: "g1", Type: RouteTypeTravel, NameAr: "أ - ب",
				FromLocations: []string{"a"}, ToLocations: []string{"b"}, Bidirectional: true,
				Pricing: map[VehicleCategory]Fare{VehicleSedan: {OneWay: 100, RoundTrip: 180}},
			},
		},
		Settings: Settings{CurrencyAr: "جنيه", WeekendDays: []int{5, 6}},
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Validate(DefaultData()); err != nil {
		t.Fatalf("built-in catalog rejected: %v", err)
	}
}

func TestRoundTripFareNotBelowOneWay(t *testing.T) {
	for _, g := range Default().RouteGroups() {
		for cat, fare := range g.Pricing {
			if fare.RoundTrip < fare.OneWay {
				t.Errorf("%s/%s: round trip %.0f < one way %.0f", g.ID, cat, fare.RoundTrip, fare.OneWay)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Data)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(d *Data) {},
		},
		{
			name: "round trip below one way",
			mutate: func(d *Data) {
				d.RouteGroups[0].Pricing[VehicleSedan] = Fare{OneWay: 200, RoundTrip: 150}
			},
			wantMsg: "round-trip fare",
		},
		{
			name: "overlapping groups",
			mutate: func(d *Data) {
				d.RouteGroups = append(d.RouteGroups, RouteGroup{
					ID: "g2", Type: RouteTypeTravel, NameAr: "ب - أ",
					FromLocations: []string{"b"}, ToLocations: []string{"a", "c"},
					Pricing: map[VehicleCategory]Fare{VehicleSedan: {OneWay: 90, RoundTrip: 150}},
				})
			},
			wantMsg: `route groups "g1" and "g2" overlap on b -> a`,
		},
		{
			name: "min above max",
			mutate: func(d *Data) {
				d.Vehicles[0].MinPassengers = 5
			},
			wantMsg: "minPassengers 5 > maxPassengers 3",
		},
		{
			name: "unknown location in group",
			mutate: func(d *Data) {
				d.RouteGroups[0].ToLocations = append(d.RouteGroups[0].ToLocations, "zz")
			},
			wantMsg: `unknown location "zz"`,
		},
		{
			name: "fare for unknown vehicle",
			mutate: func(d *Data) {
				d.RouteGroups[0].Pricing[VehicleMinibus] = Fare{OneWay: 1, RoundTrip: 2}
			},
			wantMsg: `unknown vehicle "minibus"`,
		},
		{
			name: "duplicate location",
			mutate: func(d *Data) {
				d.Locations = append(d.Locations, Location{ID: "a", NameAr: "أ"})
			},
			wantMsg: `location "a" declared twice`,
		},
		{
			name: "bad holiday date",
			mutate: func(d *Data) {
				d.Holidays.Variable = []string{"2026-13-01"}
			},
			wantMsg: `holiday "2026-13-01"`,
		},
		{
			name: "discount on unknown route",
			mutate: func(d *Data) {
				d.Discounts = []DiscountRule{{ID: "x", Type: DiscountFixed, Value: 10, Conditions: DiscountConditions{SpecificRoutes: []string{"nope"}}}}
			},
			wantMsg: `unknown route "nope"`,
		},
		{
			name: "time slot with inverted hours",
			mutate: func(d *Data) {
				d.TimeSlots = []TimeSlot{{ID: "late", StartHour: 20, EndHour: 18, Multiplier: 1}}
			},
			wantMsg: "invalid hours [20, 18)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := minimalData()
			tt.mutate(&d)
			err := Validate(d)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantMsg)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	d := minimalData()
	d.Vehicles[0].MinPassengers = 9
	d.RouteGroups[0].Pricing[VehicleSedan] = Fare{OneWay: 0, RoundTrip: 0}

	err := Validate(d)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"minPassengers", "one-way fare must be positive"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %q", want, err.Error())
		}
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := MustNew(minimalData())

	groups := c.RouteGroups()
	groups[0].FromLocations[0] = "c"
	groups[0].Pricing[VehicleSedan] = Fare{OneWay: 1, RoundTrip: 1}

	again := c.RouteGroups()
	if again[0].FromLocations[0] != "a" {
		t.Errorf("group origins mutated through accessor: %v", again[0].FromLocations)
	}
	if again[0].Pricing[VehicleSedan].OneWay != 100 {
		t.Errorf("group fares mutated through accessor")
	}
}

func TestCalendar(t *testing.T) {
	c := Default()
	cairo := time.FixedZone("EET", 2*60*60)

	tests := []struct {
		name        string
		day         time.Time
		wantHoliday bool
		wantWeekend bool
	}{
		{"armed forces day", time.Date(2026, 10, 6, 0, 0, 0, 0, cairo), true, false},
		{"eid al-adha", time.Date(2026, 5, 27, 0, 0, 0, 0, cairo), true, false},
		{"friday", time.Date(2026, 10, 16, 0, 0, 0, 0, cairo), false, true},
		{"saturday", time.Date(2026, 10, 17, 0, 0, 0, 0, cairo), false, true},
		{"sunday", time.Date(2026, 10, 18, 0, 0, 0, 0, cairo), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsHoliday(tt.day); got != tt.wantHoliday {
				t.Errorf("IsHoliday() = %v, want %v", got, tt.wantHoliday)
			}
			if got := c.IsWeekend(tt.day); got != tt.wantWeekend {
				t.Errorf("IsWeekend() = %v, want %v", got, tt.wantWeekend)
			}
		})
	}
}
