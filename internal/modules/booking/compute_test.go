package booking

import (
	"strings"
	"testing"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
	"wasalny/internal/modules/quote"
)

func TestCompute(t *testing.T) {
	t.Run("priced and valid", func(t *testing.T) {
		env := testEnv(t, pricing.StrategyFixed)
		s := Reduce(env, DefaultState(env), SetTo{ID: "cairo-downtown"})
		c := Compute(env, s)
		if c.Result == nil || c.Result.Breakdown.Total != 1600 {
			t.Fatalf("result = %+v, error %q", c.Result, c.CalculationError)
		}
		if !c.IsValid || c.FormattedTotal != "1600 جنيه" || c.RouteType != catalog.RouteTypeTravel {
			t.Errorf("computed = %+v", c)
		}
		if !strings.HasPrefix(c.WhatsAppLink, "https://wa.me/201090400030?text=") {
			t.Errorf("link = %q", c.WhatsAppLink)
		}
		if len(c.AvailableDestinations) != 17 || len(c.AvailableOrigins) != 20 {
			t.Errorf("availability = %d origins, %d destinations", len(c.AvailableOrigins), len(c.AvailableDestinations))
		}
	})

	t.Run("no destination means no result", func(t *testing.T) {
		env := testEnv(t, pricing.StrategyFixed)
		c := Compute(env, DefaultState(env))
		if c.Result != nil || c.IsValid || c.WhatsAppLink != "" || c.CalculationError != "" {
			t.Errorf("computed = %+v", c)
		}
	})

	t.Run("calculation failure is reported, not priced", func(t *testing.T) {
		env := testEnv(t, pricing.StrategyFixed)
		s := Reduce(env, DefaultState(env), SetTo{ID: "cairo-downtown"})
		s.VehicleCategory = "limo"
		c := Compute(env, s)
		if c.Result != nil || c.IsValid || c.CalculationError != "فئة السيارة غير معروفة" {
			t.Errorf("computed = %+v", c)
		}
	})

	t.Run("fixed round trip leaves the return schedule out of the message", func(t *testing.T) {
		env := testEnv(t, pricing.StrategyFixed)
		s := reduceAll(env, DefaultState(env), SetTo{ID: "cairo-downtown"}, SetRoundTrip{On: true})
		if s.ReturnTime != s.TripTime {
			t.Fatalf("return time defaulted to %q", s.ReturnTime)
		}
		c := Compute(env, s)
		if c.Result == nil || c.Result.Breakdown.Total != 2600 || c.Result.Details.ReturnDateTime != nil {
			t.Fatalf("result = %+v, error %q", c.Result, c.CalculationError)
		}
		msg := quote.NewFormatter(env.Catalog.Settings()).Message(c.Result, "")
		if strings.Contains(msg, "موعد العودة") {
			t.Errorf("message shows a return time:\n%s", msg)
		}

		s.ReturnTime = "99:99"
		if c := Compute(env, s); c.Result == nil || c.CalculationError != "" {
			t.Errorf("malformed return time failed the quote: %q", c.CalculationError)
		}
	})

	t.Run("dynamic round trip prices both legs", func(t *testing.T) {
		env := testEnv(t, pricing.StrategyDynamic)
		s := reduceAll(env, DefaultState(env),
			SetTo{ID: "cairo-downtown"},
			SetTripDate{Date: "2026-10-19"},
			SetRoundTrip{On: true},
			SetReturnTime{Time: "20:00"},
		)
		c := Compute(env, s)
		if c.Result == nil || c.Result.Breakdown.Return == nil {
			t.Fatalf("result = %+v, error %q", c.Result, c.CalculationError)
		}
		if !c.IsValid {
			t.Errorf("validation errors = %v", c.ValidationErrors)
		}
	})
}
