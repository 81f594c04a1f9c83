// README: Submission-blocking validation of a form state (distinct from pricing warnings).
package booking

import (
	"fmt"
	"time"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

const (
	errMissingFrom      = "يرجى اختيار مكان الانطلاق"
	errMissingTo        = "يرجى اختيار الوجهة"
	errTooSoon          = "يجب الحجز قبل %d ساعة على الأقل"
	errTooFar           = "لا يمكن الحجز لأكثر من %d يوم مقدماً"
	errMissingReturn    = "يرجى تحديد موعد العودة"
	errReturnBeforeTrip = "موعد العودة لا يمكن أن يكون قبل موعد الذهاب"
	errReturnTooClose   = "يجب أن يكون الفرق بين الذهاب والعودة %d ساعة على الأقل"
)

// Validate lists every problem that blocks submission, in form order.
func Validate(env Env, s State) []string {
	settings := env.Catalog.Settings()
	errs := []string{}

	switch {
	case s.From == "":
		errs = append(errs, errMissingFrom)
	case s.To == "":
		errs = append(errs, errMissingTo)
	}

	tripDate, err := time.ParseInLocation(catalog.DateLayout, s.TripDate, env.location())
	if err != nil {
		return append(errs, pricing.ErrInvalidTime.Error())
	}
	tripAt, err := pricing.Combine(tripDate, s.TripTime, env.location())
	if err != nil {
		return append(errs, pricing.ErrInvalidTime.Error())
	}
	now := env.now()
	if tripAt.Before(now.Add(time.Duration(settings.MinimumBookingHours) * time.Hour)) {
		errs = append(errs, fmt.Sprintf(errTooSoon, settings.MinimumBookingHours))
	} else if tripAt.After(now.Add(time.Duration(settings.MaxAdvanceBookingDays) * 24 * time.Hour)) {
		errs = append(errs, fmt.Sprintf(errTooFar, settings.MaxAdvanceBookingDays))
	}

	if !s.IsRoundTrip || !env.Strategy.PricesReturnLeg() {
		return errs
	}
	switch {
	case s.ReturnDate == "":
		errs = append(errs, errMissingReturn)
	case s.ReturnDate < s.TripDate:
		errs = append(errs, errReturnBeforeTrip)
	case s.ReturnDate == s.TripDate && validClock(s.ReturnTime):
		if minutes(s.ReturnTime) <= minutes(s.TripTime)+settings.RoundTripReturnMinHours*60 {
			errs = append(errs, fmt.Sprintf(errReturnTooClose, settings.RoundTripReturnMinHours))
		}
	}
	return errs
}
