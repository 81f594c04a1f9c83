// README: Pricing failures. Messages are the Arabic text shown to customers.
package pricing

import "errors"

var (
	ErrRouteNotFound  = errors.New("لا يوجد مسار متاح بين هذه المواقع")
	ErrUnknownVehicle = errors.New("فئة السيارة غير معروفة")
	ErrMissingFare    = errors.New("لا توجد تسعيرة لهذه السيارة على هذا المسار")
	ErrInvalidTime    = errors.New("صيغة الوقت غير صحيحة")

	ErrUnknownStrategy = errors.New("unknown pricing strategy")
)

const fallbackMessage = "تعذر حساب السعر"

// Message returns the customer-facing text for a calculation error.
func Message(err error) string {
	for _, known := range []error{ErrRouteNotFound, ErrUnknownVehicle, ErrMissingFare, ErrInvalidTime} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallbackMessage
}
