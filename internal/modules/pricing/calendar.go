// README: Trip clock helpers: HH:MM parsing, date/time composition, time-slot and day-type selection.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wasalny/internal/modules/catalog"
)

// ParseClock reads "HH:MM" (a single-digit hour is accepted).
func ParseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 {
		return 0, 0, fmt.Errorf("clock %q: %w", s, ErrInvalidTime)
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("clock %q: %w", s, ErrInvalidTime)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q: %w", s, ErrInvalidTime)
	}
	return hour, minute, nil
}

// Combine merges the calendar date of date with an HH:MM clock in loc.
func Combine(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, h, m, 0, 0, loc), nil
}

// timeSlotFor picks the slot covering hour, falling back to the first slot.
func timeSlotFor(slots []catalog.TimeSlot, hour int) catalog.TimeSlot {
	for _, s := range slots {
		if hour >= s.StartHour && hour < s.EndHour {
			return s
		}
	}
	return slots[0]
}

// dayTypeFor classifies t: holiday beats weekend beats weekday.
func dayTypeFor(cat *catalog.Catalog, t time.Time) catalog.DayType {
	id := catalog.DayWeekday
	switch {
	case cat.IsHoliday(t):
		id = catalog.DayHoliday
	case cat.IsWeekend(t):
		id = catalog.DayWeekend
	}
	dt, _ := cat.DayType(id)
	return dt
}
