// README: Arabic (Egypt) long-form dates and 12-hour clocks with Arabic-Indic digits.
package quote

import (
	"fmt"
	"strings"
	"time"
)

var (
	arabicWeekdays = [...]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}
	arabicMonths   = [...]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"}

	indicDigits = strings.NewReplacer(
		"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
		"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
	)
)

// ArabicDigits rewrites ASCII digits as Arabic-Indic digits.
func ArabicDigits(s string) string {
	return indicDigits.Replace(s)
}

// ArabicDate renders t as "الجمعة، ١٦ أكتوبر ٢٠٢٦".
func ArabicDate(t time.Time) string {
	return fmt.Sprintf("%s، %s %s %s",
		arabicWeekdays[t.Weekday()],
		ArabicDigits(fmt.Sprint(t.Day())),
		arabicMonths[t.Month()-1],
		ArabicDigits(fmt.Sprint(t.Year())),
	)
}

// ArabicClock renders t as a zero-padded 12-hour clock, "٠٧:٣٠ م".
func ArabicClock(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	marker := "ص"
	if t.Hour() >= 12 {
		marker = "م"
	}
	return ArabicDigits(fmt.Sprintf("%02d:%02d", h, t.Minute())) + " " + marker
}

func ArabicDateTime(t time.Time) string {
	return ArabicDate(t) + " - " + ArabicClock(t)
}
