// README: Quote formatter; price strings and the WhatsApp booking message and link.
package quote

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

const DefaultCurrencyAr = "جنيه"

// FormatPrice rounds to whole pounds: "1600 جنيه".
func FormatPrice(amount float64) string {
	return formatPrice(amount, DefaultCurrencyAr)
}

func formatPrice(amount float64, currency string) string {
	return fmt.Sprintf("%d %s", int64(math.Round(amount)), currency)
}

type Formatter struct {
	currencyAr string
	whatsApp   string
}

func NewFormatter(s catalog.Settings) *Formatter {
	currency := s.CurrencyAr
	if currency == "" {
		currency = DefaultCurrencyAr
	}
	return &Formatter{currencyAr: currency, whatsApp: s.WhatsAppNumber}
}

func (f *Formatter) Price(amount float64) string {
	return formatPrice(amount, f.currencyAr)
}

// Message renders the plain booking request. customerName may be empty.
func (f *Formatter) Message(res *pricing.Result, customerName string) string {
	d, b := res.Details, res.Breakdown

	var sb strings.Builder
	sb.WriteString("🚗 *طلب حجز جديد - وصلني*\n\n")
	if customerName != "" {
		fmt.Fprintf(&sb, "👤 *الاسم:* %s\n", customerName)
	}
	fmt.Fprintf(&sb, "📍 *المسار:* %s\n", d.RouteNameAr)
	fmt.Fprintf(&sb, "🚙 *نوع السيارة:* %s\n", d.VehicleCategoryAr)
	fmt.Fprintf(&sb, "👥 *عدد الركاب:* %d\n", d.PassengerCount)
	tripType := "ذهاب فقط"
	if d.IsRoundTrip {
		tripType = "ذهاب وعودة"
	}
	fmt.Fprintf(&sb, "🔁 *نوع الرحلة:* %s\n", tripType)
	fmt.Fprintf(&sb, "📅 *موعد الذهاب:* %s\n", ArabicDateTime(d.TripDateTime))
	if d.IsRoundTrip && d.ReturnDateTime != nil {
		fmt.Fprintf(&sb, "🔄 *موعد العودة:* %s\n", ArabicDateTime(*d.ReturnDateTime))
	}

	if len(d.Services) > 0 {
		sb.WriteString("\n✨ *خدمات إضافية:*\n")
		for _, s := range d.Services {
			fmt.Fprintf(&sb, "   • %s\n", s.NameAr)
		}
	}

	fmt.Fprintf(&sb, "\n💰 *السعر الإجمالي:* %s\n", f.Price(b.Total))
	if len(b.Discounts) > 0 {
		sb.WriteString("🎁 *الخصومات المطبقة:*\n")
		for _, disc := range b.Discounts {
			fmt.Fprintf(&sb, "   • %s: -%s\n", disc.NameAr, f.Price(disc.Amount))
		}
	}
	sb.WriteString("\nيرجى تأكيد الحجز 🙏")
	return sb.String()
}

// WhatsAppMessage is Message percent-encoded for a URL query value.
func (f *Formatter) WhatsAppMessage(res *pricing.Result, customerName string) string {
	return Encode(f.Message(res, customerName))
}

// WhatsAppLink returns the wa.me deep link, or "" without a result.
func (f *Formatter) WhatsAppLink(res *pricing.Result, customerName string) string {
	if res == nil {
		return ""
	}
	return "https://wa.me/" + f.whatsApp + "?text=" + f.WhatsAppMessage(res, customerName)
}

// componentUnescape restores the characters encodeURIComponent leaves
// literal but url.QueryEscape escapes.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Encode percent-encodes s the way browsers encode a URI component:
// spaces become %20, newlines %0A, and !'()* stay literal.
func Encode(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
