// README: Quote handler; prices a trip and returns the WhatsApp booking link.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
	"wasalny/internal/modules/quote"
	"wasalny/internal/types"
)

type QuoteHandler struct {
	pricing   *pricing.Service
	formatter *quote.Formatter
	currency  string
	loc       *time.Location
}

func NewQuoteHandler(svc *pricing.Service, settings catalog.Settings, loc *time.Location) *QuoteHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &QuoteHandler{
		pricing:   svc,
		formatter: quote.NewFormatter(settings),
		currency:  settings.Currency,
		loc:       loc,
	}
}

type quoteReq struct {
	From            string   `json:"from" binding:"required"`
	To              string   `json:"to" binding:"required"`
	VehicleCategory string   `json:"vehicleCategory" binding:"required"`
	PassengerCount  int      `json:"passengerCount" binding:"min=0"`
	TripDate        string   `json:"tripDate" binding:"required"`
	TripTime        string   `json:"tripTime" binding:"required"`
	IsRoundTrip     bool     `json:"isRoundTrip"`
	ReturnDate      string   `json:"returnDate"`
	ReturnTime      string   `json:"returnTime"`
	Services        []string `json:"services"`
	CustomerName    string   `json:"customerName"`
}

type quoteResp struct {
	Result         *pricing.Result `json:"result"`
	Total          types.Money     `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
	Message        string          `json:"message"`
	WhatsAppLink   string          `json:"whatsappLink"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	trip, err := h.tripDetails(req)
	if err != nil {
		writePricingError(c, err)
		return
	}
	res, err := h.pricing.Estimate(c.Request.Context(), trip)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quoteResp{
		Result:         res,
		Total:          types.NewMoney(res.Breakdown.Total, h.currency).Rounded(),
		FormattedTotal: h.formatter.Price(res.Breakdown.Total),
		Message:        h.formatter.Message(res, req.CustomerName),
		WhatsAppLink:   h.formatter.WhatsAppLink(res, req.CustomerName),
	})
}

func (h *QuoteHandler) tripDetails(req quoteReq) (pricing.TripDetails, error) {
	date, err := time.ParseInLocation(catalog.DateLayout, req.TripDate, h.loc)
	if err != nil {
		return pricing.TripDetails{}, pricing.ErrInvalidTime
	}
	trip := pricing.TripDetails{
		From:            req.From,
		To:              req.To,
		VehicleCategory: catalog.VehicleCategory(req.VehicleCategory),
		PassengerCount:  req.PassengerCount,
		TripDate:        date,
		TripTime:        req.TripTime,
		IsRoundTrip:     req.IsRoundTrip,
		Services:        req.Services,
	}
	if req.IsRoundTrip && req.ReturnDate != "" {
		ret, err := time.ParseInLocation(catalog.DateLayout, req.ReturnDate, h.loc)
		if err != nil {
			return pricing.TripDetails{}, pricing.ErrInvalidTime
		}
		trip.ReturnDate = &ret
		trip.ReturnTime = req.ReturnTime
	}
	return trip, nil
}
