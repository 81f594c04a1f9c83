// README: Booking session handlers; rehydrate a session and apply form events.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wasalny/internal/modules/booking"
	"wasalny/internal/types"
)

type BookingHandler struct {
	deps booking.Deps
}

func NewBookingHandler(deps booking.Deps) *BookingHandler {
	return &BookingHandler{deps: deps}
}

type sessionResp struct {
	SessionID types.ID         `json:"sessionId"`
	State     booking.State    `json:"state"`
	Computed  booking.Computed `json:"computed"`
}

type eventReq struct {
	// State is the client's current form. When absent the session's saved
	// selection is restored first.
	State *booking.State     `json:"state"`
	Event *booking.WireEvent `json:"event"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	h.respond(c, http.StatusCreated, types.NewID(), nil)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := types.ParseID(c.Param("id"))
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	h.respond(c, http.StatusOK, id, nil)
}

func (h *BookingHandler) Dispatch(c *gin.Context) {
	id, ok := types.ParseID(c.Param("id"))
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Event == nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	ev, err := req.Event.Decode()
	if err != nil {
		if errors.Is(err, booking.ErrUnknownEvent) {
			writeError(c, http.StatusBadRequest, "unknown event type")
			return
		}
		writeError(c, http.StatusBadRequest, "invalid event value")
		return
	}
	h.respond(c, http.StatusOK, id, func(ctrl *booking.Controller) {
		if req.State != nil {
			ctrl.Replace(*req.State)
		} else {
			ctrl.Restore(c.Request.Context())
		}
		ctrl.Dispatch(c.Request.Context(), ev)
	})
}

// respond runs apply (or a plain restore) on a fresh controller for the
// session and writes the resulting state.
func (h *BookingHandler) respond(c *gin.Context, status int, id types.ID, apply func(*booking.Controller)) {
	deps := h.deps
	deps.Logger = getLogger(c)
	ctrl := booking.NewController(deps, string(id))
	if apply == nil {
		ctrl.Restore(c.Request.Context())
	} else {
		apply(ctrl)
	}
	writeJSON(c, status, sessionResp{
		SessionID: id,
		State:     ctrl.State(),
		Computed:  ctrl.Computed(),
	})
}
