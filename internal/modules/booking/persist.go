// README: Remembered form selections; encoding, tolerant decoding and the store contract.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"wasalny/internal/modules/catalog"
)

const DefaultPersistKey = "wasalny_pricing_v1"

var ErrNoSelection = errors.New("no saved selection")

// Selection is the subset of State worth remembering. Dates are not kept.
type Selection struct {
	RouteType       catalog.RouteType       `json:"routeType,omitempty"`
	FromLocation    string                  `json:"fromLocation"`
	ToLocation      string                  `json:"toLocation"`
	VehicleCategory catalog.VehicleCategory `json:"vehicleCategory"`
	PassengerCount  int                     `json:"passengerCount"`
	IsRoundTrip     bool                    `json:"isRoundTrip"`
}

func SelectionOf(s State) Selection {
	return Selection{
		RouteType:       s.RouteType,
		FromLocation:    s.From,
		ToLocation:      s.To,
		VehicleCategory: s.VehicleCategory,
		PassengerCount:  s.PassengerCount,
		IsRoundTrip:     s.IsRoundTrip,
	}
}

// SelectionEvents decodes a saved selection field by field. Bad JSON yields
// no events; a bad field is skipped without discarding the others. The
// events are ordered so that replaying them through Reduce rebuilds the
// selection.
func SelectionEvents(raw []byte) []Event {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	events := make([]Event, 0, 6)
	str := func(key string) (string, bool) {
		var v string
		if err := json.Unmarshal(fields[key], &v); err != nil || v == "" {
			return "", false
		}
		return v, true
	}

	if v, ok := str("routeType"); ok {
		events = append(events, SetRouteType{RouteType: catalog.RouteType(v)})
	}
	if v, ok := str("fromLocation"); ok {
		events = append(events, SetFrom{ID: v})
	}
	if v, ok := str("toLocation"); ok {
		events = append(events, SetTo{ID: v})
	}
	if v, ok := str("vehicleCategory"); ok {
		events = append(events, SetVehicle{Category: catalog.VehicleCategory(v)})
	}
	var count int
	if err := json.Unmarshal(fields["passengerCount"], &count); err == nil && count > 0 {
		events = append(events, SetPassengers{Count: count})
	}
	var roundTrip bool
	if err := json.Unmarshal(fields["isRoundTrip"], &roundTrip); err == nil {
		events = append(events, SetRoundTrip{On: roundTrip})
	}
	return events
}

// SelectionStore keeps one raw selection per session. Writes are
// last-writer-wins.
type SelectionStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, raw []byte) error
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[sessionID]
	if !ok {
		return nil, ErrNoSelection
	}
	return append([]byte(nil), raw...), nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sessionID] = append([]byte(nil), raw...)
	return nil
}
