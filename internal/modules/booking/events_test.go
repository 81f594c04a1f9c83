package booking

import (
	"encoding/json"
	"errors"
	"testing"

	"wasalny/internal/modules/catalog"
)

func TestWireEventDecode(t *testing.T) {
	tests := []struct {
		in      string
		want    Event
		wantErr bool
	}{
		{`{"type":"setFrom","value":"ras-elbar"}`, SetFrom{ID: "ras-elbar"}, false},
		{`{"type":"setRouteType","value":"internal"}`, SetRouteType{RouteType: catalog.RouteTypeInternal}, false},
		{`{"type":"setPassengers","value":5}`, SetPassengers{Count: 5}, false},
		{`{"type":"setRoundTrip","value":true}`, SetRoundTrip{On: true}, false},
		{`{"type":"toggleService","value":"child-seat"}`, ToggleService{ID: "child-seat"}, false},
		{`{"type":"setPassengers","value":"5"}`, nil, true},
		{`{"type":"setTo"}`, nil, true},
	}
	for _, tt := range tests {
		var w WireEvent
		if err := json.Unmarshal([]byte(tt.in), &w); err != nil {
			t.Fatal(err)
		}
		got, err := w.Decode()
		if (err != nil) != tt.wantErr {
			t.Errorf("Decode(%s) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%s) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	if _, err := (WireEvent{Type: "launch", Value: json.RawMessage(`1`)}).Decode(); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("unknown type error = %v", err)
	}
}
