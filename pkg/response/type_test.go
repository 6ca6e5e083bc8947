package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"nextplay-automation/pkg/response"
)

func TestISOTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	it := response.ISOTime(tm)

	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("unexpected error marshaling ISOTime: %v", err)
	}

	if string(b) != `"2026-05-01T15:30:00Z"` {
		t.Errorf("unexpected RFC3339 output: %s", string(b))
	}
}

func TestISOTimeRoundTrip(t *testing.T) {
	original := response.ISOTime(time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var decoded response.ISOTime
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if !time.Time(decoded).Equal(time.Time(original)) {
		t.Errorf("round trip mismatch: got %v, want %v", time.Time(decoded), time.Time(original))
	}
}

func TestISOTimeUnmarshalInvalid(t *testing.T) {
	var decoded response.ISOTime
	if err := json.Unmarshal([]byte(`"not-a-time"`), &decoded); err == nil {
		t.Errorf("expected parse error for invalid timestamp")
	}
}
