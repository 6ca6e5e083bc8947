package response

import (
	"encoding/json"
	"time"
)

// ErrResp is the error body returned to external callers.
type ErrResp struct {
	Error string `json:"error"`
}

// ISOTime is a timestamp that marshals as RFC3339 in UTC.
type ISOTime time.Time

// MarshalJSON implements json.Marshaler for ISOTime.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler for ISOTime.
func (t *ISOTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*t = ISOTime(parsed)
	return nil
}
