package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the layout used by the issues API and for display.
const TimestampLayout = "2006/01/02 15:04:05 -0700"

// Timestamp is a point in time as reported by the issues API.
// The zero value represents an absent timestamp and prints as an empty string.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses the API layout, falling back to RFC 3339.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

// Equal reports whether both timestamps denote the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// String formats the timestamp in the API layout.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// UnmarshalJSON accepts a string in either supported layout, or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the timestamp in the API layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}
