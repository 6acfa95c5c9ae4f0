// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
	"strconv"
	"time"
)

// MillisTime is an absolute timestamp carried as integer milliseconds
// since the Unix epoch on the wire. Decoded values are normalized to UTC.
type MillisTime time.Time

// Time converts to a standard time.Time.
func (mt MillisTime) Time() time.Time {
	return time.Time(mt)
}

// MarshalJSON implements json.Marshaler
func (mt MillisTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(mt).UnixMilli())
}

// UnmarshalJSON implements json.Unmarshaler
func (mt *MillisTime) UnmarshalJSON(data []byte) error {
	millis, err := parseWireMillis(data)
	if err != nil {
		return err
	}
	*mt = MillisTime(time.UnixMilli(millis).UTC())
	return nil
}

// MillisDuration is a duration carried as integer milliseconds on the wire.
type MillisDuration time.Duration

// Duration converts to a standard time.Duration.
func (md MillisDuration) Duration() time.Duration {
	return time.Duration(md)
}

// MarshalJSON implements json.Marshaler
func (md MillisDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(md).Milliseconds())
}

// UnmarshalJSON implements json.Unmarshaler
func (md *MillisDuration) UnmarshalJSON(data []byte) error {
	millis, err := parseWireMillis(data)
	if err != nil {
		return err
	}
	*md = MillisDuration(time.Duration(millis) * time.Millisecond)
	return nil
}

// parseWireMillis accepts the number form as well as the string form used
// by fields covered by the string-encoded integer quirk.
func parseWireMillis(data []byte) (int64, error) {
	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		var s string
		if err2 := json.Unmarshal(data, &s); err2 != nil {
			return 0, err
		}
		return strconv.ParseInt(s, 10, 64)
	}
	return millis, nil
}
