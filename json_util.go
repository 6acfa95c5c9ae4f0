// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonObject is a parsed JSON object whose values are left raw so that
// every key can be tested for presence before it is extracted. Every
// field in the BigQuery v2 wire format is nominally optional, so all
// decoding goes through this representation.
type jsonObject map[string]json.RawMessage

func parseObject(data []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &BigQueryError{
			Number:      ErrCodeMalformedPayload,
			Message:     errMsgMalformedPayload,
			MessageArgs: []interface{}{err},
		}
	}
	return obj, nil
}

// getOptional extracts key into dst if the key is present. A missing key
// leaves dst untouched and returns nil; a present key whose JSON shape does
// not match T returns the underlying decode error.
func getOptional[T any](obj jsonObject, key string, dst *T) error {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding key %v failed: %w", key, err)
	}
	return nil
}

// Int64String is an int64 that travels as a JSON string on the wire.
// BigQuery string-encodes byte counts, row counts and stage ids even
// though the values are numeric.
type Int64String int64

// MarshalJSON implements json.Marshaler
func (i Int64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

// UnmarshalJSON implements json.Unmarshaler
func (i *Int64String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// some emulators send bare numbers
		var n int64
		if err2 := json.Unmarshal(data, &n); err2 != nil {
			return err
		}
		*i = Int64String(n)
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*i = Int64String(v)
	return nil
}

// Uint64String is a uint64 that travels as a JSON string on the wire.
type Uint64String uint64

// MarshalJSON implements json.Marshaler
func (u Uint64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

// UnmarshalJSON implements json.Unmarshaler
func (u *Uint64String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n uint64
		if err2 := json.Unmarshal(data, &n); err2 != nil {
			return err
		}
		*u = Uint64String(n)
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*u = Uint64String(v)
	return nil
}
