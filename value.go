// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
)

// ValueKind identifies the active variant of a Value. The wire contract
// only defines tags 0 through 5.
type ValueKind int

// Value variants in canonical wire order
const (
	KindNone ValueKind = iota
	KindDouble
	KindString
	KindBool
	KindStruct
	KindArray
)

// Value is a small generic JSON-value algebra used for system variables.
// Kind names the active variant; the matching payload field carries it.
// The payload of a struct value is held through an owning pointer so the
// tree can nest without bound.
type Value struct {
	Kind        ValueKind
	DoubleValue float64
	StringValue string
	BoolValue   bool
	StructValue *Struct
	ArrayValue  []Value
}

// Struct is a mapping from field name to Value.
type Struct struct {
	Fields map[string]Value
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	wire := struct {
		ValueKind json.RawMessage `json:"valueKind,omitempty"`
		KindIndex ValueKind       `json:"kind_index"`
	}{KindIndex: v.Kind}
	var payload interface{}
	switch v.Kind {
	case KindNone:
		payload = nil
	case KindDouble:
		payload = v.DoubleValue
	case KindString:
		payload = v.StringValue
	case KindBool:
		payload = v.BoolValue
	case KindStruct:
		payload = v.StructValue
	case KindArray:
		arrayValue := v.ArrayValue
		if arrayValue == nil {
			arrayValue = []Value{}
		}
		payload = arrayValue
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		wire.ValueKind = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	*v = Value{}
	var index int
	if err = getOptional(obj, "kind_index", &index); err != nil {
		return err
	}
	v.Kind = ValueKind(index)
	switch v.Kind {
	case KindNone:
		return nil
	case KindDouble:
		return getOptional(obj, "valueKind", &v.DoubleValue)
	case KindString:
		return getOptional(obj, "valueKind", &v.StringValue)
	case KindBool:
		return getOptional(obj, "valueKind", &v.BoolValue)
	case KindStruct:
		return getOptional(obj, "valueKind", &v.StructValue)
	case KindArray:
		if err = getOptional(obj, "valueKind", &v.ArrayValue); err != nil {
			return err
		}
		if len(v.ArrayValue) == 0 {
			v.ArrayValue = nil
		}
		return nil
	}
	return &BigQueryError{
		Number:      ErrCodeUnknownValueKind,
		Message:     errMsgUnknownValueKind,
		MessageArgs: []interface{}{index},
	}
}

// MarshalJSON implements json.Marshaler
func (s Struct) MarshalJSON() ([]byte, error) {
	fields := s.Fields
	if fields == nil {
		fields = map[string]Value{}
	}
	return json.Marshal(fields)
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Struct) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &s.Fields); err != nil {
		return err
	}
	if len(s.Fields) == 0 {
		s.Fields = nil
	}
	return nil
}
