// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
)

// wire discriminator values for StandardSqlDataType.SubType
const (
	subTypeIndexArray  = 1
	subTypeIndexStruct = 2
)

// StandardSqlSubType is the active payload of a StandardSqlDataType. It is
// a sealed union: either StandardSqlArrayElement, StandardSqlStructType or
// nil for a scalar type.
type StandardSqlSubType interface {
	subTypeIndex() int
}

// StandardSqlArrayElement is the ARRAY payload: the element type, owned
// through a pointer so type trees can nest without bound.
type StandardSqlArrayElement struct {
	Type *StandardSqlDataType
}

func (StandardSqlArrayElement) subTypeIndex() int { return subTypeIndexArray }

// StandardSqlStructType is the STRUCT payload: an ordered field list.
type StandardSqlStructType struct {
	Fields []StandardSqlField
}

func (StandardSqlStructType) subTypeIndex() int { return subTypeIndexStruct }

// StandardSqlField is a single named, typed field of a STRUCT type.
type StandardSqlField struct {
	Name string
	Type *StandardSqlDataType
}

// StandardSqlDataType is the type of a Standard SQL value. TypeKind always
// carries the nominal name (INT64, ARRAY, STRUCT, ...); SubType carries the
// active union payload. The wire document stores an integer discriminator
// under sub_type_index so a round trip can tell a scalar from a STRUCT
// whose payload happens to be empty.
type StandardSqlDataType struct {
	TypeKind string
	SubType  StandardSqlSubType
}

// MarshalJSON implements json.Marshaler
func (t StandardSqlDataType) MarshalJSON() ([]byte, error) {
	wire := struct {
		TypeKind         string                 `json:"typeKind,omitempty"`
		ArrayElementType *StandardSqlDataType   `json:"arrayElementType,omitempty"`
		StructType       *StandardSqlStructType `json:"structType,omitempty"`
		SubTypeIndex     int                    `json:"sub_type_index,omitempty"`
	}{TypeKind: t.TypeKind}
	switch sub := t.SubType.(type) {
	case StandardSqlArrayElement:
		wire.ArrayElementType = sub.Type
		wire.SubTypeIndex = subTypeIndexArray
	case StandardSqlStructType:
		wire.StructType = &sub
		wire.SubTypeIndex = subTypeIndexStruct
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *StandardSqlDataType) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "typeKind", &t.TypeKind); err != nil {
		return err
	}
	var index int
	if err = getOptional(obj, "sub_type_index", &index); err != nil {
		return err
	}
	// an unrecognized index leaves the payload unset, same as a scalar
	t.SubType = nil
	switch index {
	case subTypeIndexArray:
		var elem StandardSqlArrayElement
		if err = getOptional(obj, "arrayElementType", &elem.Type); err != nil {
			return err
		}
		t.SubType = elem
	case subTypeIndexStruct:
		var st StandardSqlStructType
		if err = getOptional(obj, "structType", &st); err != nil {
			return err
		}
		t.SubType = st
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (st StandardSqlStructType) MarshalJSON() ([]byte, error) {
	fields := st.Fields
	if fields == nil {
		fields = []StandardSqlField{}
	}
	return json.Marshal(struct {
		Fields []StandardSqlField `json:"fields"`
	}{fields})
}

// UnmarshalJSON implements json.Unmarshaler
func (st *StandardSqlStructType) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "fields", &st.Fields); err != nil {
		return err
	}
	if len(st.Fields) == 0 {
		st.Fields = nil
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (f StandardSqlField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string               `json:"name,omitempty"`
		Type *StandardSqlDataType `json:"type,omitempty"`
	}{f.Name, f.Type})
}

// UnmarshalJSON implements json.Unmarshaler
func (f *StandardSqlField) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "name", &f.Name); err != nil {
		return err
	}
	return getOptional(obj, "type", &f.Type)
}
