// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
)

// QueryParameterType is the declared type of a query parameter. The type
// tree nests without bound: an ARRAY type carries its element type in
// ArrayType and a STRUCT type carries one nested type per field in
// StructTypes. Presence of the optional sub-structure is itself the
// discriminator; there is no separate tag on this family.
type QueryParameterType struct {
	Type        string
	ArrayType   *QueryParameterType
	StructTypes []QueryParameterStructType
}

// QueryParameterStructType names a single field of a STRUCT query
// parameter type.
type QueryParameterStructType struct {
	Name        string
	Type        QueryParameterType
	Description string
}

// QueryParameterValue is the value counterpart of QueryParameterType.
// Scalars travel string-encoded; arrays and structs nest recursively.
// The three members are not mutually exclusive in memory - which of them
// is meaningful is decided by the paired QueryParameterType, and the
// codec does not enforce that pairing.
type QueryParameterValue struct {
	Value        string
	ArrayValues  []QueryParameterValue
	StructValues map[string]QueryParameterValue
}

// QueryParameter pairs a parameter name with its declared type and value.
type QueryParameter struct {
	Name           string
	ParameterType  QueryParameterType
	ParameterValue QueryParameterValue
}

// MarshalJSON implements json.Marshaler
func (qpt QueryParameterType) MarshalJSON() ([]byte, error) {
	structTypes := qpt.StructTypes
	if structTypes == nil {
		structTypes = []QueryParameterStructType{}
	}
	return json.Marshal(struct {
		Type        string                     `json:"type"`
		ArrayType   *QueryParameterType        `json:"arrayType,omitempty"`
		StructTypes []QueryParameterStructType `json:"structTypes"`
	}{qpt.Type, qpt.ArrayType, structTypes})
}

// UnmarshalJSON implements json.Unmarshaler
func (qpt *QueryParameterType) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "type", &qpt.Type); err != nil {
		return err
	}
	if err = getOptional(obj, "arrayType", &qpt.ArrayType); err != nil {
		return err
	}
	if err = getOptional(obj, "structTypes", &qpt.StructTypes); err != nil {
		return err
	}
	// an empty field list carries no information, normalize it away so a
	// round trip reproduces the input exactly
	if len(qpt.StructTypes) == 0 {
		qpt.StructTypes = nil
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (qpst QueryParameterStructType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string             `json:"name,omitempty"`
		Type        QueryParameterType `json:"type"`
		Description string             `json:"description,omitempty"`
	}{qpst.Name, qpst.Type, qpst.Description})
}

// UnmarshalJSON implements json.Unmarshaler
func (qpst *QueryParameterStructType) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "name", &qpst.Name); err != nil {
		return err
	}
	if err = getOptional(obj, "type", &qpst.Type); err != nil {
		return err
	}
	return getOptional(obj, "description", &qpst.Description)
}

// MarshalJSON implements json.Marshaler
func (qpv QueryParameterValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value        string                         `json:"value,omitempty"`
		ArrayValues  []QueryParameterValue          `json:"arrayValues,omitempty"`
		StructValues map[string]QueryParameterValue `json:"structValues,omitempty"`
	}{qpv.Value, qpv.ArrayValues, qpv.StructValues})
}

// UnmarshalJSON implements json.Unmarshaler
func (qpv *QueryParameterValue) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "value", &qpv.Value); err != nil {
		return err
	}
	if err = getOptional(obj, "arrayValues", &qpv.ArrayValues); err != nil {
		return err
	}
	return getOptional(obj, "structValues", &qpv.StructValues)
}

// MarshalJSON implements json.Marshaler
func (qp QueryParameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name           string              `json:"name,omitempty"`
		ParameterType  QueryParameterType  `json:"parameterType"`
		ParameterValue QueryParameterValue `json:"parameterValue"`
	}{qp.Name, qp.ParameterType, qp.ParameterValue})
}

// UnmarshalJSON implements json.Unmarshaler
func (qp *QueryParameter) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data)
	if err != nil {
		return err
	}
	if err = getOptional(obj, "name", &qp.Name); err != nil {
		return err
	}
	if err = getOptional(obj, "parameterType", &qp.ParameterType); err != nil {
		return err
	}
	return getOptional(obj, "parameterValue", &qp.ParameterValue)
}
