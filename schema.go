// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// FieldType is the type of a table schema field.
type FieldType string

const (
	// StringFieldType is a string field type.
	StringFieldType FieldType = "STRING"
	// BytesFieldType is a bytes field type.
	BytesFieldType FieldType = "BYTES"
	// IntegerFieldType is an integer field type.
	IntegerFieldType FieldType = "INTEGER"
	// FloatFieldType is a float field type.
	FloatFieldType FieldType = "FLOAT"
	// BooleanFieldType is a boolean field type.
	BooleanFieldType FieldType = "BOOLEAN"
	// TimestampFieldType is a timestamp field type.
	TimestampFieldType FieldType = "TIMESTAMP"
	// RecordFieldType is a record field type, used for repeated or nested data.
	RecordFieldType FieldType = "RECORD"
	// DateFieldType is a date field type.
	DateFieldType FieldType = "DATE"
	// TimeFieldType is a time field type.
	TimeFieldType FieldType = "TIME"
	// DateTimeFieldType is a datetime field type.
	DateTimeFieldType FieldType = "DATETIME"
	// NumericFieldType is a numeric field type.
	NumericFieldType FieldType = "NUMERIC"
	// BigNumericFieldType is a numeric field type with larger precision and scale.
	BigNumericFieldType FieldType = "BIGNUMERIC"
	// GeographyFieldType is a geography field type.
	GeographyFieldType FieldType = "GEOGRAPHY"
	// IntervalFieldType is a representation of a duration or an amount of time.
	IntervalFieldType FieldType = "INTERVAL"
	// JSONFieldType is a representation of a json object.
	JSONFieldType FieldType = "JSON"
	// RangeFieldType represents a continuous range of values.
	RangeFieldType FieldType = "RANGE"
)

// FieldMode is the mode of a table schema field.
type FieldMode string

const (
	// ModeNullable marks the field as nullable.
	ModeNullable FieldMode = "NULLABLE"
	// ModeRequired marks the field as required.
	ModeRequired FieldMode = "REQUIRED"
	// ModeRepeated marks the field as an array.
	ModeRepeated FieldMode = "REPEATED"
)

// TableSchema describes the schema of a table or of query results.
type TableSchema struct {
	Fields []TableFieldSchema `json:"fields,omitempty"`
}

// TableFieldSchema describes a single field. RECORD fields nest their
// sub-fields recursively in Fields.
type TableFieldSchema struct {
	Name                   string             `json:"name,omitempty"`
	Type                   FieldType          `json:"type,omitempty"`
	Mode                   FieldMode          `json:"mode,omitempty"`
	Description            string             `json:"description,omitempty"`
	Fields                 []TableFieldSchema `json:"fields,omitempty"`
	MaxLength              Int64String        `json:"maxLength,omitempty"`
	Precision              Int64String        `json:"precision,omitempty"`
	Scale                  Int64String        `json:"scale,omitempty"`
	Collation              string             `json:"collation,omitempty"`
	DefaultValueExpression string             `json:"defaultValueExpression,omitempty"`
}
