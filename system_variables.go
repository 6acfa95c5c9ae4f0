// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// SystemVariables pairs the declared types of system variables with their
// current values.
type SystemVariables struct {
	Types  map[string]StandardSqlDataType `json:"types,omitempty"`
	Values *Struct                        `json:"values,omitempty"`
}
