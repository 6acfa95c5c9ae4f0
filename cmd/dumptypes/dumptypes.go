// Copyright (c) 2026 Google LLC. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log"

	gobigquery "github.com/googleapis/gobigquery"
)

// dumptypes renders a few representative wire documents and their debug
// formatting. It talks to no service and needs no credentials.
func main() {
	param := gobigquery.QueryParameter{
		Name: "point",
		ParameterType: gobigquery.QueryParameterType{
			Type: "STRUCT",
			StructTypes: []gobigquery.QueryParameterStructType{
				{Name: "x", Type: gobigquery.QueryParameterType{Type: "FLOAT64"}},
				{Name: "y", Type: gobigquery.QueryParameterType{Type: "FLOAT64"}},
			},
		},
		ParameterValue: gobigquery.QueryParameterValue{
			StructValues: map[string]gobigquery.QueryParameterValue{
				"x": {Value: "1.5"},
				"y": {Value: "-2.5"},
			},
		},
	}
	dataType := gobigquery.StandardSqlDataType{
		TypeKind: "ARRAY",
		SubType: gobigquery.StandardSqlArrayElement{
			Type: &gobigquery.StandardSqlDataType{TypeKind: "STRING"},
		},
	}
	value := gobigquery.Value{
		Kind: gobigquery.KindStruct,
		StructValue: &gobigquery.Struct{Fields: map[string]gobigquery.Value{
			"@@dataset_id": {Kind: gobigquery.KindString, StringValue: "prod"},
			"@@row_count":  {Kind: gobigquery.KindDouble, DoubleValue: 42},
		}},
	}

	opts := gobigquery.DefaultDebugFormatOptions()
	fmt.Println(param.DebugString(opts))
	fmt.Println(dataType.DebugString(opts))
	fmt.Println(value.DebugString(gobigquery.DebugFormatOptions{SingleLine: true}))

	for _, doc := range []interface{}{param, dataType, value} {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatalf("failed to marshal. err: %v", err)
		}
		fmt.Println(string(data))
	}
}
