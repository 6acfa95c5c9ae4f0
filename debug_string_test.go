package gobigquery

import (
	"strings"
	"testing"
)

func TestDebugStringSingleLine(t *testing.T) {
	qpt := QueryParameterType{Type: "ARRAY", ArrayType: &QueryParameterType{Type: "INT64"}}
	out := qpt.DebugString(DebugFormatOptions{SingleLine: true})
	assertEqualE(t, out, `QueryParameterType { type: "ARRAY" array_type { type: "INT64" } }`)
	assertFalseE(t, strings.Contains(out, "\n"))
}

func TestDebugStringMultiLine(t *testing.T) {
	qpt := QueryParameterType{Type: "ARRAY", ArrayType: &QueryParameterType{Type: "INT64"}}
	out := qpt.DebugString(DefaultDebugFormatOptions())
	expected := "QueryParameterType {\n" +
		"  type: \"ARRAY\"\n" +
		"  array_type {\n" +
		"    type: \"INT64\"\n" +
		"  }\n" +
		"}"
	assertEqualE(t, out, expected)
}

func TestDebugStringCustomIndent(t *testing.T) {
	v := Value{Kind: KindBool, BoolValue: true}
	out := v.DebugString(DebugFormatOptions{Indent: 4})
	assertEqualE(t, out, "Value {\n    kind_index: 3\n    bool_value: true\n}")
}

func TestDebugStringTruncation(t *testing.T) {
	v := Value{Kind: KindString, StringValue: strings.Repeat("x", 64)}
	out := v.DebugString(DebugFormatOptions{SingleLine: true, TruncateStringsAt: 8})
	assertStringContainsE(t, out, `"xxxxxxxx...<truncated>..."`)
	assertFalseE(t, strings.Contains(out, strings.Repeat("x", 9)))

	// zero means no truncation
	out = v.DebugString(DebugFormatOptions{SingleLine: true})
	assertStringContainsE(t, out, strings.Repeat("x", 64))
}

func TestDebugStringStructFieldsSorted(t *testing.T) {
	v := Value{Kind: KindStruct, StructValue: &Struct{Fields: map[string]Value{
		"b": {Kind: KindString, StringValue: "2"},
		"a": {Kind: KindString, StringValue: "1"},
		"c": {Kind: KindString, StringValue: "3"},
	}}}
	out := v.DebugString(DebugFormatOptions{SingleLine: true})
	// deterministic output regardless of map iteration order
	ia := strings.Index(out, `name: "a"`)
	ib := strings.Index(out, `name: "b"`)
	ic := strings.Index(out, `name: "c"`)
	assertTrueE(t, ia >= 0 && ia < ib && ib < ic, out)
}

func TestDebugStringJob(t *testing.T) {
	job := Job{
		Kind:         "bigquery#job",
		Etag:         "e",
		ID:           "p:j",
		JobReference: &JobReference{ProjectID: "p", JobID: "j", Location: "US"},
		Status:       &JobStatus{State: JobStateDone},
	}
	out := job.DebugString(DebugFormatOptions{SingleLine: true})
	assertHasPrefixE(t, out, "Job {")
	assertStringContainsE(t, out, `job_reference { project_id: "p" job_id: "j" location: "US" }`)
	assertStringContainsE(t, out, `status { state: "DONE" }`)
}

func TestDebugStringStandardSql(t *testing.T) {
	dt := StandardSqlDataType{
		TypeKind: "STRUCT",
		SubType: StandardSqlStructType{Fields: []StandardSqlField{
			{Name: "id", Type: &StandardSqlDataType{TypeKind: "INT64"}},
		}},
	}
	out := dt.DebugString(DebugFormatOptions{SingleLine: true})
	assertEqualE(t, out,
		`StandardSqlDataType { type_kind: "STRUCT" field { name: "id" type { type_kind: "INT64" } } }`)
}
