// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DebugFormatOptions controls DebugString rendering. It is not part of the
// wire contract; the output is used for logging and tests only.
type DebugFormatOptions struct {
	SingleLine        bool
	Indent            int // spaces per nesting level in multi-line mode
	TruncateStringsAt int // 0 disables truncation
}

// DefaultDebugFormatOptions renders multi-line with two-space indents and
// no truncation.
func DefaultDebugFormatOptions() DebugFormatOptions {
	return DebugFormatOptions{Indent: 2}
}

const truncationMarker = "...<truncated>..."

type debugStringBuilder struct {
	opts  DebugFormatOptions
	sb    strings.Builder
	depth int
}

func newDebugStringBuilder(opts DebugFormatOptions) *debugStringBuilder {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	return &debugStringBuilder{opts: opts}
}

func (b *debugStringBuilder) newline() {
	if b.opts.SingleLine {
		b.sb.WriteString(" ")
		return
	}
	b.sb.WriteString("\n")
	b.sb.WriteString(strings.Repeat(" ", b.depth*b.opts.Indent))
}

func (b *debugStringBuilder) open(name string) {
	b.sb.WriteString(name)
	b.sb.WriteString(" {")
	b.depth++
}

func (b *debugStringBuilder) close() {
	b.depth--
	b.newline()
	b.sb.WriteString("}")
}

func (b *debugStringBuilder) stringField(name, value string) {
	if b.opts.TruncateStringsAt > 0 && len(value) > b.opts.TruncateStringsAt {
		value = value[:b.opts.TruncateStringsAt] + truncationMarker
	}
	b.newline()
	b.sb.WriteString(fmt.Sprintf("%v: %q", name, value))
}

func (b *debugStringBuilder) intField(name string, value int64) {
	b.newline()
	b.sb.WriteString(fmt.Sprintf("%v: %v", name, value))
}

func (b *debugStringBuilder) boolField(name string, value bool) {
	b.newline()
	b.sb.WriteString(fmt.Sprintf("%v: %v", name, value))
}

func (b *debugStringBuilder) doubleField(name string, value float64) {
	b.newline()
	b.sb.WriteString(name + ": " + strconv.FormatFloat(value, 'g', -1, 64))
}

func (b *debugStringBuilder) timeField(name string, value time.Time) {
	b.newline()
	b.sb.WriteString(fmt.Sprintf("%v: %q", name, value.UTC().Format(time.RFC3339)))
}

func (b *debugStringBuilder) sub(name string, fill func(*debugStringBuilder)) {
	b.newline()
	b.open(name)
	fill(b)
	b.close()
}

func (b *debugStringBuilder) build(name string, fill func(*debugStringBuilder)) string {
	b.open(name)
	fill(b)
	b.close()
	return b.sb.String()
}

// DebugString returns a deterministic human-readable rendering.
func (qpt QueryParameterType) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("QueryParameterType", qpt.debugFields)
}

func (qpt QueryParameterType) debugFields(b *debugStringBuilder) {
	b.stringField("type", qpt.Type)
	if qpt.ArrayType != nil {
		b.sub("array_type", qpt.ArrayType.debugFields)
	}
	for _, st := range qpt.StructTypes {
		b.sub("struct_type", func(sb *debugStringBuilder) {
			sb.stringField("name", st.Name)
			sb.sub("type", st.Type.debugFields)
			if st.Description != "" {
				sb.stringField("description", st.Description)
			}
		})
	}
}

// DebugString returns a deterministic human-readable rendering.
func (qpv QueryParameterValue) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("QueryParameterValue", qpv.debugFields)
}

func (qpv QueryParameterValue) debugFields(b *debugStringBuilder) {
	b.stringField("value", qpv.Value)
	for _, av := range qpv.ArrayValues {
		b.sub("array_value", av.debugFields)
	}
	for _, name := range sortedKeys(qpv.StructValues) {
		sv := qpv.StructValues[name]
		b.sub("struct_value", func(sb *debugStringBuilder) {
			sb.stringField("name", name)
			sb.sub("value", sv.debugFields)
		})
	}
}

// DebugString returns a deterministic human-readable rendering.
func (qp QueryParameter) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("QueryParameter", func(b *debugStringBuilder) {
		b.stringField("name", qp.Name)
		b.sub("parameter_type", qp.ParameterType.debugFields)
		b.sub("parameter_value", qp.ParameterValue.debugFields)
	})
}

// DebugString returns a deterministic human-readable rendering.
func (t StandardSqlDataType) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("StandardSqlDataType", t.debugFields)
}

func (t StandardSqlDataType) debugFields(b *debugStringBuilder) {
	b.stringField("type_kind", t.TypeKind)
	switch sub := t.SubType.(type) {
	case StandardSqlArrayElement:
		if sub.Type != nil {
			b.sub("array_element_type", sub.Type.debugFields)
		}
	case StandardSqlStructType:
		for _, f := range sub.Fields {
			b.sub("field", func(sb *debugStringBuilder) {
				sb.stringField("name", f.Name)
				if f.Type != nil {
					sb.sub("type", f.Type.debugFields)
				}
			})
		}
	}
}

// DebugString returns a deterministic human-readable rendering.
func (v Value) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("Value", v.debugFields)
}

func (v Value) debugFields(b *debugStringBuilder) {
	b.intField("kind_index", int64(v.Kind))
	switch v.Kind {
	case KindDouble:
		b.doubleField("double_value", v.DoubleValue)
	case KindString:
		b.stringField("string_value", v.StringValue)
	case KindBool:
		b.boolField("bool_value", v.BoolValue)
	case KindStruct:
		if v.StructValue != nil {
			for _, name := range sortedKeys(v.StructValue.Fields) {
				fv := v.StructValue.Fields[name]
				b.sub("field", func(sb *debugStringBuilder) {
					sb.stringField("name", name)
					sb.sub("value", fv.debugFields)
				})
			}
		}
	case KindArray:
		for _, av := range v.ArrayValue {
			b.sub("element", av.debugFields)
		}
	}
}

// DebugString returns a deterministic human-readable rendering.
func (j Job) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("Job", func(b *debugStringBuilder) {
		b.stringField("kind", j.Kind)
		b.stringField("etag", j.Etag)
		b.stringField("id", j.ID)
		if j.JobReference != nil {
			b.sub("job_reference", func(sb *debugStringBuilder) {
				sb.stringField("project_id", j.JobReference.ProjectID)
				sb.stringField("job_id", j.JobReference.JobID)
				if j.JobReference.Location != "" {
					sb.stringField("location", j.JobReference.Location)
				}
			})
		}
		if j.Status != nil {
			b.sub("status", func(sb *debugStringBuilder) {
				sb.stringField("state", j.Status.State)
				if j.Status.ErrorResult != nil {
					sb.sub("error_result", func(eb *debugStringBuilder) {
						eb.stringField("reason", j.Status.ErrorResult.Reason)
						eb.stringField("message", j.Status.ErrorResult.Message)
					})
				}
			})
		}
		if j.Statistics != nil {
			b.sub("statistics", func(sb *debugStringBuilder) {
				if j.Statistics.CreationTime != nil {
					sb.timeField("creation_time", j.Statistics.CreationTime.Time())
				}
				if j.Statistics.StartTime != nil {
					sb.timeField("start_time", j.Statistics.StartTime.Time())
				}
				if j.Statistics.EndTime != nil {
					sb.timeField("end_time", j.Statistics.EndTime.Time())
				}
				if j.Statistics.TotalBytesProcessed != 0 {
					sb.intField("total_bytes_processed", int64(j.Statistics.TotalBytesProcessed))
				}
			})
		}
		if j.Configuration != nil && j.Configuration.Query != nil {
			b.sub("configuration", func(sb *debugStringBuilder) {
				sb.stringField("query", j.Configuration.Query.Query)
			})
		}
	})
}

// DebugString returns a deterministic human-readable rendering.
func (d Dataset) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("Dataset", func(b *debugStringBuilder) {
		b.stringField("kind", d.Kind)
		b.stringField("etag", d.Etag)
		b.stringField("id", d.ID)
		if d.DatasetReference != nil {
			b.sub("dataset_reference", func(sb *debugStringBuilder) {
				sb.stringField("project_id", d.DatasetReference.ProjectID)
				sb.stringField("dataset_id", d.DatasetReference.DatasetID)
			})
		}
		if d.FriendlyName != "" {
			b.stringField("friendly_name", d.FriendlyName)
		}
		if d.Location != "" {
			b.stringField("location", d.Location)
		}
	})
}

// DebugString returns a deterministic human-readable rendering.
func (t Table) DebugString(opts DebugFormatOptions) string {
	return newDebugStringBuilder(opts).build("Table", func(b *debugStringBuilder) {
		b.stringField("kind", t.Kind)
		b.stringField("etag", t.Etag)
		b.stringField("id", t.ID)
		if t.TableReference != nil {
			b.sub("table_reference", func(sb *debugStringBuilder) {
				sb.stringField("project_id", t.TableReference.ProjectID)
				sb.stringField("dataset_id", t.TableReference.DatasetID)
				sb.stringField("table_id", t.TableReference.TableID)
			})
		}
		if t.NumRows != 0 {
			b.intField("num_rows", int64(t.NumRows))
		}
		if t.Type != "" {
			b.stringField("type", t.Type)
		}
	})
}
