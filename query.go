// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// TableCell is a single cell of a result row. Scalars travel
// string-encoded regardless of their declared type; nested records and
// repeated fields arrive as generic JSON.
type TableCell struct {
	V interface{} `json:"v,omitempty"`
}

// TableRow is a single result row.
type TableRow struct {
	F []TableCell `json:"f,omitempty"`
}

// QueryRequest is the body of the synchronous query operation.
type QueryRequest struct {
	Kind               string            `json:"kind,omitempty"`
	Query              string            `json:"query,omitempty"`
	MaxResults         int64             `json:"maxResults,omitempty"`
	DefaultDataset     *DatasetReference `json:"defaultDataset,omitempty"`
	Timeout            MillisDuration    `json:"timeoutMs,omitempty"`
	DryRun             *bool             `json:"dryRun,omitempty"`
	UseQueryCache      *bool             `json:"useQueryCache,omitempty"`
	UseLegacySQL       *bool             `json:"useLegacySql,omitempty"`
	ParameterMode      string            `json:"parameterMode,omitempty"`
	QueryParameters    []QueryParameter  `json:"queryParameters,omitempty"`
	Location           string            `json:"location,omitempty"`
	RequestID          string            `json:"requestId,omitempty"`
	MaximumBytesBilled Int64String       `json:"maximumBytesBilled,omitempty"`
	Labels             map[string]string `json:"labels,omitempty"`
}

// QueryResponse is the response of the synchronous query operation. Row
// and byte counts travel string-encoded.
type QueryResponse struct {
	Kind                string        `json:"kind,omitempty"`
	Schema              *TableSchema  `json:"schema,omitempty"`
	JobReference        *JobReference `json:"jobReference,omitempty"`
	TotalRows           Uint64String  `json:"totalRows,omitempty"`
	PageToken           string        `json:"pageToken,omitempty"`
	Rows                []TableRow    `json:"rows,omitempty"`
	TotalBytesProcessed Int64String   `json:"totalBytesProcessed,omitempty"`
	JobComplete         *bool         `json:"jobComplete,omitempty"`
	Errors              []ErrorProto  `json:"errors,omitempty"`
	CacheHit            *bool         `json:"cacheHit,omitempty"`
	NumDMLAffectedRows  Int64String   `json:"numDmlAffectedRows,omitempty"`
	Location            string        `json:"location,omitempty"`
}

// GetQueryResultsResponse is one page of results of a completed query job.
type GetQueryResultsResponse struct {
	Kind                string        `json:"kind,omitempty"`
	Etag                string        `json:"etag,omitempty"`
	Schema              *TableSchema  `json:"schema,omitempty"`
	JobReference        *JobReference `json:"jobReference,omitempty"`
	TotalRows           Uint64String  `json:"totalRows,omitempty"`
	PageToken           string        `json:"pageToken,omitempty"`
	Rows                []TableRow    `json:"rows,omitempty"`
	TotalBytesProcessed Int64String   `json:"totalBytesProcessed,omitempty"`
	JobComplete         *bool         `json:"jobComplete,omitempty"`
	Errors              []ErrorProto  `json:"errors,omitempty"`
	CacheHit            *bool         `json:"cacheHit,omitempty"`
	NumDMLAffectedRows  Int64String   `json:"numDmlAffectedRows,omitempty"`
}
