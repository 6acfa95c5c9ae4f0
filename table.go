// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// TableReference identifies a table uniquely within a dataset.
type TableReference struct {
	ProjectID string `json:"projectId,omitempty"`
	DatasetID string `json:"datasetId,omitempty"`
	TableID   string `json:"tableId,omitempty"`
}

// TimePartitioning configures time-based partitioning of a table.
type TimePartitioning struct {
	Type       string         `json:"type,omitempty"`
	Expiration MillisDuration `json:"expirationMs,omitempty"`
	Field      string         `json:"field,omitempty"`
}

// RangePartitioningRange is the [start, end) interval of an integer-range
// partitioned column, string-encoded on the wire.
type RangePartitioningRange struct {
	Start    Int64String `json:"start,omitempty"`
	End      Int64String `json:"end,omitempty"`
	Interval Int64String `json:"interval,omitempty"`
}

// RangePartitioning configures integer-range partitioning of a table.
type RangePartitioning struct {
	Field string                  `json:"field,omitempty"`
	Range *RangePartitioningRange `json:"range,omitempty"`
}

// Clustering names the columns a table is clustered by.
type Clustering struct {
	Fields []string `json:"fields,omitempty"`
}

// ViewDefinition holds the query backing a view.
type ViewDefinition struct {
	Query        string `json:"query,omitempty"`
	UseLegacySQL *bool  `json:"useLegacySql,omitempty"`
}

// Table is a single BigQuery table resource.
type Table struct {
	Kind                   string             `json:"kind,omitempty"`
	Etag                   string             `json:"etag,omitempty"`
	ID                     string             `json:"id,omitempty"`
	SelfLink               string             `json:"selfLink,omitempty"`
	TableReference         *TableReference    `json:"tableReference,omitempty"`
	FriendlyName           string             `json:"friendlyName,omitempty"`
	Description            string             `json:"description,omitempty"`
	Labels                 map[string]string  `json:"labels,omitempty"`
	Schema                 *TableSchema       `json:"schema,omitempty"`
	TimePartitioning       *TimePartitioning  `json:"timePartitioning,omitempty"`
	RangePartitioning      *RangePartitioning `json:"rangePartitioning,omitempty"`
	Clustering             *Clustering        `json:"clustering,omitempty"`
	RequirePartitionFilter *bool              `json:"requirePartitionFilter,omitempty"`
	NumBytes               Int64String        `json:"numBytes,omitempty"`
	NumLongTermBytes       Int64String        `json:"numLongTermBytes,omitempty"`
	NumRows                Uint64String       `json:"numRows,omitempty"`
	CreationTime           *MillisTime        `json:"creationTime,omitempty"`
	ExpirationTime         *MillisTime        `json:"expirationTime,omitempty"`
	LastModifiedTime       *MillisTime        `json:"lastModifiedTime,omitempty"`
	Type                   string             `json:"type,omitempty"`
	View                   *ViewDefinition    `json:"view,omitempty"`
	Location               string             `json:"location,omitempty"`
}

// ListFormatView is the trimmed view shape present in list results.
type ListFormatView struct {
	UseLegacySQL *bool `json:"useLegacySql,omitempty"`
}

// ListFormatTable is the trimmed table shape returned by the list
// operation.
type ListFormatTable struct {
	Kind             string            `json:"kind,omitempty"`
	ID               string            `json:"id,omitempty"`
	TableReference   *TableReference   `json:"tableReference,omitempty"`
	FriendlyName     string            `json:"friendlyName,omitempty"`
	Type             string            `json:"type,omitempty"`
	TimePartitioning *TimePartitioning `json:"timePartitioning,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	View             *ListFormatView   `json:"view,omitempty"`
	CreationTime     *MillisTime       `json:"creationTime,omitempty"`
	ExpirationTime   *MillisTime       `json:"expirationTime,omitempty"`
}

// TableList is one page of the tables list operation.
type TableList struct {
	Kind          string            `json:"kind,omitempty"`
	Etag          string            `json:"etag,omitempty"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
	Tables        []ListFormatTable `json:"tables,omitempty"`
	TotalItems    int64             `json:"totalItems,omitempty"`
}
