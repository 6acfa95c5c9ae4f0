// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// DatasetReference identifies a dataset uniquely within a project.
type DatasetReference struct {
	DatasetID string `json:"datasetId,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
}

// AccessEntry grants a role to one grantee of a dataset.
type AccessEntry struct {
	Role         string          `json:"role,omitempty"`
	UserByEmail  string          `json:"userByEmail,omitempty"`
	GroupByEmail string          `json:"groupByEmail,omitempty"`
	Domain       string          `json:"domain,omitempty"`
	SpecialGroup string          `json:"specialGroup,omitempty"`
	IamMember    string          `json:"iamMember,omitempty"`
	View         *TableReference `json:"view,omitempty"`
}

// Dataset is a single BigQuery dataset resource.
type Dataset struct {
	Kind                       string            `json:"kind,omitempty"`
	Etag                       string            `json:"etag,omitempty"`
	ID                         string            `json:"id,omitempty"`
	SelfLink                   string            `json:"selfLink,omitempty"`
	DatasetReference           *DatasetReference `json:"datasetReference,omitempty"`
	FriendlyName               string            `json:"friendlyName,omitempty"`
	Description                string            `json:"description,omitempty"`
	Location                   string            `json:"location,omitempty"`
	DefaultTableExpiration     MillisDuration    `json:"defaultTableExpirationMs,omitempty"`
	DefaultPartitionExpiration MillisDuration    `json:"defaultPartitionExpirationMs,omitempty"`
	Labels                     map[string]string `json:"labels,omitempty"`
	Access                     []AccessEntry     `json:"access,omitempty"`
	CreationTime               *MillisTime       `json:"creationTime,omitempty"`
	LastModifiedTime           *MillisTime       `json:"lastModifiedTime,omitempty"`
}

// ListFormatDataset is the trimmed dataset shape returned by the list
// operation.
type ListFormatDataset struct {
	Kind             string            `json:"kind,omitempty"`
	ID               string            `json:"id,omitempty"`
	DatasetReference *DatasetReference `json:"datasetReference,omitempty"`
	FriendlyName     string            `json:"friendlyName,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	Location         string            `json:"location,omitempty"`
}

// DatasetList is one page of the datasets list operation.
type DatasetList struct {
	Kind          string              `json:"kind,omitempty"`
	Etag          string              `json:"etag,omitempty"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
	Datasets      []ListFormatDataset `json:"datasets,omitempty"`
}
