// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// ProjectReference identifies a project.
type ProjectReference struct {
	ProjectID string `json:"projectId,omitempty"`
}

// Project is a single project visible to the caller.
type Project struct {
	Kind             string            `json:"kind,omitempty"`
	ID               string            `json:"id,omitempty"`
	NumericID        Uint64String      `json:"numericId,omitempty"`
	ProjectReference *ProjectReference `json:"projectReference,omitempty"`
	FriendlyName     string            `json:"friendlyName,omitempty"`
}

// ProjectList is one page of the projects list operation.
type ProjectList struct {
	Kind          string    `json:"kind,omitempty"`
	Etag          string    `json:"etag,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
	Projects      []Project `json:"projects,omitempty"`
	TotalItems    int64     `json:"totalItems,omitempty"`
}
