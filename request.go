// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// restRequest is the narrow interface between a typed request value object
// and the REST layer: a resource path plus its query parameters.
type restRequest interface {
	path() (string, error)
	params() url.Values
}

// GetJobRequest asks for a single job.
type GetJobRequest struct {
	ProjectID string
	JobID     string
	Location  string
}

func (r *GetJobRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.JobID == "" {
		return "", ErrEmptyJobID
	}
	return fmt.Sprintf("%v/projects/%v/jobs/%v",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.JobID)), nil
}

func (r *GetJobRequest) params() url.Values {
	p := url.Values{}
	if r.Location != "" {
		p.Add("location", r.Location)
	}
	return p
}

// ListJobsRequest asks for one page of the jobs of a project.
type ListJobsRequest struct {
	ProjectID       string
	AllUsers        bool
	MaxResults      int64
	MinCreationTime time.Time
	MaxCreationTime time.Time
	PageToken       string
	Projection      string
	StateFilter     []string
	ParentJobID     string
}

func (r *ListJobsRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	return fmt.Sprintf("%v/projects/%v/jobs", basePath, url.PathEscape(r.ProjectID)), nil
}

func (r *ListJobsRequest) params() url.Values {
	p := url.Values{}
	if r.AllUsers {
		p.Add("allUsers", "true")
	}
	if r.MaxResults > 0 {
		p.Add("maxResults", strconv.FormatInt(r.MaxResults, 10))
	}
	if !r.MinCreationTime.IsZero() {
		p.Add("minCreationTime", strconv.FormatInt(r.MinCreationTime.UnixMilli(), 10))
	}
	if !r.MaxCreationTime.IsZero() {
		p.Add("maxCreationTime", strconv.FormatInt(r.MaxCreationTime.UnixMilli(), 10))
	}
	if r.PageToken != "" {
		p.Add("pageToken", r.PageToken)
	}
	if r.Projection != "" {
		p.Add("projection", r.Projection)
	}
	for _, state := range r.StateFilter {
		p.Add("stateFilter", state)
	}
	if r.ParentJobID != "" {
		p.Add("parentJobId", r.ParentJobID)
	}
	return p
}

// InsertJobRequest creates a new job. The job configuration travels in the
// request body.
type InsertJobRequest struct {
	ProjectID string
	Job       Job
}

func (r *InsertJobRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	return fmt.Sprintf("%v/projects/%v/jobs", basePath, url.PathEscape(r.ProjectID)), nil
}

func (r *InsertJobRequest) params() url.Values {
	return url.Values{}
}

// CancelJobRequest requests cancellation of a running job.
type CancelJobRequest struct {
	ProjectID string
	JobID     string
	Location  string
}

func (r *CancelJobRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.JobID == "" {
		return "", ErrEmptyJobID
	}
	return fmt.Sprintf("%v/projects/%v/jobs/%v/cancel",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.JobID)), nil
}

func (r *CancelJobRequest) params() url.Values {
	p := url.Values{}
	if r.Location != "" {
		p.Add("location", r.Location)
	}
	return p
}

// DeleteJobRequest deletes the metadata of a finished job.
type DeleteJobRequest struct {
	ProjectID string
	JobID     string
	Location  string
}

func (r *DeleteJobRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.JobID == "" {
		return "", ErrEmptyJobID
	}
	return fmt.Sprintf("%v/projects/%v/jobs/%v/delete",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.JobID)), nil
}

func (r *DeleteJobRequest) params() url.Values {
	p := url.Values{}
	if r.Location != "" {
		p.Add("location", r.Location)
	}
	return p
}

// PostQueryRequest runs a query synchronously. The query travels in the
// request body.
type PostQueryRequest struct {
	ProjectID    string
	QueryRequest QueryRequest
}

func (r *PostQueryRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	return fmt.Sprintf("%v/projects/%v/queries", basePath, url.PathEscape(r.ProjectID)), nil
}

func (r *PostQueryRequest) params() url.Values {
	return url.Values{}
}

// GetQueryResultsRequest asks for one page of the results of a query job.
type GetQueryResultsRequest struct {
	ProjectID  string
	JobID      string
	Location   string
	PageToken  string
	MaxResults int64
	StartIndex uint64
	Timeout    time.Duration
}

func (r *GetQueryResultsRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.JobID == "" {
		return "", ErrEmptyJobID
	}
	return fmt.Sprintf("%v/projects/%v/queries/%v",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.JobID)), nil
}

func (r *GetQueryResultsRequest) params() url.Values {
	p := url.Values{}
	if r.Location != "" {
		p.Add("location", r.Location)
	}
	if r.PageToken != "" {
		p.Add("pageToken", r.PageToken)
	}
	if r.MaxResults > 0 {
		p.Add("maxResults", strconv.FormatInt(r.MaxResults, 10))
	}
	if r.StartIndex > 0 {
		p.Add("startIndex", strconv.FormatUint(r.StartIndex, 10))
	}
	if r.Timeout > 0 {
		p.Add("timeoutMs", strconv.FormatInt(r.Timeout.Milliseconds(), 10))
	}
	return p
}

// GetDatasetRequest asks for a single dataset.
type GetDatasetRequest struct {
	ProjectID string
	DatasetID string
}

func (r *GetDatasetRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.DatasetID == "" {
		return "", ErrEmptyDatasetID
	}
	return fmt.Sprintf("%v/projects/%v/datasets/%v",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.DatasetID)), nil
}

func (r *GetDatasetRequest) params() url.Values {
	return url.Values{}
}

// ListDatasetsRequest asks for one page of the datasets of a project.
type ListDatasetsRequest struct {
	ProjectID  string
	All        bool
	Filter     string
	MaxResults int64
	PageToken  string
}

func (r *ListDatasetsRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	return fmt.Sprintf("%v/projects/%v/datasets", basePath, url.PathEscape(r.ProjectID)), nil
}

func (r *ListDatasetsRequest) params() url.Values {
	p := url.Values{}
	if r.All {
		p.Add("all", "true")
	}
	if r.Filter != "" {
		p.Add("filter", r.Filter)
	}
	if r.MaxResults > 0 {
		p.Add("maxResults", strconv.FormatInt(r.MaxResults, 10))
	}
	if r.PageToken != "" {
		p.Add("pageToken", r.PageToken)
	}
	return p
}

// GetTableRequest asks for a single table.
type GetTableRequest struct {
	ProjectID      string
	DatasetID      string
	TableID        string
	SelectedFields []string
}

func (r *GetTableRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.DatasetID == "" {
		return "", ErrEmptyDatasetID
	}
	if r.TableID == "" {
		return "", ErrEmptyTableID
	}
	return fmt.Sprintf("%v/projects/%v/datasets/%v/tables/%v",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.DatasetID),
		url.PathEscape(r.TableID)), nil
}

func (r *GetTableRequest) params() url.Values {
	p := url.Values{}
	if len(r.SelectedFields) > 0 {
		p.Add("selectedFields", strings.Join(r.SelectedFields, ","))
	}
	return p
}

// ListTablesRequest asks for one page of the tables of a dataset.
type ListTablesRequest struct {
	ProjectID  string
	DatasetID  string
	MaxResults int64
	PageToken  string
}

func (r *ListTablesRequest) path() (string, error) {
	if r.ProjectID == "" {
		return "", ErrEmptyProjectID
	}
	if r.DatasetID == "" {
		return "", ErrEmptyDatasetID
	}
	return fmt.Sprintf("%v/projects/%v/datasets/%v/tables",
		basePath, url.PathEscape(r.ProjectID), url.PathEscape(r.DatasetID)), nil
}

func (r *ListTablesRequest) params() url.Values {
	p := url.Values{}
	if r.MaxResults > 0 {
		p.Add("maxResults", strconv.FormatInt(r.MaxResults, 10))
	}
	if r.PageToken != "" {
		p.Add("pageToken", r.PageToken)
	}
	return p
}

// ListProjectsRequest asks for one page of the projects visible to the
// caller.
type ListProjectsRequest struct {
	MaxResults int64
	PageToken  string
}

func (r *ListProjectsRequest) path() (string, error) {
	return basePath + "/projects", nil
}

func (r *ListProjectsRequest) params() url.Values {
	p := url.Values{}
	if r.MaxResults > 0 {
		p.Add("maxResults", strconv.FormatInt(r.MaxResults, 10))
	}
	if r.PageToken != "" {
		p.Add("pageToken", r.PageToken)
	}
	return p
}
