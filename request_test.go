package gobigquery

import (
	"testing"
	"time"
)

func TestGetJobRequestPath(t *testing.T) {
	r := &GetJobRequest{ProjectID: "my-project", JobID: "job_abc", Location: "US"}
	p, err := r.path()
	assertNilF(t, err)
	assertEqualE(t, p, "/bigquery/v2/projects/my-project/jobs/job_abc")
	assertEqualE(t, r.params().Get("location"), "US")
}

func TestRequestPathEscapesIDs(t *testing.T) {
	r := &GetTableRequest{ProjectID: "my project", DatasetID: "a/b", TableID: "t"}
	p, err := r.path()
	assertNilF(t, err)
	assertEqualE(t, p, "/bigquery/v2/projects/my%20project/datasets/a%2Fb/tables/t")
}

func TestRequestEmptyIDValidation(t *testing.T) {
	testcases := []struct {
		name     string
		request  restRequest
		expected error
	}{
		{"job without project", &GetJobRequest{JobID: "j"}, ErrEmptyProjectID},
		{"job without id", &GetJobRequest{ProjectID: "p"}, ErrEmptyJobID},
		{"cancel without id", &CancelJobRequest{ProjectID: "p"}, ErrEmptyJobID},
		{"delete without id", &DeleteJobRequest{ProjectID: "p"}, ErrEmptyJobID},
		{"list jobs without project", &ListJobsRequest{}, ErrEmptyProjectID},
		{"insert without project", &InsertJobRequest{}, ErrEmptyProjectID},
		{"query without project", &PostQueryRequest{}, ErrEmptyProjectID},
		{"results without job", &GetQueryResultsRequest{ProjectID: "p"}, ErrEmptyJobID},
		{"dataset without id", &GetDatasetRequest{ProjectID: "p"}, ErrEmptyDatasetID},
		{"tables without dataset", &ListTablesRequest{ProjectID: "p"}, ErrEmptyDatasetID},
		{"table without id", &GetTableRequest{ProjectID: "p", DatasetID: "d"}, ErrEmptyTableID},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.request.path()
			assertErrIsE(t, err, tc.expected)
		})
	}
}

func TestListJobsRequestParams(t *testing.T) {
	r := &ListJobsRequest{
		ProjectID:       "p",
		AllUsers:        true,
		MaxResults:      25,
		MinCreationTime: time.UnixMilli(1773480413000).UTC(),
		PageToken:       "tok",
		StateFilter:     []string{"pending", "running"},
	}
	p := r.params()
	assertEqualE(t, p.Get("allUsers"), "true")
	assertEqualE(t, p.Get("maxResults"), "25")
	assertEqualE(t, p.Get("minCreationTime"), "1773480413000")
	assertEqualE(t, p.Get("maxCreationTime"), "")
	assertEqualE(t, p.Get("pageToken"), "tok")
	assertDeepEqualE(t, p["stateFilter"], []string{"pending", "running"})
}

func TestGetQueryResultsRequestParams(t *testing.T) {
	r := &GetQueryResultsRequest{
		ProjectID:  "p",
		JobID:      "j",
		MaxResults: 1000,
		StartIndex: 500,
		Timeout:    10 * time.Second,
	}
	p, err := r.path()
	assertNilF(t, err)
	assertEqualE(t, p, "/bigquery/v2/projects/p/queries/j")
	params := r.params()
	assertEqualE(t, params.Get("maxResults"), "1000")
	assertEqualE(t, params.Get("startIndex"), "500")
	assertEqualE(t, params.Get("timeoutMs"), "10000")
}

func TestGetTableRequestSelectedFields(t *testing.T) {
	r := &GetTableRequest{ProjectID: "p", DatasetID: "d", TableID: "t",
		SelectedFields: []string{"id", "name"}}
	assertEqualE(t, r.params().Get("selectedFields"), "id,name")
}

func TestListProjectsRequestPath(t *testing.T) {
	r := &ListProjectsRequest{MaxResults: 5}
	p, err := r.path()
	assertNilF(t, err)
	assertEqualE(t, p, "/bigquery/v2/projects")
	assertEqualE(t, r.params().Get("maxResults"), "5")
}
