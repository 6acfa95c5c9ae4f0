// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

var bigqueryTransport = &http.Transport{
	MaxIdleConns:    10,
	IdleConnTimeout: 30 * time.Minute,
}

// RestClientConfig configures a RestClient. Zero values fall back to the
// public BigQuery endpoint.
type RestClientConfig struct {
	Scheme         string
	Host           string
	Port           int
	Token          string // bearer token set by the caller; this library does no authentication
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// RestClient performs BigQuery v2 REST operations: it builds request URLs
// out of typed request value objects, runs them with retries and parses
// the responses into typed resources.
type RestClient struct {
	scheme         string
	host           string
	port           int
	token          string
	requestTimeout time.Duration
	client         *http.Client
}

// NewRestClient returns a RestClient for the given configuration.
func NewRestClient(cfg RestClientConfig) *RestClient {
	rc := &RestClient{
		scheme:         cfg.Scheme,
		host:           cfg.Host,
		port:           cfg.Port,
		token:          cfg.Token,
		requestTimeout: cfg.RequestTimeout,
		client:         cfg.HTTPClient,
	}
	if rc.scheme == "" {
		rc.scheme = defaultScheme
	}
	if rc.host == "" {
		rc.host = defaultHost
	}
	if rc.port == 0 {
		rc.port = defaultPort
	}
	if rc.client == nil {
		rc.client = &http.Client{Transport: bigqueryTransport}
	}
	return rc
}

func (rc *RestClient) getFullURL(path string, params *url.Values) *url.URL {
	return &url.URL{
		Scheme:   rc.scheme,
		Host:     fmt.Sprintf("%v:%v", rc.host, rc.port),
		Path:     path,
		RawQuery: params.Encode(),
	}
}

func (rc *RestClient) getHeaders() map[string]string {
	headers := make(map[string]string)
	headers["Content-Type"] = headerContentTypeApplicationJSON
	headers["accept"] = headerAcceptTypeApplicationJSON
	headers["User-Agent"] = userAgent
	if rc.token != "" {
		headers[headerAuthorizationKey] = fmt.Sprintf(headerBearerToken, rc.token)
	}
	return headers
}

// execRequest builds the URL for req, runs the HTTP exchange through the
// retrying executor and drains the body into a RestResponse.
func (rc *RestClient) execRequest(
	ctx context.Context,
	method string,
	req restRequest,
	body []byte) (
	*RestResponse, error) {
	path, err := req.path()
	if err != nil {
		return nil, err
	}
	params := req.params()
	params.Add(requestIDKey, uuid.New().String())
	fullURL := rc.getFullURL(path, &params)
	logger.WithContext(ctx).Debugf("fullURL: %v", fullURL)

	rh := newRetryHTTP(ctx, rc.client, http.NewRequest, fullURL, rc.getHeaders(),
		rc.requestTimeout).doRaise4XX(true)
	switch method {
	case http.MethodPost:
		rh.doPost().setBody(body)
	case http.MethodDelete:
		rh.doDelete()
	}
	res, err := rh.execute()
	if err != nil {
		logger.WithContext(ctx).Errorf("failed to get response. err: %v", err)
		return nil, err
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		logger.WithContext(ctx).Errorf("failed to read response body. err: %v", err)
		return nil, err
	}
	return &RestResponse{
		StatusCode: res.StatusCode,
		Headers:    res.Header,
		Body:       b,
	}, nil
}

// GetJob fetches a single job.
func (rc *RestClient) GetJob(ctx context.Context, req *GetJobRequest) (*Job, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	job, err := BuildJobFromResponse(res)
	return job, res, err
}

// ListJobs fetches one page of the jobs of a project.
func (rc *RestClient) ListJobs(ctx context.Context, req *ListJobsRequest) (*JobList, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	list, err := BuildJobListFromResponse(res)
	return list, res, err
}

// InsertJob creates a new job.
func (rc *RestClient) InsertJob(ctx context.Context, req *InsertJobRequest) (*Job, *RestResponse, error) {
	body, err := json.Marshal(req.Job)
	if err != nil {
		return nil, nil, err
	}
	res, err := rc.execRequest(ctx, http.MethodPost, req, body)
	if err != nil {
		return nil, nil, err
	}
	job, err := BuildJobFromResponse(res)
	return job, res, err
}

// CancelJob requests cancellation of a running job.
func (rc *RestClient) CancelJob(ctx context.Context, req *CancelJobRequest) (*JobCancelResponse, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodPost, req, nil)
	if err != nil {
		return nil, nil, err
	}
	cancel, err := BuildJobCancelFromResponse(res)
	return cancel, res, err
}

// DeleteJob deletes the metadata of a finished job.
func (rc *RestClient) DeleteJob(ctx context.Context, req *DeleteJobRequest) (*RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodDelete, req, nil)
	if err != nil {
		return nil, err
	}
	return res, checkErrorResponse(res)
}

// Query runs a query synchronously.
func (rc *RestClient) Query(ctx context.Context, req *PostQueryRequest) (*QueryResponse, *RestResponse, error) {
	body, err := json.Marshal(req.QueryRequest)
	if err != nil {
		return nil, nil, err
	}
	res, err := rc.execRequest(ctx, http.MethodPost, req, body)
	if err != nil {
		return nil, nil, err
	}
	qr, err := BuildQueryResponseFromResponse(res)
	return qr, res, err
}

// GetQueryResults fetches one page of the results of a query job.
func (rc *RestClient) GetQueryResults(ctx context.Context, req *GetQueryResultsRequest) (*GetQueryResultsResponse, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	results, err := BuildQueryResultsFromResponse(res)
	return results, res, err
}

// GetDataset fetches a single dataset.
func (rc *RestClient) GetDataset(ctx context.Context, req *GetDatasetRequest) (*Dataset, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	dataset, err := BuildDatasetFromResponse(res)
	return dataset, res, err
}

// ListDatasets fetches one page of the datasets of a project.
func (rc *RestClient) ListDatasets(ctx context.Context, req *ListDatasetsRequest) (*DatasetList, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	list, err := BuildDatasetListFromResponse(res)
	return list, res, err
}

// GetTable fetches a single table.
func (rc *RestClient) GetTable(ctx context.Context, req *GetTableRequest) (*Table, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	table, err := BuildTableFromResponse(res)
	return table, res, err
}

// ListTables fetches one page of the tables of a dataset.
func (rc *RestClient) ListTables(ctx context.Context, req *ListTablesRequest) (*TableList, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	list, err := BuildTableListFromResponse(res)
	return list, res, err
}

// ListProjects fetches one page of the projects visible to the caller.
func (rc *RestClient) ListProjects(ctx context.Context, req *ListProjectsRequest) (*ProjectList, *RestResponse, error) {
	res, err := rc.execRequest(ctx, http.MethodGet, req, nil)
	if err != nil {
		return nil, nil, err
	}
	list, err := BuildProjectListFromResponse(res)
	return list, res, err
}
