// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"encoding/json"
	"net/http"
)

// RestResponse is the raw HTTP exchange retained alongside every parsed
// resource for diagnostics.
type RestResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// errorResponse is the standard error envelope returned by the service.
type errorResponse struct {
	Error struct {
		Code    int          `json:"code"`
		Message string       `json:"message"`
		Status  string       `json:"status"`
		Errors  []ErrorProto `json:"errors"`
	} `json:"error"`
}

// minimal required top-level keys per resource kind
var (
	jobRequiredKeys       = []string{"kind", "etag", "id", "status"}
	jobListRequiredKeys   = []string{"kind", "etag"}
	cancelJobRequiredKeys = []string{"kind", "job"}
	datasetRequiredKeys   = []string{"kind", "etag", "id", "datasetReference"}
	datasetListRequired   = []string{"kind", "etag"}
	tableRequiredKeys     = []string{"kind", "etag", "id", "tableReference"}
	tableListRequiredKeys = []string{"kind", "etag"}
	projectListRequired   = []string{"kind", "etag"}
	queryRequiredKeys     = []string{"kind", "jobReference"}
	queryResultsRequired  = []string{"kind", "etag", "jobReference"}
)

// checkErrorResponse converts a non-2xx exchange into a BigQueryError,
// pulling reason and message out of the service's error envelope when one
// is present.
func checkErrorResponse(res *RestResponse) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	message := string(res.Body)
	reason := ""
	var envelope errorResponse
	if err := json.Unmarshal(res.Body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
		if len(envelope.Error.Errors) > 0 {
			reason = envelope.Error.Errors[0].Reason
		}
	}
	return &BigQueryError{
		Number:      ErrCodeServiceError,
		Reason:      reason,
		Message:     errMsgServiceError,
		MessageArgs: []interface{}{res.StatusCode, message},
	}
}

// checkRequiredKeys validates the minimal structural shape of a resource
// payload before it is materialized.
func checkRequiredKeys(obj jsonObject, resourceKind string, keys []string) error {
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return &BigQueryError{
				Number:      ErrCodeMissingRequiredKey,
				Message:     errMsgMissingRequiredKey,
				MessageArgs: []interface{}{key, resourceKind},
			}
		}
	}
	return nil
}

// buildFromResponse materializes a resource of type T out of a raw
// exchange: service errors and malformed payloads surface first, then the
// resource kind's required keys are checked, then the codec runs.
func buildFromResponse[T any](res *RestResponse, resourceKind string, requiredKeys []string) (*T, error) {
	if err := checkErrorResponse(res); err != nil {
		return nil, err
	}
	obj, err := parseObject(res.Body)
	if err != nil {
		return nil, err
	}
	if err = checkRequiredKeys(obj, resourceKind, requiredKeys); err != nil {
		return nil, err
	}
	var resource T
	if err = json.Unmarshal(res.Body, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// BuildJobFromResponse parses a job resource out of a raw exchange.
func BuildJobFromResponse(res *RestResponse) (*Job, error) {
	return buildFromResponse[Job](res, "Job", jobRequiredKeys)
}

// BuildJobListFromResponse parses one page of the jobs list.
func BuildJobListFromResponse(res *RestResponse) (*JobList, error) {
	return buildFromResponse[JobList](res, "JobList", jobListRequiredKeys)
}

// BuildJobCancelFromResponse parses the envelope of the cancel operation.
func BuildJobCancelFromResponse(res *RestResponse) (*JobCancelResponse, error) {
	return buildFromResponse[JobCancelResponse](res, "JobCancelResponse", cancelJobRequiredKeys)
}

// BuildDatasetFromResponse parses a dataset resource out of a raw exchange.
func BuildDatasetFromResponse(res *RestResponse) (*Dataset, error) {
	return buildFromResponse[Dataset](res, "Dataset", datasetRequiredKeys)
}

// BuildDatasetListFromResponse parses one page of the datasets list.
func BuildDatasetListFromResponse(res *RestResponse) (*DatasetList, error) {
	return buildFromResponse[DatasetList](res, "DatasetList", datasetListRequired)
}

// BuildTableFromResponse parses a table resource out of a raw exchange.
func BuildTableFromResponse(res *RestResponse) (*Table, error) {
	return buildFromResponse[Table](res, "Table", tableRequiredKeys)
}

// BuildTableListFromResponse parses one page of the tables list.
func BuildTableListFromResponse(res *RestResponse) (*TableList, error) {
	return buildFromResponse[TableList](res, "TableList", tableListRequiredKeys)
}

// BuildProjectListFromResponse parses one page of the projects list.
func BuildProjectListFromResponse(res *RestResponse) (*ProjectList, error) {
	return buildFromResponse[ProjectList](res, "ProjectList", projectListRequired)
}

// BuildQueryResponseFromResponse parses the result of the synchronous
// query operation.
func BuildQueryResponseFromResponse(res *RestResponse) (*QueryResponse, error) {
	return buildFromResponse[QueryResponse](res, "QueryResponse", queryRequiredKeys)
}

// BuildQueryResultsFromResponse parses one page of the results of a query
// job.
func BuildQueryResultsFromResponse(res *RestResponse) (*GetQueryResultsResponse, error) {
	return buildFromResponse[GetQueryResultsResponse](res, "GetQueryResults", queryResultsRequired)
}
