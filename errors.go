// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"fmt"
)

// BigQueryError is an error type including various BigQuery specific information.
type BigQueryError struct {
	Number      int
	Reason      string
	Location    string
	Message     string
	MessageArgs []interface{}
	JobID       string
}

func (be *BigQueryError) Error() string {
	message := be.Message
	if len(be.MessageArgs) > 0 {
		message = fmt.Sprintf(be.Message, be.MessageArgs...)
	}
	if be.JobID != "" {
		return fmt.Sprintf("%06d (%v): %v: %v", be.Number, be.Reason, be.JobID, message)
	}
	return fmt.Sprintf("%06d (%v): %v", be.Number, be.Reason, message)
}

const (
	// request building

	// ErrCodeEmptyProjectID is an error code for the case where a request lacks a project id
	ErrCodeEmptyProjectID = 370001
	// ErrCodeEmptyJobID is an error code for the case where a job request lacks a job id
	ErrCodeEmptyJobID = 370002
	// ErrCodeEmptyDatasetID is an error code for the case where a dataset request lacks a dataset id
	ErrCodeEmptyDatasetID = 370003
	// ErrCodeEmptyTableID is an error code for the case where a table request lacks a table id
	ErrCodeEmptyTableID = 370004

	// response parsing

	// ErrCodeMalformedPayload is an error code for the case where a response body is not a JSON object
	ErrCodeMalformedPayload = 371001
	// ErrCodeMissingRequiredKey is an error code for the case where a required top-level key is absent
	ErrCodeMissingRequiredKey = 371002
	// ErrCodeServiceError is an error code for the case where the service returned a non-OK status
	ErrCodeServiceError = 371003

	// codec

	// ErrCodeUnknownValueKind is an error code for the case where a Value document carries an
	// out-of-range kind_index
	ErrCodeUnknownValueKind = 372001

	// configuration

	// ErrCodeTomlFileParsingFailed is an error code for the case where parsing the toml file fails
	ErrCodeTomlFileParsingFailed = 373001
	// ErrCodeFailedToFindProfileInToml is an error code for the case where the requested profile is absent
	ErrCodeFailedToFindProfileInToml = 373002
)

const (
	// errMsgMissingRequiredKey is an error message for the case where a required top-level key is absent
	errMsgMissingRequiredKey = "missing required key %v in %v resource"
	// errMsgMalformedPayload is an error message for the case where a response body is not a JSON object
	errMsgMalformedPayload = "response payload is not a JSON object: %v"
	// errMsgUnknownValueKind is an error message for an out-of-range kind_index
	errMsgUnknownValueKind = "unknown kind_index %v in Value document"
	// errMsgServiceError is an error message for a non-OK HTTP status
	errMsgServiceError = "service returned HTTP status %v: %v"
	// errMsgFailedToParseTomlFile is an error message for a toml value of the wrong type
	errMsgFailedToParseTomlFile = "failed to parse toml file. value %v for key %v"
	// errMsgFailedToFindProfileInTomlFile is an error message for a missing profile
	errMsgFailedToFindProfileInTomlFile = "failed to find the profile in the toml file"
)

var (
	// preformatted errors

	// ErrEmptyProjectID is returned if a request doesn't include a project id.
	ErrEmptyProjectID = &BigQueryError{
		Number:  ErrCodeEmptyProjectID,
		Message: "project id is empty",
	}
	// ErrEmptyJobID is returned if a job request doesn't include a job id.
	ErrEmptyJobID = &BigQueryError{
		Number:  ErrCodeEmptyJobID,
		Message: "job id is empty",
	}
	// ErrEmptyDatasetID is returned if a dataset request doesn't include a dataset id.
	ErrEmptyDatasetID = &BigQueryError{
		Number:  ErrCodeEmptyDatasetID,
		Message: "dataset id is empty",
	}
	// ErrEmptyTableID is returned if a table request doesn't include a table id.
	ErrEmptyTableID = &BigQueryError{
		Number:  ErrCodeEmptyTableID,
		Message: "table id is empty",
	}
)
