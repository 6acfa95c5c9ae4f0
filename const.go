// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"fmt"
)

const (
	headerAuthorizationKey = "Authorization"
	headerBearerToken      = "Bearer %v"

	headerContentTypeApplicationJSON = "application/json"
	headerAcceptTypeApplicationJSON  = "application/json"
)

const (
	defaultScheme = "https"
	defaultHost   = "bigquery.googleapis.com"
	defaultPort   = 443

	// basePath is the prefix of every BigQuery v2 resource path.
	basePath = "/bigquery/v2"
)

const clientType = "GoBigQuery"

var userAgent = fmt.Sprintf("%v/%v", clientType, BigQueryGoClientVersion)
