// Package gobigquery provides typed resources and codecs for the BigQuery v2 REST API
//
// Copyright (c) 2026 Google LLC. All rights reserved.
package gobigquery

// BigQueryGoClientVersion is the version of the BigQuery Go REST client
const BigQueryGoClientVersion = "0.1.0"
