// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

// JobReference identifies a job uniquely within a project.
type JobReference struct {
	ProjectID string `json:"projectId,omitempty"`
	JobID     string `json:"jobId,omitempty"`
	Location  string `json:"location,omitempty"`
}

// ErrorProto carries a single error or warning reported by the service.
type ErrorProto struct {
	Reason    string `json:"reason,omitempty"`
	Location  string `json:"location,omitempty"`
	DebugInfo string `json:"debugInfo,omitempty"`
	Message   string `json:"message,omitempty"`
}

// JobStatus describes the execution state of a job. A DONE state with a
// non-nil ErrorResult means the job failed.
type JobStatus struct {
	State       string       `json:"state,omitempty"`
	ErrorResult *ErrorProto  `json:"errorResult,omitempty"`
	Errors      []ErrorProto `json:"errors,omitempty"`
}

// Job states reported in JobStatus.State
const (
	JobStatePending = "PENDING"
	JobStateRunning = "RUNNING"
	JobStateDone    = "DONE"
)

// JobConfigurationQuery configures a query job.
type JobConfigurationQuery struct {
	Query              string             `json:"query,omitempty"`
	DestinationTable   *TableReference    `json:"destinationTable,omitempty"`
	DefaultDataset     *DatasetReference  `json:"defaultDataset,omitempty"`
	Priority           string             `json:"priority,omitempty"`
	CreateDisposition  string             `json:"createDisposition,omitempty"`
	WriteDisposition   string             `json:"writeDisposition,omitempty"`
	ParameterMode      string             `json:"parameterMode,omitempty"`
	QueryParameters    []QueryParameter   `json:"queryParameters,omitempty"`
	UseQueryCache      *bool              `json:"useQueryCache,omitempty"`
	UseLegacySQL       *bool              `json:"useLegacySql,omitempty"`
	AllowLargeResults  *bool              `json:"allowLargeResults,omitempty"`
	MaximumBytesBilled Int64String        `json:"maximumBytesBilled,omitempty"`
	TimePartitioning   *TimePartitioning  `json:"timePartitioning,omitempty"`
	RangePartitioning  *RangePartitioning `json:"rangePartitioning,omitempty"`
	Clustering         *Clustering        `json:"clustering,omitempty"`
}

// JobConfiguration is the union of per-job-type configurations. Only the
// query configuration is modeled; JobType names the populated one.
type JobConfiguration struct {
	JobType    string                 `json:"jobType,omitempty"`
	Query      *JobConfigurationQuery `json:"query,omitempty"`
	DryRun     *bool                  `json:"dryRun,omitempty"`
	JobTimeout MillisDuration         `json:"jobTimeoutMs,omitempty"`
	Labels     map[string]string      `json:"labels,omitempty"`
}

// ExplainQueryStep is a single step within a query plan stage.
type ExplainQueryStep struct {
	Kind     string   `json:"kind,omitempty"`
	Substeps []string `json:"substeps,omitempty"`
}

// ExplainQueryStage is a single stage of the query plan. Stage ids, record
// and byte counts travel string-encoded.
type ExplainQueryStage struct {
	Name               string             `json:"name,omitempty"`
	ID                 Int64String        `json:"id,omitempty"`
	Status             string             `json:"status,omitempty"`
	Steps              []ExplainQueryStep `json:"steps,omitempty"`
	RecordsRead        Int64String        `json:"recordsRead,omitempty"`
	RecordsWritten     Int64String        `json:"recordsWritten,omitempty"`
	ShuffleOutputBytes Int64String        `json:"shuffleOutputBytes,omitempty"`
	ParallelInputs     Int64String        `json:"parallelInputs,omitempty"`
	SlotTime           MillisDuration     `json:"slotMs,omitempty"`
	StartTime          *MillisTime        `json:"startMs,omitempty"`
	EndTime            *MillisTime        `json:"endMs,omitempty"`
}

// QueryTimelineSample is a point-in-time snapshot of query progress.
type QueryTimelineSample struct {
	Elapsed        MillisDuration `json:"elapsedMs,omitempty"`
	TotalSlotTime  MillisDuration `json:"totalSlotMs,omitempty"`
	PendingUnits   Int64String    `json:"pendingUnits,omitempty"`
	CompletedUnits Int64String    `json:"completedUnits,omitempty"`
	ActiveUnits    Int64String    `json:"activeUnits,omitempty"`
}

// JobQueryStatistics are statistics specific to query jobs.
type JobQueryStatistics struct {
	TotalBytesBilled          Int64String           `json:"totalBytesBilled,omitempty"`
	TotalBytesProcessed       Int64String           `json:"totalBytesProcessed,omitempty"`
	EstimatedBytesProcessed   Int64String           `json:"estimatedBytesProcessed,omitempty"`
	NumDMLAffectedRows        Int64String           `json:"numDmlAffectedRows,omitempty"`
	BillingTier               int64                 `json:"billingTier,omitempty"`
	CacheHit                  *bool                 `json:"cacheHit,omitempty"`
	StatementType             string                `json:"statementType,omitempty"`
	QueryPlan                 []ExplainQueryStage   `json:"queryPlan,omitempty"`
	Timeline                  []QueryTimelineSample `json:"timeline,omitempty"`
	ReferencedTables          []TableReference      `json:"referencedTables,omitempty"`
	UndeclaredQueryParameters []QueryParameter      `json:"undeclaredQueryParameters,omitempty"`
	Schema                    *TableSchema          `json:"schema,omitempty"`
	SystemVariables           *SystemVariables      `json:"systemVariables,omitempty"`
	DDLOperationPerformed     string                `json:"ddlOperationPerformed,omitempty"`
	DDLTargetTable            *TableReference       `json:"ddlTargetTable,omitempty"`
}

// JobStatistics are statistics common to all job types. Absolute times are
// epoch milliseconds; byte counts travel string-encoded.
type JobStatistics struct {
	CreationTime        *MillisTime         `json:"creationTime,omitempty"`
	StartTime           *MillisTime         `json:"startTime,omitempty"`
	EndTime             *MillisTime         `json:"endTime,omitempty"`
	TotalBytesProcessed Int64String         `json:"totalBytesProcessed,omitempty"`
	TotalSlotTime       MillisDuration      `json:"totalSlotMs,omitempty"`
	NumChildJobs        Int64String         `json:"numChildJobs,omitempty"`
	ParentJobID         string              `json:"parentJobId,omitempty"`
	Query               *JobQueryStatistics `json:"query,omitempty"`
}

// Job is a single BigQuery job resource.
type Job struct {
	Kind          string            `json:"kind,omitempty"`
	Etag          string            `json:"etag,omitempty"`
	ID            string            `json:"id,omitempty"`
	SelfLink      string            `json:"selfLink,omitempty"`
	UserEmail     string            `json:"user_email,omitempty"`
	JobReference  *JobReference     `json:"jobReference,omitempty"`
	Configuration *JobConfiguration `json:"configuration,omitempty"`
	Status        *JobStatus        `json:"status,omitempty"`
	Statistics    *JobStatistics    `json:"statistics,omitempty"`
}

// ListFormatJob is the trimmed job shape returned by the list operation.
type ListFormatJob struct {
	Kind          string            `json:"kind,omitempty"`
	ID            string            `json:"id,omitempty"`
	JobReference  *JobReference     `json:"jobReference,omitempty"`
	State         string            `json:"state,omitempty"`
	ErrorResult   *ErrorProto       `json:"errorResult,omitempty"`
	Configuration *JobConfiguration `json:"configuration,omitempty"`
	Status        *JobStatus        `json:"status,omitempty"`
	Statistics    *JobStatistics    `json:"statistics,omitempty"`
	UserEmail     string            `json:"user_email,omitempty"`
}

// JobList is one page of the jobs list operation.
type JobList struct {
	Kind          string          `json:"kind,omitempty"`
	Etag          string          `json:"etag,omitempty"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
	Jobs          []ListFormatJob `json:"jobs,omitempty"`
}

// JobCancelResponse wraps the job returned by the cancel operation.
type JobCancelResponse struct {
	Kind string `json:"kind,omitempty"`
	Job  *Job   `json:"job,omitempty"`
}
