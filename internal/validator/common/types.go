package common

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/schema"
)

// NoticeKind classifies a non-structural problem found during a run
type NoticeKind string

const (
	NoticeDirUnreadable NoticeKind = "dir-unreadable"
	NoticeSchemaMissing NoticeKind = "schema-missing"
	NoticeSchemaInvalid NoticeKind = "schema-invalid"
	NoticeDataInvalid   NoticeKind = "data-invalid"
)

// Notice is a skip or parse problem that never reached structural validation
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Dir     string     `json:"dir"`
	File    string     `json:"file,omitempty"`
	Message string     `json:"message"`
}

// FileResult holds the structural errors of one data file
type FileResult struct {
	File   string                  `json:"file"`
	Locale string                  `json:"locale,omitempty"`
	Errors schema.ValidationErrors `json:"errors"`
}

// RunSummary aggregates one batch run over all directories
type RunSummary struct {
	Version     int          `json:"version"`
	RunID       string       `json:"run_id"`
	GeneratedAt string       `json:"generated_at"`
	Results     []FileResult `json:"results"`
	Notices     []Notice     `json:"notices"`
	Summary     Summary      `json:"summary"`
}

// Summary contains run statistics
type Summary struct {
	Directories    int `json:"directories"`
	Files          int `json:"files"`
	Failed         int `json:"failed"`
	TotalErrors    int `json:"total_errors"`
	ParseErrors    int `json:"parse_errors"`
	MissingSchemas int `json:"missing_schemas"`
}

// Policy decides which problems fail a run
type Policy struct {
	AllowMissingSchema bool
}

// NewRunSummary creates an empty summary
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Version:     1,
		RunID:       ulid.Make().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Results:     []FileResult{},
		Notices:     []Notice{},
		Summary:     Summary{},
	}
}

// AddFileResult records a validated file. Files without errors only bump the count.
func (rs *RunSummary) AddFileResult(fileResult FileResult) {
	rs.Summary.Files++
	if len(fileResult.Errors) == 0 {
		return
	}
	rs.Results = append(rs.Results, fileResult)
	rs.Summary.Failed++
	rs.Summary.TotalErrors += len(fileResult.Errors)
}

// AddNotice records a skip notice without affecting counters
func (rs *RunSummary) AddNotice(notice Notice) {
	rs.Notices = append(rs.Notices, notice)
}

// AddParseError records an unparsable schema or data file as one aggregate error
func (rs *RunSummary) AddParseError(notice Notice) {
	rs.AddNotice(notice)
	rs.Summary.ParseErrors++
	rs.Summary.TotalErrors++
}

// AddMissingSchema records a directory skipped for lack of a schema
func (rs *RunSummary) AddMissingSchema(notice Notice) {
	rs.AddNotice(notice)
	rs.Summary.MissingSchemas++
}

// Failed reports whether the run found any problem under policy
func (rs *RunSummary) Failed(policy Policy) bool {
	if len(rs.Results) > 0 || rs.Summary.TotalErrors > 0 {
		return true
	}
	return rs.Summary.MissingSchemas > 0 && !policy.AllowMissingSchema
}

// ExitCode maps the run outcome to a process exit status
func (rs *RunSummary) ExitCode(policy Policy) int {
	if rs.Failed(policy) {
		return 1
	}
	return 0
}
