package greenhouse

import (
	"encoding/json"
	"time"
)

// Wire types for the Greenhouse Job Board API. Offices and departments are
// transient: they only exist to attribute a job to an office/department pair
// during flattening and are discarded after a sync.

// Location is the nested location object ({"name": "..."}) that the cache
// flattens to a plain string.
type Location struct {
	Name string `json:"name"`
}

// BoardJob is the job summary the offices tree carries. Free-text fields
// (content, questions) are NOT included here; those need a detail fetch.
type BoardJob struct {
	ID            int64    `json:"id"`
	InternalJobID int64    `json:"internal_job_id"`
	Title         string   `json:"title"`
	UpdatedAt     string   `json:"updated_at"`
	RequisitionID string   `json:"requisition_id"`
	AbsoluteURL   string   `json:"absolute_url"`
	Location      Location `json:"location"`
}

type Department struct {
	ID   int64      `json:"id"`
	Name string     `json:"name"`
	Jobs []BoardJob `json:"jobs"`
}

type Office struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	ChildIDs    []int64      `json:"child_ids"`
	Departments []Department `json:"departments"`
}

type officesResponse struct {
	Offices []Office `json:"offices"`
}

// JobDetail is the second, per-job fetch: the list payload plus free-text
// content and screening questions. Questions stay raw JSON — the cache
// stores them opaquely and never looks inside.
type JobDetail struct {
	ID             int64           `json:"id"`
	InternalJobID  int64           `json:"internal_job_id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	AbsoluteURL    string          `json:"absolute_url"`
	UpdatedAt      string          `json:"updated_at"`
	FirstPublished string          `json:"first_published"`
	RequisitionID  string          `json:"requisition_id"`
	CompanyName    string          `json:"company_name"`
	Location       Location        `json:"location"`
	Offices        []Office        `json:"offices"`
	Departments    []Department    `json:"departments"`
	Questions      json.RawMessage `json:"questions"`
}

// ApplicationResult is the upstream response to a submitted application,
// proxied back to the caller as-is.
type ApplicationResult struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

// Posting attributes one deduplicated job to the office/department pair it
// was first seen under in traversal order.
type Posting struct {
	OfficeID       int64
	OfficeName     string
	DepartmentID   int64
	DepartmentName string
	Job            BoardJob
}

// greenhouseTime is the offset layout the board API uses when a timestamp
// is not strict RFC3339 ("2021-06-25T09:35:43-0400").
const greenhouseTime = "2006-01-02T15:04:05Z0700"

// ParseTime parses a board API timestamp, returning nil when the value is
// empty or unparseable rather than failing the sync over one bad field.
func ParseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, greenhouseTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
