package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is one cached job posting mirrored from the Greenhouse board.
// Documents are always replaced wholesale by the sync, never patched field
// by field, so every column simply mirrors the upstream value it came from.
// UpdatedAt doubles as the cache timestamp: the newest UpdatedAt across the
// table tells us when the cache was last written.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// JobID is the Greenhouse job identifier — the dedupe key. The same job
	// shows up under multiple offices upstream, but never twice in here.
	JobID int64 `gorm:"uniqueIndex;not null" json:"job_id"`

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	// Attribution: the office/department pair the job was first seen under.
	DepartmentID int64  `json:"department_id"`
	Department   string `json:"department"`
	OfficeID     int64  `json:"office_id"`
	Office       string `json:"office"`

	Location      string `json:"location"`
	AbsoluteURL   string `json:"absolute_url"`
	CompanyName   string `json:"company_name"`
	RequisitionID string `json:"requisition_id"`
	InternalJobID int64  `json:"internal_job_id"`

	PublishedAt     *time.Time `json:"published_at"`
	SourceUpdatedAt *time.Time `json:"source_updated_at"`

	// Questions carries the screening questions exactly as the board API
	// returned them. We never interpret them, only store and serve.
	Questions datatypes.JSON `gorm:"type:jsonb" json:"questions"`
}

// Setting is the persisted settings singleton — the lowest-priority
// configuration source (explicit options and environment variables win).
// Created once at startup if absent, read-mostly afterwards.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	URLToken        string `json:"url_token"`
	APIKey          string `json:"-"`
	CacheExpirySecs *int   `json:"cache_expiry_secs"`
	BoardType       string `json:"board_type"`
	FormType        string `json:"form_type"`
	CycleFx         string `json:"cycle_fx"`
}
