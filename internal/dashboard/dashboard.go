// Package dashboard turns the cached job set into the numbers and rows the
// admin widget shows. It is pure computation — no storage, no HTTP.
package dashboard

import (
	"sort"
	"time"

	"greenhouse-sync/internal/models"
)

// Summary is everything the admin widget renders.
type Summary struct {
	TotalJobs   int   `json:"totalJobs"`
	Departments int   `json:"departments"`
	Offices     int   `json:"offices"`
	Locations   int   `json:"locations"`
	Recent      []Row `json:"recent"`
}

// Row is one line of the recent-jobs table.
type Row struct {
	JobID      int64  `json:"jobId"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Office     string `json:"office"`
	Location   string `json:"location"`
	UpdatedAt  string `json:"updatedAt"`
}

// Summarize counts the distinct non-empty departments, offices and
// locations across the cached jobs and picks the limit most recently
// updated ones for the table. Jobs without a source timestamp sort last.
func Summarize(jobs []models.Job, limit int) Summary {
	departments := make(map[string]bool)
	offices := make(map[string]bool)
	locations := make(map[string]bool)
	for _, j := range jobs {
		if j.Department != "" {
			departments[j.Department] = true
		}
		if j.Office != "" {
			offices[j.Office] = true
		}
		if j.Location != "" {
			locations[j.Location] = true
		}
	}

	sorted := make([]models.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, k int) bool {
		return updatedOf(sorted[i]).After(updatedOf(sorted[k]))
	})
	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}

	recent := make([]Row, 0, limit)
	for _, j := range sorted[:limit] {
		row := Row{
			JobID:      j.JobID,
			Title:      j.Title,
			Department: j.Department,
			Office:     j.Office,
			Location:   j.Location,
		}
		if j.SourceUpdatedAt != nil {
			row.UpdatedAt = j.SourceUpdatedAt.Format("2006-01-02")
		}
		recent = append(recent, row)
	}

	return Summary{
		TotalJobs:   len(jobs),
		Departments: len(departments),
		Offices:     len(offices),
		Locations:   len(locations),
		Recent:      recent,
	}
}

func updatedOf(j models.Job) time.Time {
	if j.SourceUpdatedAt == nil {
		return time.Time{}
	}
	return *j.SourceUpdatedAt
}
