package dtos

// ApplicationRequest is the body of POST /greenhouse/apply. FormData is
// forwarded to the Harvest API untouched, so its keys follow whatever the
// configured application form collects.
type ApplicationRequest struct {
	JobID    int64          `json:"jobId" binding:"required"`
	FormData map[string]any `json:"formData" binding:"required"`
}

// PinJobRequest is the body of POST /greenhouse/jobs, the manual flow for
// caching a single job by its board identifier.
type PinJobRequest struct {
	JobID int64 `json:"jobId" binding:"required"`
}
