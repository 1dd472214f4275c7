package handlers

import (
	"errors"
	"net/http"

	"greenhouse-sync/internal/dtos"
	"greenhouse-sync/internal/greenhouse"
	"greenhouse-sync/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GreenhouseHandler exposes the board mirror over REST.
type GreenhouseHandler struct {
	Sync         *services.SyncService
	Applications *services.ApplicationService
}

// NewGreenhouseHandler creates the handler with dependencies
func NewGreenhouseHandler(sync *services.SyncService, applications *services.ApplicationService) *GreenhouseHandler {
	return &GreenhouseHandler{
		Sync:         sync,
		Applications: applications,
	}
}

// ListJobs is the GET /greenhouse/jobs endpoint
// @Summary List job postings
// @Description Returns the cached job postings, syncing from Greenhouse first when the cache is stale or refresh=true
// @Tags jobs
// @Produce json
// @Param refresh query bool false "Force a fresh sync before answering"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /greenhouse/jobs [get]
func (h *GreenhouseHandler) ListJobs(c *gin.Context) {
	force := c.Query("refresh") == "true"

	jobs, refreshed, err := h.Sync.JobsWithCache(c.Request.Context(), force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"totalJobs": len(jobs),
		"refreshed": refreshed,
	})
}

// PinJob is the POST /greenhouse/jobs endpoint
// @Summary Cache one job by hand
// @Description Validates the identifier against the live board, then caches that single job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dtos.PinJobRequest true "Job identifier"
// @Success 201 {object} models.Job
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /greenhouse/jobs [post]
func (h *GreenhouseHandler) PinJob(c *gin.Context) {
	var req dtos.PinJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Sync.PinJob(c.Request.Context(), req.JobID)
	if err != nil {
		switch {
		case greenhouse.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found on the configured board"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "job is already cached"})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Apply is the POST /greenhouse/apply endpoint
// @Summary Submit an application
// @Description Forwards the application to Greenhouse Harvest and proxies back whatever status and body it answers
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dtos.ApplicationRequest true "Job identifier and form fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /greenhouse/apply [post]
func (h *GreenhouseHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.Applications.Submit(c.Request.Context(), req.JobID, req.FormData)
	if err != nil {
		var apiErr *greenhouse.APIError
		switch {
		case errors.Is(err, services.ErrAPIKeyMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &apiErr):
			// Upstream refused: hand its status and body back untouched so
			// the caller sees exactly what Greenhouse said (field errors,
			// closed posting, bad key).
			c.Data(apiErr.StatusCode, "application/json", []byte(apiErr.Body))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "application submission failed"})
		}
		return
	}
	c.Data(result.StatusCode, "application/json", result.Body)
}

// ClearCache is the POST /greenhouse/clear-cache endpoint
// @Summary Clear the job cache
// @Description Deletes every cached job document and reports how many were removed
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /greenhouse/clear-cache [post]
func (h *GreenhouseHandler) ClearCache(c *gin.Context) {
	removed, err := h.Sync.ClearCache(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobsRemoved": removed})
}

// Debug is the GET /greenhouse/debug endpoint
// @Summary Inspect the live board
// @Description Fetches and flattens the board tree without touching the cache, so an operator can verify job identifiers
// @Tags jobs
// @Produce json
// @Success 200 {object} services.DebugReport
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /greenhouse/debug [get]
func (h *GreenhouseHandler) Debug(c *gin.Context) {
	report, err := h.Sync.DebugSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// respondError maps service errors onto the wire: configuration problems are
// the caller's fault (400), upstream refusals keep their status with a
// readable hint, and anything unexpected stays a generic 500 so no internals
// leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTokenMissing), errors.Is(err, services.ErrAPIKeyMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case greenhouse.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "board or job not found upstream; check the board token"})
	case greenhouse.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "upstream rejected the configured credentials"})
	default:
		if status := greenhouse.StatusOf(err); status != 0 {
			c.JSON(status, gin.H{"error": "upstream error"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
