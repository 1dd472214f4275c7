package handlers

import (
	"net/http"

	"greenhouse-sync/internal/dashboard"
	"greenhouse-sync/internal/services"

	"github.com/gin-gonic/gin"
)

// dashboardTemplate renders the admin widget: headline counts, the most
// recently updated postings, and a refresh action.
const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Greenhouse Jobs</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #1f2933; }
.counts { display: flex; gap: 1.5rem; margin: 1rem 0; }
.counts div { background: #f0f4f8; padding: 0.75rem 1.25rem; border-radius: 6px; }
.counts strong { display: block; font-size: 1.6rem; }
table { border-collapse: collapse; margin-top: 1rem; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #d9e2ec; }
button { padding: 0.5rem 1rem; cursor: pointer; }
</style>
</head>
<body>
<h1>Greenhouse Job Board</h1>
<div class="counts">
<div><strong>{{.TotalJobs}}</strong> jobs</div>
<div><strong>{{.Departments}}</strong> departments</div>
<div><strong>{{.Offices}}</strong> offices</div>
<div><strong>{{.Locations}}</strong> locations</div>
</div>
<form method="POST" action="/greenhouse/dashboard/refresh">
<button type="submit">Refresh from Greenhouse</button>
</form>
<table>
<tr><th>Title</th><th>Department</th><th>Office</th><th>Location</th><th>Updated</th></tr>
{{range .Recent}}<tr><td>{{.Title}}</td><td>{{.Department}}</td><td>{{.Office}}</td><td>{{.Location}}</td><td>{{.UpdatedAt}}</td></tr>
{{else}}<tr><td colspan="5">No jobs cached yet. Hit refresh to pull the board.</td></tr>
{{end}}</table>
</body>
</html>
`

// DashboardHandler serves the admin widget. It reads through the same
// cache path as the JSON API, so a fresh cache renders without an
// upstream call.
type DashboardHandler struct {
	Sync *services.SyncService
	Rows int
}

func NewDashboardHandler(sync *services.SyncService, rows int) *DashboardHandler {
	return &DashboardHandler{Sync: sync, Rows: rows}
}

// Show is the GET /greenhouse/dashboard endpoint
// @Summary Admin dashboard
// @Description Renders headline counts and the most recently updated postings
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /greenhouse/dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	jobs, _, err := h.Sync.JobsWithCache(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard", dashboard.Summarize(jobs, h.Rows))
}

// Refresh is the POST /greenhouse/dashboard/refresh endpoint
// @Summary Refresh the cache from the dashboard
// @Description Forces a full sync and sends the browser back to the dashboard
// @Tags dashboard
// @Success 303 {string} string "redirect"
// @Failure 400 {object} map[string]string
// @Router /greenhouse/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if _, _, err := h.Sync.JobsWithCache(c.Request.Context(), true); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/greenhouse/dashboard")
}
