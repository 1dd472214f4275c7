package handlers

import (
	"html/template"
	"log"
	"net/http"

	"greenhouse-sync/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthCheck is the GET /health endpoint
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// NewRouter wires every endpoint. With the integration disabled only health
// and API docs stay up; with just the dashboard disabled the JSON API keeps
// working and only the widget routes are skipped.
func NewRouter(cfg config.Config, gh *GreenhouseHandler, dash *DashboardHandler) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", HealthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Disabled {
		log.Println("⚠️ Greenhouse integration disabled, serving health and docs only")
		return r
	}

	api := r.Group("/greenhouse")
	{
		api.GET("/jobs", gh.ListJobs)
		api.POST("/jobs", gh.PinJob)
		api.POST("/apply", gh.Apply)
		api.POST("/clear-cache", gh.ClearCache)
		api.GET("/debug", gh.Debug)
	}

	if !cfg.DisableDashboard {
		r.SetHTMLTemplate(template.Must(template.New("dashboard").Parse(dashboardTemplate)))
		api.GET("/dashboard", dash.Show)
		api.POST("/dashboard/refresh", dash.Refresh)
	}

	return r
}
