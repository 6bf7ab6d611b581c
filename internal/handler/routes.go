package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
)

// Dependencies are the collaborators the HTTP layer needs. Nil services leave their
// routes mounted; calling them panics, so only tests pass nil.
type Dependencies struct {
	Pinger      Pinger
	Wrestlers   service.WrestlerService
	Teams       service.TeamService
	Tournaments service.TournamentService
	Analytics   service.AnalyticsService
	Dashboard   service.DashboardService
	Scraper     ScraperLauncher
	// Metrics is mounted at MetricsPath when both are set.
	Metrics     http.Handler
	MetricsPath string
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, deps Dependencies) {
	h := NewHealthHandler(deps.Pinger)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)
	if deps.Metrics != nil && deps.MetricsPath != "" {
		r.GET(deps.MetricsPath, gin.WrapH(deps.Metrics))
	}

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewWrestlerHandler(deps.Wrestlers, deps.Analytics).Register(api)
		NewTeamHandler(deps.Teams).Register(api)
		NewTournamentHandler(deps.Tournaments).Register(api)
		NewAnalyticsHandler(deps.Analytics, deps.Dashboard).Register(api)
		NewScraperHandler(deps.Scraper).Register(api)
	}
}
