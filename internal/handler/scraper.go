package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/scraper"
	"github.com/maxviazov/wrestling-analytics-service/pkg/response"
	"github.com/rs/zerolog/log"
)

// ScraperLauncher is the part of scraper.Launcher the HTTP layer uses.
type ScraperLauncher interface {
	Launch(ctx context.Context, trigger string) (scraper.Run, error)
	Last() (scraper.Run, bool)
	Enabled() bool
}

type ScraperHandler struct {
	launcher ScraperLauncher
}

func NewScraperHandler(launcher ScraperLauncher) *ScraperHandler {
	return &ScraperHandler{launcher: launcher}
}

func (h *ScraperHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/scraper")
	{
		g.GET("", h.status)
		g.POST("/run", h.run)
	}
}

type runResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PID       int    `json:"pid"`
	RunID     string `json:"run_id"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
}

func (h *ScraperHandler) run(c *gin.Context) {
	if h.launcher == nil {
		response.WriteError(c, scraper.ErrDisabled)
		return
	}
	run, err := h.launcher.Launch(c.Request.Context(), "api")
	if err != nil {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("scraper launch rejected")
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, runResponse{
		Success:   true,
		Message:   "Scraper started successfully",
		PID:       run.PID,
		RunID:     run.ID,
		Status:    string(run.Status),
		StartTime: run.StartTime.Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

type statusResponse struct {
	Message   string            `json:"message"`
	Enabled   bool              `json:"enabled"`
	Endpoints map[string]string `json:"endpoints"`
	LastRun   *scraper.Run      `json:"last_run,omitempty"`
}

func (h *ScraperHandler) status(c *gin.Context) {
	out := statusResponse{
		Message: "Scraper API is running",
		Endpoints: map[string]string{
			"POST " + APIV1Prefix + "/scraper/run": "Start the scraper process",
		},
	}
	if h.launcher != nil {
		out.Enabled = h.launcher.Enabled()
		if run, ok := h.launcher.Last(); ok {
			out.LastRun = &run
		}
	}
	response.WriteData(c, http.StatusOK, out)
}
