package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
	"github.com/maxviazov/wrestling-analytics-service/pkg/response"
)

// AnalyticsHandler serves the cross-wrestler chart series and the dashboard.
type AnalyticsHandler struct {
	charts    service.AnalyticsService
	dashboard service.DashboardService
}

func NewAnalyticsHandler(charts service.AnalyticsService, dashboard service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{charts: charts, dashboard: dashboard}
}

func (h *AnalyticsHandler) Register(r *gin.RouterGroup) {
	r.GET("/performance", h.performance)
	r.GET("/win-types", h.winTypes)
	r.GET("/dashboard", h.overview)
}

// performance accepts an optional wrestler_id to narrow the series.
func (h *AnalyticsHandler) performance(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	points, err := h.charts.Performance(ctx, optionalQuery(c, "wrestler_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, points)
}

func (h *AnalyticsHandler) winTypes(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	types, err := h.charts.WinTypes(ctx, optionalQuery(c, "wrestler_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, types)
}

func (h *AnalyticsHandler) overview(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	out, err := h.dashboard.Overview(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}
