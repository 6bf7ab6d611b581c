package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
	"github.com/maxviazov/wrestling-analytics-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.GET("", h.list)
		g.GET("/names", h.names)
		g.GET("/comparison", h.comparison)
	}
}

func (h *TeamHandler) list(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	teams, err := h.svc.ListTeamsWithStats(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, teams)
}

func (h *TeamHandler) names(c *gin.Context) {
	names, err := h.svc.UniqueTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, names)
}

func (h *TeamHandler) comparison(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	rows, err := h.svc.TeamComparison(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, rows)
}
