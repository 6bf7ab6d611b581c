package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
	"github.com/maxviazov/wrestling-analytics-service/pkg/response"
)

type TournamentHandler struct {
	svc service.TournamentService
}

func NewTournamentHandler(svc service.TournamentService) *TournamentHandler {
	return &TournamentHandler{svc: svc}
}

func (h *TournamentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/tournaments")
	{
		g.GET("", h.list)
		// static segment registered next to the wildcard; gin prefers the exact match
		g.GET("/refs", h.refs)
		g.GET("/:id", h.details)
	}
}

func (h *TournamentHandler) list(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	stats, err := h.svc.ListTournamentsWithStats(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}

func (h *TournamentHandler) refs(c *gin.Context) {
	refs, err := h.svc.ListTournamentRefs(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, refs)
}

func (h *TournamentHandler) details(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	details, err := h.svc.GetTournamentDetails(ctx, c.Param("id"), c.Query("round"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if details == nil {
		response.WriteError(c, repository.ErrNotFound)
		return
	}
	response.WriteData(c, http.StatusOK, details)
}
