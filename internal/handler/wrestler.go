package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
	"github.com/maxviazov/wrestling-analytics-service/pkg/response"
)

type WrestlerHandler struct {
	svc    service.WrestlerService
	charts service.AnalyticsService
}

func NewWrestlerHandler(svc service.WrestlerService, charts service.AnalyticsService) *WrestlerHandler {
	return &WrestlerHandler{svc: svc, charts: charts}
}

func (h *WrestlerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/wrestlers")
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
		g.GET("/:id/matches", h.matches)
		g.GET("/:id/performance", h.performance)
		g.GET("/:id/win-types", h.winTypes)
	}
	r.GET("/weight-classes", h.weightClasses)
}

type listWrestlersQuery struct {
	Search      string `form:"search"`
	Team        string `form:"team"`
	WeightClass *int   `form:"weight_class"`
	MinMatches  int    `form:"min_matches"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (h *WrestlerHandler) list(c *gin.Context) {
	var q listWrestlersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "query", Message: "numeric parameters must be integers"}}))
		return
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	res, err := h.svc.ListWrestlersWithStats(ctx, analytics.WrestlerFilter{
		Search:      q.Search,
		Team:        strings.TrimSpace(q.Team),
		WeightClass: q.WeightClass,
		MinMatches:  q.MinMatches,
		SortBy:      strings.ToLower(strings.TrimSpace(q.SortBy)),
		SortOrder:   strings.ToLower(strings.TrimSpace(q.SortOrder)),
	}, repository.Page{Limit: q.Limit, Offset: q.Offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *WrestlerHandler) getByID(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	stats, err := h.svc.GetWrestlerStats(ctx, c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if stats == nil {
		response.WriteError(c, repository.ErrNotFound)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}

func (h *WrestlerHandler) matches(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	matches, err := h.svc.GetWrestlerMatches(ctx, c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, matches)
}

func (h *WrestlerHandler) performance(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	id := c.Param("id")
	points, err := h.charts.Performance(ctx, &id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, points)
}

func (h *WrestlerHandler) winTypes(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	id := c.Param("id")
	types, err := h.charts.WinTypes(ctx, &id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, types)
}

func (h *WrestlerHandler) weightClasses(c *gin.Context) {
	classes, err := h.svc.ListWeightClasses(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, classes)
}
