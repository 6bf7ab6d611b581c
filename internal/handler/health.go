package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the minimal contract I need from a repository to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	repo Pinger
}

func NewHealthHandler(repo Pinger) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports whether the store answers. The API keeps serving empty results
// while it doesn't, so this only steers traffic; it never gates startup.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "no store"})
		return
	}
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
