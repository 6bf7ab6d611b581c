package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// APIV1Prefix is the canonical base path for public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// serviceTimeout bounds every rollup; the heaviest ones read the whole match table.
const serviceTimeout = 10 * time.Second

func withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), serviceTimeout)
}

// optionalQuery returns nil for an absent or blank parameter.
func optionalQuery(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}
