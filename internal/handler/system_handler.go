package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/pkg/response"
)

const welcomeMessage = "Welcome to the Student Management API"

type systemMetrics interface {
	Handler() http.Handler
	Snapshot() models.SystemMetrics
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SystemHandler exposes the welcome, info, probe and metrics endpoints.
type SystemHandler struct {
	version string
	metrics systemMetrics
	db      Pinger
}

// NewSystemHandler constructs SystemHandler. metrics and db may be nil.
func NewSystemHandler(version string, metrics systemMetrics, db Pinger) *SystemHandler {
	return &SystemHandler{version: version, metrics: metrics, db: db}
}

// Welcome godoc
// @Summary Welcome message
// @Tags System
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *SystemHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

// Info godoc
// @Summary Version and runtime counters
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	payload := gin.H{"version": h.version}
	if h.metrics != nil {
		payload["metrics"] = h.metrics.Snapshot()
	}
	response.OK(c, payload)
}

// Health responds with a generic OK payload for liveness probes.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports ready only while the database answers.
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
