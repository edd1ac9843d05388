package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/internal/service"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestSystemHandlerWelcome(t *testing.T) {
	r := newTestRouter(Handlers{System: NewSystemHandler("1.0.0", nil, nil)})

	w := perform(r, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, welcomeMessage, w.Body.String())
}

func TestSystemHandlerInfoIncludesSnapshot(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordMutation("student", "create")
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/v1/students", http.StatusOK, 10*time.Millisecond)
	r := newTestRouter(Handlers{System: NewSystemHandler("1.2.3", metrics, nil)})

	w := perform(r, http.MethodGet, "/info", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data struct {
			Version string               `json:"version"`
			Metrics models.SystemMetrics `json:"metrics"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "1.2.3", env.Data.Version)
	assert.Equal(t, uint64(1), env.Data.Metrics.RequestsTotal)
	assert.Equal(t, uint64(1), env.Data.Metrics.Mutations["student.create"])
}

func TestSystemHandlerReady(t *testing.T) {
	healthy := newTestRouter(Handlers{System: NewSystemHandler("dev", nil, pingerFunc(func(context.Context) error { return nil }))})
	w := perform(healthy, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())

	down := newTestRouter(Handlers{System: NewSystemHandler("dev", nil, pingerFunc(func(context.Context) error { return errors.New("connection refused") }))})
	w = perform(down, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSystemHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordMutation("course", "delete")
	r := newTestRouter(Handlers{System: NewSystemHandler("dev", metrics, nil)})

	w := perform(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `entity_mutations_total{entity="course",operation="delete"} 1`)

	bare := newTestRouter(Handlers{System: NewSystemHandler("dev", nil, nil)})
	w = perform(bare, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
