package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency probed by /readyz
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

// readinessTimeout bounds a single readiness probe
const readinessTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK while the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz pings every dependency concurrently and reports each result.
// Any failed check makes the whole probe unavailable.
// @Summary Readiness check
// @Description Returns OK once the ledger store and replay cache answer a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var mu sync.Mutex
		results := make(map[string]string, len(checks))
		failed := false

		// errgroup without WithContext: one slow check must not cancel the others
		var g errgroup.Group
		for _, c := range checks {
			c := c
			if c.Pinger == nil {
				continue
			}
			g.Go(func() error {
				err := c.Pinger.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failed = true
					results[c.Name] = HealthStatusUnavailable
					logger.FromContext(ctx).Error(ActionReadinessPing+" failed", "check", c.Name, "error", err)
					return nil
				}
				results[c.Name] = HealthStatusOK
				return nil
			})
		}
		_ = g.Wait()

		if failed {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgStoreDown,
				Checks:  results,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, Checks: results})
	}
}
