package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// Component is a named dependency probed by /ready and /health.
type Component struct {
	Name string
	// Required components fail readiness; optional ones only degrade /health.
	Required bool
	Ping     func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{components: components, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 when any required component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results := h.probe(r.Context())
	for _, c := range h.components {
		if c.Required && results[c.Name].Status != "ok" {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with its latency. A failed optional
// component yields "degraded" with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.probe(r.Context())

	overall := "ok"
	for _, c := range h.components {
		if results[c.Name].Status == "ok" {
			continue
		}
		if c.Required {
			overall = "down"
			break
		}
		overall = "degraded"
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: results,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]CompStatus, len(h.components))
	)
	for _, c := range h.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := c.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}
			mu.Lock()
			results[c.Name] = st
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}
