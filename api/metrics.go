package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metricsRegistry struct {
	registry      *prometheus.Registry
	requestsTotal *prometheus.CounterVec
}

func newMetricsRegistry() *metricsRegistry {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_bridge_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"route", "status"})

	r := prometheus.NewRegistry()
	r.MustRegister(requests)

	return &metricsRegistry{
		registry:      r,
		requestsTotal: requests,
	}
}

func (m *metricsRegistry) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metricsRegistry) incRequest(route string, status int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// middleware counts requests by route template and response status
func (m *metricsRegistry) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		m.incRequest(route, rec.status)
	})
}
