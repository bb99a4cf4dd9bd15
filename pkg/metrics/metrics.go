package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amoylab/inventory/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus collectors on a private registry
type Metrics struct {
	registry   *prometheus.Registry
	namespace  string
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   *prometheus.GaugeVec
	mutations  *prometheus.CounterVec
	logins     *prometheus.CounterVec
	reportDur  prometheus.Histogram
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "entity_mutations_total"}, []string{"entity", "action", "result"})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "login_attempts_total"}, []string{"result"})
	reportDur := prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: ns, Name: "report_build_duration_seconds", Buckets: buckets})
	r.MustRegister(mutations, logins, reportDur)

	return &Metrics{
		registry:   r,
		namespace:  ns,
		httpReqCnt: httpReqCnt,
		httpDur:    httpDur,
		httpInfl:   httpInfl,
		mutations:  mutations,
		logins:     logins,
		reportDur:  reportDur,
	}
}

// EntityMutation records a create, update or delete on an entity kind.
// A nil receiver is a no-op so callers may run without metrics.
func (m *Metrics) EntityMutation(entity, action string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(entity, action, result(err)).Inc()
}

// LoginAttempt records the outcome of a sign-in
func (m *Metrics) LoginAttempt(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.logins.WithLabelValues("success").Inc()
		return
	}
	m.logins.WithLabelValues("failure").Inc()
}

// ReportBuilt observes the time spent assembling the dashboard
func (m *Metrics) ReportBuilt(since time.Time) {
	if m == nil {
		return
	}
	m.reportDur.Observe(time.Since(since).Seconds())
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := httpStatus(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func httpStatus(code int) string { return strconv.Itoa(code) }
