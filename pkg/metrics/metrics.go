// Package metrics 通过 /metrics 暴露的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics 服务更新的指标集合
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DutiesRecorded  *prometheus.CounterVec
	PeopleCreated   prometheus.Counter
}

// New 在新 registry 上注册全部指标，含 Go 运行时与进程指标
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stargate",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stargate",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DutiesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stargate",
			Name:      "astronaut_duties_recorded_total",
			Help:      "Astronaut duties recorded, split by whether the duty retires the person.",
		}, []string{"retired"}),
		PeopleCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stargate",
			Name:      "people_created_total",
			Help:      "People created.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.DutiesRecorded,
		m.PeopleCreated,
	)

	return m
}

// Registry 供 HTTP handler 使用的 registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDutyRecorded 任职登记计数，nil 接收者安全
func (m *Metrics) ObserveDutyRecorded(retired bool) {
	if m == nil {
		return
	}
	label := "false"
	if retired {
		label = "true"
	}
	m.DutiesRecorded.WithLabelValues(label).Inc()
}

// ObservePersonCreated 人员创建计数，nil 接收者安全
func (m *Metrics) ObservePersonCreated() {
	if m == nil {
		return
	}
	m.PeopleCreated.Inc()
}
