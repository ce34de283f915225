// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the supervisor's Prometheus surface.
type Metrics struct {
	registry *prometheus.Registry

	Cycles        prometheus.Counter
	Transitions   *prometheus.CounterVec
	SensorRetries prometheus.Counter
	PersistErrors prometheus.Counter

	CurrentMode      prometheus.Gauge
	AngularRate      prometheus.Gauge
	SunError         prometheus.Gauge
	PointingError    prometheus.Gauge
	HighRateStreak   prometheus.Gauge
	SensorFailStreak prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adcs_cycles_total",
			Help: "Control cycles executed",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adcs_mode_transitions_total",
			Help: "Mode transitions by from/to mode",
		}, []string{"from", "to"}),
		SensorRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adcs_sensor_retries_total",
			Help: "Sensor check attempts that failed and were retried",
		}),
		PersistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adcs_persist_errors_total",
			Help: "State save failures",
		}),
		CurrentMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_mode",
			Help: "Current control mode as its enum value",
		}),
		AngularRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_angular_rate_deg_s",
			Help: "Last sampled angular rate",
		}),
		SunError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_sun_error_deg",
			Help: "Last sampled sun-pointing error",
		}),
		PointingError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_pointing_error_deg",
			Help: "Last sampled attitude error",
		}),
		HighRateStreak: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_high_rate_streak",
			Help: "Consecutive high-rate cycles",
		}),
		SensorFailStreak: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adcs_sensor_fail_streak",
			Help: "Consecutive failed sensor-check cycles",
		}),
	}

	m.registry.MustRegister(
		m.Cycles,
		m.Transitions,
		m.SensorRetries,
		m.PersistErrors,
		m.CurrentMode,
		m.AngularRate,
		m.SunError,
		m.PointingError,
		m.HighRateStreak,
		m.SensorFailStreak,
	)

	return m
}

// Handler returns the scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve blocks serving /metrics on addr.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
