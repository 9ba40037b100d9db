package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/tree"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domgen").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "domgen",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records lowering and compilation events.
//
// Metrics collected:
//   - domgen_literals_total: literals lowered, by kind and status
//   - domgen_lower_duration_seconds: time to lower one literal, by kind
//   - domgen_instructions_total: runtime instructions emitted, by op
//   - domgen_templates_hoisted_total: hoisted template declarations
//   - domgen_units_total: compiled files, by status
//   - domgen_unit_duration_seconds: time to compile one file
//   - domgen_errors_total: reported errors, by code
type Metrics struct {
	literalsTotal    *prometheus.CounterVec
	lowerDuration    *prometheus.HistogramVec
	instructions     *prometheus.CounterVec
	templatesHoisted prometheus.Counter
	unitsTotal       *prometheus.CounterVec
	unitDuration     prometheus.Histogram
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the metrics with the configured registry. Each
// registry accepts one Metrics; create a fresh registry per instance.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		literalsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "literals_total",
			Help:        "Total number of markup literals lowered",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "status"}),

		lowerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "lower_duration_seconds",
			Help:        "Literal lowering duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		instructions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instructions_total",
			Help:        "Total number of runtime instructions emitted",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		templatesHoisted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "templates_hoisted_total",
			Help:        "Total number of hoisted template declarations",
			ConstLabels: config.ConstLabels,
		}),

		unitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "units_total",
			Help:        "Total number of files compiled",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		unitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "unit_duration_seconds",
			Help:        "File compilation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of reported errors by code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),
	}
}

// LiteralLowered records one lowered literal.
func (m *Metrics) LiteralLowered(kind tree.LiteralKind, elapsed time.Duration, err error) {
	m.lowerDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
	m.literalsTotal.WithLabelValues(kind.String(), status(err)).Inc()
	m.recordErrors(err)
}

// InstructionEmitted records one emitted runtime call.
func (m *Metrics) InstructionEmitted(op string) {
	m.instructions.WithLabelValues(op).Inc()
}

// TemplateHoisted records one hoisted template declaration.
func (m *Metrics) TemplateHoisted() {
	m.templatesHoisted.Inc()
}

// UnitCompiled records one compiled file. Literal errors are already
// counted by LiteralLowered; only errors raised outside lowering are
// counted here.
func (m *Metrics) UnitCompiled(_ string, elapsed time.Duration, err error) {
	m.unitDuration.Observe(elapsed.Seconds())
	m.unitsTotal.WithLabelValues(status(err)).Inc()
	for _, code := range errors.Codes(err) {
		if unitLevel[code] {
			m.errorsTotal.WithLabelValues(code).Inc()
		}
	}
}

// unitLevel are codes raised by compilation itself rather than lowering.
var unitLevel = map[string]bool{"E107": true, "E108": true, "E109": true}

func (m *Metrics) recordErrors(err error) {
	if err == nil {
		return
	}
	codes := errors.Codes(err)
	if len(codes) == 0 {
		codes = []string{"internal"}
	}
	for _, code := range codes {
		m.errorsTotal.WithLabelValues(code).Inc()
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
