package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// CalculationMetrics counts and times engine invocations by interest type
// and operation.
type CalculationMetrics struct {
	Calculations *prometheus.CounterVec
	Errors       *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
}

// NewCalculationMetrics registers the calculation instruments on the default
// Prometheus registry.
func NewCalculationMetrics() *CalculationMetrics {
	return &CalculationMetrics{
		Calculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loanengine_calculations_total",
			Help: "Completed calculations by operation and interest type.",
		}, []string{"operation", "interest_type"}),
		Errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loanengine_calculation_errors_total",
			Help: "Failed calculations by operation and error kind.",
		}, []string{"operation", "kind"}),
		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loanengine_calculation_duration_seconds",
			Help:    "Calculation latency by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
