// Package metrics expõe os contadores Prometheus da aplicação.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Ingestão
	IngestionsTotal   *prometheus.CounterVec
	RowsIngestedTotal prometheus.Counter
	RowsDroppedTotal  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duração das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		IngestionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_ingestions_total",
				Help: "Total de uploads de dataset, por resultado",
			},
			[]string{"status"},
		),

		RowsIngestedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dataset_rows_ingested_total",
				Help: "Total de linhas válidas normalizadas",
			},
		),

		RowsDroppedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dataset_rows_dropped_total",
				Help: "Total de linhas descartadas por falta de data",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordIngestion registra o resultado de um upload e as contagens de linhas.
func (m *Metrics) RecordIngestion(status string, validRows, droppedRows int) {
	m.IngestionsTotal.WithLabelValues(status).Inc()
	m.RowsIngestedTotal.Add(float64(validRows))
	m.RowsDroppedTotal.Add(float64(droppedRows))
}
