// Package metrics expone contadores Prometheus del motor, las notificaciones y la sincronización.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

const namespace = "inventario"

// Metrics registro propio (no el global) para poder instanciarlo en tests.
// Implementa los Recorder de inventory, notification y cloudsync.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	toasts     *prometheus.CounterVec
	syncs      *prometheus.CounterVec
	alerts     *prometheus.GaugeVec
}

// New registra todas las series.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_operations_total",
			Help:      "Mutaciones aplicadas por el motor de stock.",
		}, []string{"operation"}),
		toasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toasts_total",
			Help:      "Notificaciones mostradas por tipo.",
		}, []string{"type"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_batches_total",
			Help:      "Lotes de sincronización por resultado.",
		}, []string{"outcome"}),
		alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock_alerts",
			Help:      "Alertas de stock vigentes por tipo.",
		}, []string{"type"}),
	}
	m.registry.MustRegister(
		m.operations, m.toasts, m.syncs, m.alerts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.alerts.WithLabelValues(string(entity.AlertLow)).Set(0)
	m.alerts.WithLabelValues(string(entity.AlertOut)).Set(0)
	return m
}

// Operation cuenta una mutación del motor.
func (m *Metrics) Operation(name string) {
	m.operations.WithLabelValues(name).Inc()
}

// Alerts actualiza el gauge con el conjunto vigente.
func (m *Metrics) Alerts(alerts []entity.Alert) {
	var low, out float64
	for _, a := range alerts {
		if a.Type == entity.AlertOut {
			out++
		} else {
			low++
		}
	}
	m.alerts.WithLabelValues(string(entity.AlertLow)).Set(low)
	m.alerts.WithLabelValues(string(entity.AlertOut)).Set(out)
}

// ToastShown cuenta una notificación.
func (m *Metrics) ToastShown(kind entity.ToastType) {
	m.toasts.WithLabelValues(string(kind)).Inc()
}

// SyncBatch cuenta un lote procesado.
func (m *Metrics) SyncBatch(outcome string) {
	m.syncs.WithLabelValues(outcome).Inc()
}

// Registry acceso al registro (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler HTTP en formato de exposición Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
