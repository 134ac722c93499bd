// Package metrics expone contadores Prometheus de las operaciones del punto de venta.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder cuenta operaciones confirmadas/rechazadas y guardados fallidos. Un *Recorder nil no registra nada.
type Recorder struct {
	operations   *prometheus.CounterVec
	saveFailures prometheus.Counter
}

// NewRecorder registra los contadores en reg; con reg nil devuelve un Recorder inerte.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_operations_total",
		Help: "Operaciones de escritura sobre el snapshot por resultado.",
	}, []string{"operation", "result"})
	saveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_snapshot_save_failures_total",
		Help: "Guardados del snapshot que fallaron.",
	})
	reg.MustRegister(operations, saveFailures)
	return &Recorder{operations: operations, saveFailures: saveFailures}
}

// Operation incrementa el contador de la operación con su resultado (OK o el código de rechazo).
func (r *Recorder) Operation(op, result string) {
	if r == nil || r.operations == nil {
		return
	}
	r.operations.WithLabelValues(normalizeLabel(op), normalizeLabel(result)).Inc()
}

// SaveFailed incrementa el contador de guardados fallidos.
func (r *Recorder) SaveFailed() {
	if r == nil || r.saveFailures == nil {
		return
	}
	r.saveFailures.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
