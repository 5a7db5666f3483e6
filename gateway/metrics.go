package gateway

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds gateway-level Prometheus instrumentation. All observers
// are nil-safe so an uninstrumented Gateway costs nothing.
type Metrics struct {
	CheckpointsTotal *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	WarningsTotal    *prometheus.CounterVec
}

// NewMetrics creates the gateway metric set.
func NewMetrics() *Metrics {
	return &Metrics{
		CheckpointsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semvocab",
				Subsystem: "gateway",
				Name:      "checkpoints_total",
				Help:      "Total checkpoint validations by stage and result",
			},
			[]string{"stage", "result"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semvocab",
				Subsystem: "gateway",
				Name:      "errors_total",
				Help:      "Total validation errors by rule id",
			},
			[]string{"rule"},
		),
		WarningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semvocab",
				Subsystem: "gateway",
				Name:      "warnings_total",
				Help:      "Total validation warnings by rule id",
			},
			[]string{"rule"},
		),
	}
}

// Register registers all collectors with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.CheckpointsTotal, m.ErrorsTotal, m.WarningsTotal} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observeCheckpoint(result CheckpointResult) {
	if m == nil {
		return
	}
	outcome := "passed"
	if !result.Passed {
		outcome = "failed"
	}
	m.CheckpointsTotal.WithLabelValues(string(result.Stage), outcome).Inc()
}

func (m *Metrics) observeError(e ValidationError) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(e.RuleID).Inc()
}

func (m *Metrics) observeWarning(w ValidationError) {
	if m == nil {
		return
	}
	m.WarningsTotal.WithLabelValues(w.RuleID).Inc()
}
