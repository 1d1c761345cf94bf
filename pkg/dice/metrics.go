package dice

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Faultbox/dicer/pkg/dice/shape"
)

// Metrics collects generation and roll statistics. A nil *Metrics records
// nothing.
type Metrics struct {
	generated          *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	triangles          *prometheus.GaugeVec
	rolls              *prometheus.CounterVec
}

// NewMetrics registers the dice collectors with reg under namespace.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dice_generated_total",
				Help:      "Total number of generated die meshes",
			},
			[]string{"shape"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dice_generation_duration_seconds",
				Help:      "Die mesh generation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"shape"},
		),
		triangles: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dice_triangles",
				Help:      "Triangle count of the last generated mesh",
			},
			[]string{"shape"},
		),
		rolls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dice_rolls_total",
				Help:      "Total number of rolled sides by numeral",
			},
			[]string{"shape", "side"},
		),
	}
}

func (m *Metrics) recordGeneration(kind shape.Kind, triangles int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(kind.String()).Inc()
	m.generationDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
	m.triangles.WithLabelValues(kind.String()).Set(float64(triangles))
}

func (m *Metrics) recordRoll(kind shape.Kind, side int) {
	if m == nil {
		return
	}
	m.rolls.WithLabelValues(kind.String(), strconv.Itoa(side)).Inc()
}
