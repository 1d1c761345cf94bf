package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Faultbox/dicer/internal/logger"
	"github.com/Faultbox/dicer/pkg/dice"
)

// runStats owns a private registry for one command run.
type runStats struct {
	registry *prometheus.Registry
	metrics  *dice.Metrics
}

// newStats returns an inactive runStats when enabled is false.
func newStats(enabled bool) *runStats {
	if !enabled {
		return &runStats{}
	}
	reg := prometheus.NewRegistry()
	return &runStats{registry: reg, metrics: dice.NewMetrics("dicer", reg)}
}

// print writes one line per collected series to stderr.
func (s *runStats) print() {
	if s.registry == nil {
		return
	}

	families, err := s.registry.Gather()
	if err != nil {
		logger.Error("gathering metrics failed", zap.Error(err))
		return
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			series := fmt.Sprintf("%s{%s}", mf.GetName(), strings.Join(labels, ","))

			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%gs", series, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}

	sort.Strings(lines)
	fmt.Fprintln(os.Stderr)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}
