// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bsfdm/fdm"
	"github.com/katalvlaran/bsfdm/tridiag"
)

const namespace = "bsfdm"

// explicitSolver labels runs that never call a linear solver.
const explicitSolver = "none"

// Recorder implements fdm.Observer on top of a private Prometheus registry.
type Recorder struct {
	reg          *prometheus.Registry
	pricings     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	sweeps       *prometheus.HistogramVec
	nonConverged *prometheus.CounterVec
}

var _ fdm.Observer = (*Recorder)(nil)

// NewRecorder creates and registers the collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		pricings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricings_total",
			Help:      "Completed pricing calls.",
		}, []string{"scheme", "solver", "style"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pricing_duration_seconds",
			Help:      "Wall time of one pricing call.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"scheme"}),
		sweeps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_sweeps",
			Help:      "Sweeps per tridiagonal solve.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}, []string{"solver"}),
		nonConverged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_nonconverged_total",
			Help:      "Solves that ran out of sweeps before reaching tolerance.",
		}, []string{"solver"}),
	}
	r.reg.MustRegister(r.pricings, r.duration, r.sweeps, r.nonConverged)

	return r
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObservePricing implements fdm.Observer.
func (r *Recorder) ObservePricing(scheme fdm.Scheme, solver string, style fdm.ExerciseStyle, elapsed time.Duration) {
	if solver == "" {
		solver = explicitSolver
	}
	r.pricings.WithLabelValues(scheme.String(), solver, style.String()).Inc()
	r.duration.WithLabelValues(scheme.String()).Observe(elapsed.Seconds())
}

// ObserveSolve implements fdm.Observer.
func (r *Recorder) ObserveSolve(solver string, st tridiag.Stats) {
	r.sweeps.WithLabelValues(solver).Observe(float64(st.Sweeps))
	if !st.Converged {
		r.nonConverged.WithLabelValues(solver).Inc()
	}
}

// Sample is one flattened series. Histograms contribute two samples,
// <name>_count and <name>_sum.
type Sample struct {
	Name   string
	Labels string // k=v pairs joined by ',' in label-name order
	Value  float64
}

// Key renders the series identity, name{labels}.
func (s Sample) Key() string {
	if s.Labels == "" {
		return s.Name
	}

	return s.Name + "{" + s.Labels + "}"
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %g", s.Key(), s.Value)
}

// Snapshot gathers the registry and flattens it into samples sorted by name
// and labels.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("Snapshot: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			labels := strings.Join(pairs, ",")

			switch {
			case m.GetCounter() != nil:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetCounter().GetValue()})
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				out = append(out,
					Sample{Name: name + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: name + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			case m.GetGauge() != nil:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetGauge().GetValue()})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})

	return out, nil
}
