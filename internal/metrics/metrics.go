package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the applicants counter.
const (
	OutcomeAdmitted   = "admitted"
	OutcomeWaitlisted = "waitlisted"
)

// Recorder holds the collectors of ranking runs on its own registry, so a
// batch run exports only what it produced.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal       *prometheus.CounterVec
	applicantsTotal *prometheus.CounterVec
	programSeats    *prometheus.GaugeVec
	runDuration     *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admission_runs_total",
				Help: "Total number of ranking runs",
			},
			[]string{"strategy"},
		),

		applicantsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admission_applicants_total",
				Help: "Applicants ranked, by outcome",
			},
			[]string{"outcome"},
		),

		// kind is "quota" or "filled"
		programSeats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "admission_program_seats",
				Help: "Seats per program in the last run",
			},
			[]string{"program", "kind"},
		),

		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "admission_run_duration_seconds",
				Help:    "Ranking run duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"strategy"},
		),
	}
}

func (r *Recorder) RecordRun(strategy string, duration time.Duration) {
	r.runsTotal.WithLabelValues(strategy).Inc()
	r.runDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

func (r *Recorder) RecordApplicants(outcome string, n int) {
	r.applicantsTotal.WithLabelValues(outcome).Add(float64(n))
}

func (r *Recorder) SetProgramSeats(program string, quota, filled int) {
	r.programSeats.WithLabelValues(program, "quota").Set(float64(quota))
	r.programSeats.WithLabelValues(program, "filled").Set(float64(filled))
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current values in the text exposition format, for
// the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
