package sim

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// resultGauges are the per-run gauges written by WriteMetrics.
type resultGauges struct {
	references *prometheus.GaugeVec
	faults     *prometheus.GaugeVec
	hits       *prometheus.GaugeVec
	evictions  *prometheus.GaugeVec
	hitRatio   *prometheus.GaugeVec
	best       *prometheus.GaugeVec
}

func newResultGauges(reg *prometheus.Registry) *resultGauges {
	labels := []string{"policy", "capacity"}
	gauge := func(name, help string) *prometheus.GaugeVec {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pagesim",
			Subsystem: "simulation",
			Name:      name,
			Help:      help,
		}, labels)
		reg.MustRegister(g)
		return g
	}
	return &resultGauges{
		references: gauge("references", "Number of page references simulated."),
		faults:     gauge("page_faults", "Number of references that missed the resident set."),
		hits:       gauge("page_hits", "Number of references served by a resident page."),
		evictions:  gauge("evictions", "Number of faults that displaced a resident page."),
		hitRatio:   gauge("hit_ratio", "Fraction of references that hit, in [0, 1]."),
		best:       gauge("best_policy", "1 if the policy had the fewest faults in its comparison, else 0."),
	}
}

func (g *resultGauges) observe(r *SimulationResult) {
	labels := []string{string(r.Policy), strconv.Itoa(r.Capacity)}
	g.references.WithLabelValues(labels...).Set(float64(r.Length()))
	g.faults.WithLabelValues(labels...).Set(float64(r.Faults))
	g.hits.WithLabelValues(labels...).Set(float64(r.Hits))
	g.evictions.WithLabelValues(labels...).Set(float64(r.Evictions()))
	g.hitRatio.WithLabelValues(labels...).Set(r.HitRate)
}

// WriteMetrics writes results to w in the Prometheus text exposition format.
// Results are labelled by policy and capacity; a later result with the same
// labels replaces an earlier one.
func WriteMetrics(w io.Writer, results ...*SimulationResult) error {
	reg := prometheus.NewRegistry()
	g := newResultGauges(reg)
	for _, r := range results {
		g.observe(r)
	}
	return writeRegistry(w, reg)
}

// WriteComparisonMetrics writes every result of cmp plus a best_policy gauge.
func WriteComparisonMetrics(w io.Writer, cmp *ComparisonResult) error {
	reg := prometheus.NewRegistry()
	g := newResultGauges(reg)
	for _, p := range cmp.Policies() {
		g.observe(cmp.Results[p])
		best := 0.0
		if cmp.IsBest(p) {
			best = 1
		}
		g.best.WithLabelValues(string(p), strconv.Itoa(cmp.Capacity)).Set(best)
	}
	return writeRegistry(w, reg)
}

func writeRegistry(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
