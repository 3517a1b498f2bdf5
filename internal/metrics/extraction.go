package metrics

import "github.com/prometheus/client_golang/prometheus"

// Extraction outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "link_unavailable"
	OutcomeBadFormat   = "bad_format"
)

// Extraction Prometheus metrics.
var (
	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipeparse",
			Name:      "extractions_total",
			Help:      "Recipe page extractions by outcome",
		},
		[]string{"outcome"},
	)

	ExtractionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recipeparse",
			Name:      "extraction_duration_seconds",
			Help:      "Recipe page extraction duration in seconds, fetch included",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	IngredientLinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipeparse",
			Name:      "ingredient_lines_total",
			Help:      "Parsed ingredient lines, segmented or kept as raw text",
		},
		[]string{"result"}, // "segmented" / "fallback"
	)
)

func init() {
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(ExtractionDuration)
	prometheus.MustRegister(IngredientLinesTotal)
}
