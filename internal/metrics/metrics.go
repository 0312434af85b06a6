// Package metrics exposes Prometheus instrumentation for training and
// generation.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "songsmith"

// Registry is the registerer every songsmith metric lives in.
var Registry = prometheus.NewRegistry()

var (
	trainingTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "training_total",
			Help:      "Count of training requests by mode and result.",
		},
		[]string{"mode", "result"},
	)
	generationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_total",
			Help:      "Count of generation requests by mode and result.",
		},
		[]string{"mode", "result"},
	)
	generatedTokens = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generated_tokens",
			Help:      "Number of tokens produced per generation.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 8),
		},
		[]string{"mode"},
	)
	vocabularySize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_vocabulary_size",
			Help:      "Distinct tokens in the current model.",
		},
		[]string{"mode"},
	)
	corpusTokens = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_corpus_tokens",
			Help:      "Tokens in the corpus the current model was trained on.",
		},
		[]string{"mode"},
	)
)

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(trainingTotal)
		Registry.MustRegister(generationTotal)
		Registry.MustRegister(generatedTokens)
		Registry.MustRegister(vocabularySize)
		Registry.MustRegister(corpusTokens)
	})
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	Register()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordTraining counts a training attempt. result is "success" or an error class.
func RecordTraining(mode, result string) {
	trainingTotal.WithLabelValues(mode, result).Inc()
}

// RecordModel publishes the size of a freshly installed model.
func RecordModel(mode string, vocabulary int, tokens uint64) {
	vocabularySize.WithLabelValues(mode).Set(float64(vocabulary))
	corpusTokens.WithLabelValues(mode).Set(float64(tokens))
}

// RecordGeneration counts a generation attempt and, on success, its length.
func RecordGeneration(mode, result string, tokens int) {
	generationTotal.WithLabelValues(mode, result).Inc()
	if result == "success" {
		generatedTokens.WithLabelValues(mode).Observe(float64(tokens))
	}
}
