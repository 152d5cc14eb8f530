// Package prometheus exports classifier metrics through prometheus/client_golang.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/partknn/model"
)

const namespace = "partknn"

// Collector implements partknn.MetricsCollector with Prometheus metrics.
type Collector struct {
	classifyLatency *prometheus.HistogramVec
	predictions     *prometheus.CounterVec
	stageLatency    *prometheus.HistogramVec
	loadLatency     *prometheus.HistogramVec
	loadedRows      prometheus.Counter
	neighbors       prometheus.Histogram
}

// NewCollector creates a Collector and registers it with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		classifyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classify_duration_seconds",
			Help:      "Latency of Classify calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Successful classifications by predicted label.",
		}, []string{"label"}),
		stageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Latency of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"stage"}),
		loadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Latency of dataset loads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		loadedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loaded_rows_total",
			Help:      "Rows read by successful dataset loads.",
		}),
		neighbors: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "vote_k",
			Help:      "Number of neighbors voting per classification.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	for _, m := range []prometheus.Collector{
		c.classifyLatency, c.predictions, c.stageLatency, c.loadLatency, c.loadedRows, c.neighbors,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordClassify implements partknn.MetricsCollector.
func (c *Collector) RecordClassify(k int, prediction model.Label, d time.Duration, err error) {
	c.classifyLatency.WithLabelValues(result(err)).Observe(d.Seconds())
	if err != nil {
		return
	}
	c.predictions.WithLabelValues(prediction.String()).Inc()
	c.neighbors.Observe(float64(k))
}

// RecordStage implements partknn.MetricsCollector.
func (c *Collector) RecordStage(stage string, d time.Duration) {
	c.stageLatency.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordLoad implements partknn.MetricsCollector.
func (c *Collector) RecordLoad(rows int, d time.Duration, err error) {
	c.loadLatency.WithLabelValues(result(err)).Observe(d.Seconds())
	if err == nil {
		c.loadedRows.Add(float64(rows))
	}
}
