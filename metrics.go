package partknn

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/partknn/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordClassify is called after each classification.
	// prediction is meaningless when err is non-nil.
	RecordClassify(k int, prediction model.Label, duration time.Duration, err error)

	// RecordStage is called after each completed pipeline stage.
	RecordStage(stage string, duration time.Duration)

	// RecordLoad is called after a dataset load.
	RecordLoad(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassify(int, model.Label, time.Duration, error) {}
func (NoopMetricsCollector) RecordStage(string, time.Duration)                    {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyTotalNanos atomic.Int64
	PredictedZeros     atomic.Int64
	PredictedOnes      atomic.Int64
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
	LoadRows           atomic.Int64

	stages sync.Map // stage name -> *atomic.Int64 total nanos
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(_ int, prediction model.Label, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.ClassifyErrors.Add(1)
	case prediction == model.LabelNegative:
		b.PredictedZeros.Add(1)
	default:
		b.PredictedOnes.Add(1)
	}
}

// RecordStage implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStage(stage string, duration time.Duration) {
	v, _ := b.stages.LoadOrStore(stage, new(atomic.Int64))
	v.(*atomic.Int64).Add(duration.Nanoseconds())
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyAvgNanos: b.getAvgClassifyNanos(),
		PredictedZeros:   b.PredictedZeros.Load(),
		PredictedOnes:    b.PredictedOnes.Load(),
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		LoadRows:         b.LoadRows.Load(),
		StageTotalNanos:  make(map[string]int64),
	}
	b.stages.Range(func(k, v any) bool {
		s.StageTotalNanos[k.(string)] = v.(*atomic.Int64).Load()
		return true
	})
	return s
}

func (b *BasicMetricsCollector) getAvgClassifyNanos() int64 {
	count := b.ClassifyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassifyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyAvgNanos int64
	PredictedZeros   int64
	PredictedOnes    int64
	LoadCount        int64
	LoadErrors       int64
	LoadRows         int64
	StageTotalNanos  map[string]int64
}
