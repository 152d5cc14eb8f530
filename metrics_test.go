package partknn

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/partknn/model"
	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	b := &BasicMetricsCollector{}

	b.RecordClassify(3, model.LabelNegative, 10*time.Millisecond, nil)
	b.RecordClassify(3, model.LabelPositive, 30*time.Millisecond, nil)
	b.RecordClassify(3, 0, 20*time.Millisecond, errors.New("x"))
	b.RecordStage("distance", time.Millisecond)
	b.RecordStage("distance", 2*time.Millisecond)
	b.RecordLoad(100, time.Second, nil)
	b.RecordLoad(0, time.Second, errors.New("y"))

	s := b.GetStats()
	assert.Equal(t, int64(3), s.ClassifyCount)
	assert.Equal(t, int64(1), s.ClassifyErrors)
	assert.Equal(t, int64(1), s.PredictedZeros)
	assert.Equal(t, int64(1), s.PredictedOnes)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), s.ClassifyAvgNanos)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), s.StageTotalNanos["distance"])
	assert.Equal(t, int64(2), s.LoadCount)
	assert.Equal(t, int64(1), s.LoadErrors)
	assert.Equal(t, int64(100), s.LoadRows)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	b := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				b.RecordStage("merge", time.Microsecond)
				b.RecordClassify(1, model.LabelPositive, time.Microsecond, nil)
			}
		}()
	}
	wg.Wait()

	s := b.GetStats()
	assert.Equal(t, int64(1600), s.ClassifyCount)
	assert.Equal(t, (1600 * time.Microsecond).Nanoseconds(), s.StageTotalNanos["merge"])
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordClassify(1, 0, 0, nil)
	mc.RecordStage("vote", 0)
	mc.RecordLoad(1, 0, nil)
}
