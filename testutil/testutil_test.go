package testutil

import (
	"sync"
	"testing"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42).Rows(10, 3)
	b := NewRNG(42).Rows(10, 3)
	assert.Equal(t, a, b)
}

func TestRNG_RowsShape(t *testing.T) {
	rows := NewRNG(1).Rows(50, 4)
	require.Len(t, rows, 50)
	for _, row := range rows {
		require.Len(t, row, 5)
		assert.Contains(t, []float64{0, 1}, row[0])
	}

	ds := NewRNG(1).ClusteredDataset(30, 2, 0.1)
	assert.Equal(t, 30, ds.Len())
	assert.Equal(t, 3, ds.Width())
}

func TestRNG_Concurrent(t *testing.T) {
	r := NewRNG(3)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Dataset(20, 2)
			_ = r.Query(2)
		}()
	}
	wg.Wait()
}

func TestExactTopK(t *testing.T) {
	ds, err := dataset.New([]dataset.Row{{0, 5}, {1, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)

	got := ExactTopK(ds, dataset.NewQuery([]float64{0, 2}), 3)
	assert.Equal(t, []int{2, 3, 1}, got.Origins())

	q, err := dataset.QueryFromRow(ds, 2)
	require.NoError(t, err)
	got = ExactTopK(ds, q, 2)
	assert.Equal(t, []int{3, 1}, got.Origins())
}

func TestOverlap(t *testing.T) {
	want := model.Pool{{Origin: 1}, {Origin: 2}, {Origin: 3}, {Origin: 4}}
	got := model.Pool{{Origin: 4}, {Origin: 9}, {Origin: 1}}
	assert.InDelta(t, 0.5, Overlap(got, want), 1e-12)
	assert.InDelta(t, 1.0, Overlap(nil, nil), 1e-12)
}
