package selection

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/hupe1980/partknn/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSelectors(t *testing.T) []Selector {
	t.Helper()
	out := make([]Selector, 0, len(Strategies))
	for _, s := range Strategies {
		sel, err := New(s)
		require.NoError(t, err)
		require.Equal(t, s, sel.Strategy())
		out = append(out, sel)
	}
	return out
}

func TestSelect(t *testing.T) {
	base := []model.Candidate{
		{Distance: 9.5, Origin: 10},
		{Distance: 0.5, Origin: 11},
		{Distance: 8.5, Origin: 12},
		{Distance: 0.5, Origin: 13},
		{Distance: 1.5, Origin: 14},
	}

	tests := []struct {
		name string
		m    int
		want []int
	}{
		{"Top2", 2, []int{11, 13}},
		{"Top3", 3, []int{11, 13, 14}},
		{"All", 5, []int{11, 13, 14, 12, 10}},
		{"MoreThanLen", 8, []int{11, 13, 14, 12, 10}},
		{"Zero", 0, []int{}},
	}

	for _, sel := range allSelectors(t) {
		for _, tt := range tests {
			t.Run(string(sel.Strategy())+"/"+tt.name, func(t *testing.T) {
				buf := slices.Clone(base)
				got := sel.Select(buf, tt.m)
				assert.Equal(t, tt.want, model.Pool(got).Origins())
				assert.ElementsMatch(t, base, buf, "selection must permute, not drop")
			})
		}
	}
}

func TestSelectEmpty(t *testing.T) {
	for _, sel := range allSelectors(t) {
		assert.Empty(t, sel.Select(nil, 3))
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := range 50 {
		n := 1 + rng.Intn(40)
		m := 1 + rng.Intn(8)
		base := make([]model.Candidate, n)
		for i := range base {
			// Coarse distances force plenty of ties.
			base[i] = model.Candidate{Distance: float64(rng.Intn(5)), Origin: 100 + i}
		}
		rng.Shuffle(n, func(i, j int) { base[i], base[j] = base[j], base[i] })

		want := slices.Clone(base)
		slices.SortFunc(want, model.Compare)
		want = want[:min(m, n)]

		for _, sel := range allSelectors(t) {
			got := sel.Select(slices.Clone(base), m)
			require.Equal(t, want, got, "round %d strategy %s", round, sel.Strategy())
		}
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("bogus")
	require.Error(t, err)

	sel, err := New("")
	require.NoError(t, err)
	assert.Equal(t, StrategyHeap, sel.Strategy())
	assert.Equal(t, StrategyHeap, Default().Strategy())
}
