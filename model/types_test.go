package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFromValue(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		want  Label
		valid bool
	}{
		{"Zero", 0, LabelNegative, true},
		{"One", 1, LabelPositive, true},
		{"Two", 2, 0, false},
		{"Fraction", 0.5, 0, false},
		{"Negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LabelFromValue(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateOrder(t *testing.T) {
	a := Candidate{Distance: 0.5, Origin: 2}
	b := Candidate{Distance: 0.5, Origin: 1}
	c := Candidate{Distance: 0.1, Origin: 9}

	assert.True(t, Less(b, a), "equal distance resolves by origin")
	assert.False(t, Less(a, b))
	assert.True(t, Less(c, b))
	assert.Equal(t, 0, Compare(a, a))
	assert.Equal(t, -1, Compare(b, a))
	assert.Equal(t, 1, Compare(a, c))

	pool := Pool{a, b, c}
	slices.SortFunc(pool, Compare)
	assert.Equal(t, []int{9, 1, 2}, pool.Origins())
	assert.True(t, pool.IsSorted())
}

func TestPoolHead(t *testing.T) {
	pool := Pool{{Origin: 0}, {Origin: 1}, {Origin: 2}}

	assert.Len(t, pool.Head(2), 2)
	assert.Len(t, pool.Head(10), 3)
	assert.Empty(t, pool.Head(-1))
}
