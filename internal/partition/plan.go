package partition

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxRows is the largest row count a Plan can validate.
const MaxRows uint64 = math.MaxUint32

// Range is the half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Plan is a fixed division of [0, N) into contiguous ranges.
type Plan struct {
	n      int
	ranges []Range
}

// New splits [0, n) into p contiguous ranges of n/p indices each.
// The last range absorbs the remainder n%p.
func New(n, p int) (*Plan, error) {
	if n <= 0 || p <= 0 || p > n {
		return nil, fmt.Errorf("%w: %d rows into %d partitions", ErrInvalidShape, n, p)
	}
	if uint64(n) > MaxRows {
		return nil, fmt.Errorf("%w: %d rows exceeds %d", ErrInvalidShape, n, MaxRows)
	}

	chunk := n / p
	ranges := make([]Range, p)
	for i := range ranges {
		ranges[i] = Range{Start: i * chunk, End: (i + 1) * chunk}
	}
	ranges[p-1].End = n

	return &Plan{n: n, ranges: ranges}, nil
}

// N returns the size of the divided index range.
func (p *Plan) N() int {
	return p.n
}

// Len returns the number of partitions.
func (p *Plan) Len() int {
	return len(p.ranges)
}

// Ranges returns all partitions in index order.
func (p *Plan) Ranges() []Range {
	return p.ranges
}

// Capacity returns how many candidates the partitions supply when each
// keeps at most cutoff of its indices.
func (p *Plan) Capacity(cutoff int) int {
	total := 0
	for _, r := range p.ranges {
		total += min(cutoff, r.Len())
	}
	return total
}

// Validate checks that the ranges are well formed, pairwise disjoint, and
// together cover exactly [0, N).
func (p *Plan) Validate() error {
	if p.n < 0 || uint64(p.n) > MaxRows {
		return NewInvariantError(-1, "row count %d out of range", p.n)
	}

	covered := roaring.New()
	for i, r := range p.ranges {
		if r.Start < 0 || r.End > p.n || r.Start > r.End {
			return NewInvariantError(i, "range %s outside [0, %d)", r, p.n)
		}

		part := roaring.New()
		part.AddRange(uint64(r.Start), uint64(r.End))
		if covered.Intersects(part) {
			overlap := roaring.And(covered, part)
			return NewInvariantError(i, "range %s overlaps an earlier partition at index %d", r, overlap.Minimum())
		}
		covered.Or(part)
	}

	if covered.GetCardinality() != uint64(p.n) {
		gaps := roaring.Flip(covered, 0, uint64(p.n))
		return NewInvariantError(-1, "index %d not covered by any partition", gaps.Minimum())
	}

	return nil
}
