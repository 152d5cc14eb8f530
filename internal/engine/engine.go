package engine

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/distance"
	"github.com/hupe1980/partknn/internal/merge"
	"github.com/hupe1980/partknn/internal/partition"
	"github.com/hupe1980/partknn/internal/vote"
	"github.com/hupe1980/partknn/model"
)

// candidateSize is the buffer cost of one dataset row.
const candidateSize = int64(unsafe.Sizeof(model.Candidate{}))

// ctxCheckInterval is how many rows a distance task scores between
// cancellation checks.
const ctxCheckInterval = 4096

// Engine runs the pipeline with a fixed Config. It is safe for concurrent use.
type Engine struct {
	cfg Config
}

// Output is the result of one run.
type Output struct {
	// Pool is the merged, sorted candidate pool.
	Pool model.Pool
	// Tally counts the labels of Pool[:K].
	Tally vote.Tally
	// Prediction is Tally.Prediction().
	Prediction model.Label
	// Eligible is the number of rows that received a candidate.
	Eligible int
	// Durations holds the wall time of each stage.
	Durations map[Stage]time.Duration
}

// Neighbors returns the K voting candidates.
func (o *Output) Neighbors() model.Pool {
	return o.Pool.Head(o.Tally.Total())
}

// New validates cfg and returns an Engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg.withDefaults()}, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run classifies q against ds.
func (e *Engine) Run(ctx context.Context, ds *dataset.Dataset, q dataset.Query) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := ds.Len()
	if n == 0 {
		return nil, configErr("N", 0, "dataset is empty")
	}
	if err := ds.CheckQuery(q); err != nil {
		return nil, err
	}

	// The plan divides eligible positions, so the query's own row never
	// takes a partition slot.
	eligible := n
	if _, ok := q.Origin(); ok {
		eligible--
	}
	if e.cfg.Partitions > eligible {
		return nil, configErr("P", e.cfg.Partitions, "exceeds eligible row count %d", eligible)
	}
	if eligible < e.cfg.K {
		return nil, configErr("K", e.cfg.K, "only %d eligible rows", eligible)
	}

	plan, err := partition.New(eligible, e.cfg.Partitions)
	if err != nil {
		return nil, configErr("P", e.cfg.Partitions, "%v", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	// The last partition absorbs the remainder, so short partitions can
	// leave the pool below K even when P*M >= K.
	if capacity := plan.Capacity(e.cfg.Cutoff); capacity < e.cfg.K {
		return nil, configErr("K", e.cfg.K, "%d partitions of cutoff %d supply only %d candidates",
			plan.Len(), e.cfg.Cutoff, capacity)
	}

	bytes := int64(eligible) * candidateSize
	if err := e.cfg.Resources.AcquireMemory(bytes); err != nil {
		return nil, fmt.Errorf("candidate buffer of %d bytes: %w", bytes, err)
	}
	defer e.cfg.Resources.ReleaseMemory(bytes)

	r := &run{
		Engine: e,
		ds:     ds,
		q:      q,
		plan:   plan,
		buf:    make([]model.Candidate, eligible),
		out:    &Output{Eligible: plan.N(), Durations: make(map[Stage]time.Duration, len(Stages))},
	}

	if err := r.stage(ctx, StageDistance, func() error { return r.parallel(ctx, r.score) }); err != nil {
		return nil, err
	}

	r.prefixes = make([][]model.Candidate, plan.Len())
	if err := r.stage(ctx, StageSelection, func() error { return r.parallel(ctx, r.selectTop) }); err != nil {
		return nil, err
	}

	if err := r.stage(ctx, StageMerge, r.merge); err != nil {
		return nil, err
	}
	if err := r.stage(ctx, StageVote, r.vote); err != nil {
		return nil, err
	}

	return r.out, nil
}

// run is the per-call state.
type run struct {
	*Engine
	ds       *dataset.Dataset
	q        dataset.Query
	plan     *partition.Plan
	buf      []model.Candidate
	prefixes [][]model.Candidate
	out      *Output
}

func (r *run) stage(ctx context.Context, s Stage, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		r.cfg.Logger.DebugContext(ctx, "stage failed", "stage", string(s), "error", err)
		return err
	}
	d := time.Since(start)
	r.out.Durations[s] = d
	if r.cfg.OnStage != nil {
		r.cfg.OnStage(ctx, s, d)
	}
	return nil
}

// parallel runs task once per partition and waits for all of them.
// Wait is the barrier between stages.
func (r *run) parallel(ctx context.Context, task func(ctx context.Context, part int, rg partition.Range) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, rg := range r.plan.Ranges() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = partition.NewInvariantError(i, "task panicked: %v", p)
				}
			}()

			if err := r.cfg.Resources.AcquireWorker(gctx); err != nil {
				return err
			}
			defer r.cfg.Resources.ReleaseWorker()

			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, i, rg)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Covers a cancellation that raced the loop above.
	return ctx.Err()
}

// row maps an eligible position to its dataset row, stepping over the
// query's own row.
func (r *run) row(pos int) int {
	if origin, ok := r.q.Origin(); ok && pos >= origin {
		return pos + 1
	}
	return pos
}

// score fills buf[rg] with the candidates of the range's eligible positions.
func (r *run) score(ctx context.Context, _ int, rg partition.Range) error {
	qv := r.q.Values()
	for pos := rg.Start; pos < rg.End; pos++ {
		if (pos-rg.Start)%ctxCheckInterval == ctxCheckInterval-1 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		i := r.row(pos)
		r.buf[pos] = model.Candidate{
			Distance: distance.Euclidean(r.ds.Row(i), qv),
			Label:    r.ds.Label(i),
			Origin:   i,
		}
	}
	return nil
}

// selectTop moves the partition's local top-M to the front of its range.
func (r *run) selectTop(_ context.Context, part int, rg partition.Range) error {
	seg := r.buf[rg.Start:rg.End]

	want := min(r.cfg.Cutoff, len(seg))
	prefix := r.cfg.Selector.Select(seg, r.cfg.Cutoff)
	if len(prefix) != want {
		return partition.NewInvariantError(part, "selector %s returned %d candidates, want %d",
			r.cfg.Selector.Strategy(), len(prefix), want)
	}
	if !model.Pool(prefix).IsSorted() {
		return partition.NewInvariantError(part, "selector %s returned an unsorted prefix", r.cfg.Selector.Strategy())
	}

	r.prefixes[part] = prefix
	return nil
}

func (r *run) merge() error {
	pool := merge.Merge(r.prefixes)
	if capacity := r.plan.Capacity(r.cfg.Cutoff); len(pool) != capacity {
		return partition.NewInvariantError(-1, "pool holds %d candidates, capacity %d", len(pool), capacity)
	}
	r.out.Pool = pool
	return nil
}

func (r *run) vote() error {
	tally, err := vote.Count(r.out.Pool, r.cfg.K)
	if err != nil {
		// Run checked the plan capacity against K.
		return partition.NewInvariantError(-1, "%v", err)
	}
	r.out.Tally = tally
	r.out.Prediction = tally.Prediction()
	return nil
}
