package engine

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/hupe1980/partknn/internal/selection"
	"github.com/hupe1980/partknn/resource"
)

// Stage names one pipeline step.
type Stage string

const (
	StageDistance  Stage = "distance"
	StageSelection Stage = "selection"
	StageMerge     Stage = "merge"
	StageVote      Stage = "vote"
)

// Stages lists the pipeline steps in execution order.
var Stages = []Stage{StageDistance, StageSelection, StageMerge, StageVote}

// Config holds the parameters of a run.
type Config struct {
	// K is the number of neighbors that vote.
	K int
	// Partitions is the number of contiguous chunks (P).
	Partitions int
	// Cutoff is the per-partition prefix length (M).
	Cutoff int
	// Workers bounds concurrently running tasks. 0 means GOMAXPROCS.
	Workers int

	Selector  selection.Selector
	Resources *resource.Controller
	Logger    *slog.Logger

	// OnStage, if set, is called after each completed stage.
	OnStage func(ctx context.Context, stage Stage, d time.Duration)
}

// Validate checks the static parameters.
func (c Config) Validate() error {
	if c.K <= 0 {
		return configErr("K", c.K, "must be positive")
	}
	if c.Partitions <= 0 {
		return configErr("P", c.Partitions, "must be positive")
	}
	if c.Cutoff <= 0 {
		return configErr("M", c.Cutoff, "must be positive")
	}
	if c.K > c.Partitions*c.Cutoff {
		return configErr("K", c.K, "exceeds pool capacity P*M=%d", c.Partitions*c.Cutoff)
	}
	if c.Workers < 0 {
		return configErr("workers", c.Workers, "must not be negative")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Selector == nil {
		c.Selector = selection.Default()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
