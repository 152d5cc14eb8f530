package partknn

import (
	"context"
	"time"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/internal/engine"
	"github.com/hupe1980/partknn/internal/selection"
	"github.com/hupe1980/partknn/model"
)

// Result is the outcome of one classification.
type Result struct {
	// Prediction is the majority label of the K nearest candidates.
	Prediction model.Label
	// Zeros and Ones count the labels among the K voters.
	Zeros int
	Ones  int
	// Pool holds every merged candidate, nearest first.
	Pool model.Pool
	// Neighbors is Pool[:K], the candidates that voted.
	Neighbors model.Pool
	// Elapsed is the wall time of the classification.
	Elapsed time.Duration
}

// ClassName returns the display name of the predicted class.
func (r *Result) ClassName() string {
	return ClassName(r.Prediction)
}

// Classifier runs partitioned KNN classifications with a fixed
// configuration. It is safe for concurrent use.
type Classifier struct {
	opts    options
	eng     *engine.Engine
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Classifier. Invalid parameters fail with ErrConfiguration.
func New(optFns ...Option) (*Classifier, error) {
	o := applyOptions(optFns)

	sel, err := selection.New(o.strategy)
	if err != nil {
		return nil, &ConfigError{Field: "selector", Reason: err.Error(), cause: err}
	}

	c := &Classifier{
		opts:    o,
		logger:  o.logger.WithK(o.k),
		metrics: o.metricsCollector,
	}

	eng, err := engine.New(engine.Config{
		K:          o.k,
		Partitions: o.partitions,
		Cutoff:     o.cutoff,
		Workers:    o.workers,
		Selector:   sel,
		Resources:  o.resources,
		Logger:     c.logger.Logger,
		OnStage:    c.onStage,
	})
	if err != nil {
		return nil, translateError(err)
	}
	c.eng = eng

	return c, nil
}

func (c *Classifier) onStage(ctx context.Context, s engine.Stage, d time.Duration) {
	c.metrics.RecordStage(string(s), d)
	c.logger.LogStage(ctx, string(s), d)
}

// K returns the number of voting neighbors.
func (c *Classifier) K() int { return c.opts.k }

// Partitions returns P.
func (c *Classifier) Partitions() int { return c.opts.partitions }

// Cutoff returns M.
func (c *Classifier) Cutoff() int { return c.opts.cutoff }

// Workers returns the effective worker limit.
func (c *Classifier) Workers() int { return c.eng.Config().Workers }

// Strategy returns the selection strategy.
func (c *Classifier) Strategy() Strategy { return c.eng.Config().Selector.Strategy() }

// Classify predicts the label of q from its K nearest rows in ds.
// If q was built with dataset.QueryFromRow, that row is not a candidate.
func (c *Classifier) Classify(ctx context.Context, ds *dataset.Dataset, q dataset.Query) (*Result, error) {
	start := time.Now()
	out, err := c.eng.Run(ctx, ds, q)
	elapsed := time.Since(start)

	if err != nil {
		err = translateError(err)
		c.metrics.RecordClassify(c.opts.k, 0, elapsed, err)
		c.logger.LogClassify(ctx, c.opts.k, 0, 0, elapsed, err)
		return nil, err
	}

	res := &Result{
		Prediction: out.Prediction,
		Zeros:      out.Tally.Zeros,
		Ones:       out.Tally.Ones,
		Pool:       out.Pool,
		Neighbors:  out.Neighbors(),
		Elapsed:    elapsed,
	}

	c.metrics.RecordClassify(c.opts.k, res.Prediction, elapsed, nil)
	c.logger.LogClassify(ctx, c.opts.k, res.Prediction, len(res.Pool), elapsed, nil)

	return res, nil
}

// Predict is Classify returning only the label.
func (c *Classifier) Predict(ctx context.Context, ds *dataset.Dataset, q dataset.Query) (model.Label, error) {
	res, err := c.Classify(ctx, ds, q)
	if err != nil {
		return 0, err
	}
	return res.Prediction, nil
}
