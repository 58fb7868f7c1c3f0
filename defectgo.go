package defectgo

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/neighbor"
	"github.com/hupe1980/defectgo/rule"
	"github.com/hupe1980/defectgo/snapshot"
)

// Classifier assigns a defect label to every atom of a snapshot.
// It is immutable after construction and safe for concurrent use;
// each Classify call is an independent, stateless pass.
type Classifier struct {
	snap *snapshot.Snapshot
	agg  *neighbor.Aggregator
	opts options
}

// New creates a Classifier over the given snapshot and neighbor finder.
// The snapshot is validated eagerly; malformed descriptors abort
// construction with an error wrapping ErrInvalidInput.
func New(snap *snapshot.Snapshot, finder neighbor.Finder, optFns ...Option) (*Classifier, error) {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	err := snap.Validate()
	opts.logger.LogValidate(context.Background(), snap.Len(), err)
	if err != nil {
		return nil, translateError(err)
	}

	return &Classifier{
		snap: snap,
		agg:  neighbor.NewAggregator(snap, finder),
		opts: opts,
	}, nil
}

// CutoffRadius returns the neighbor-search cutoff derived from the
// snapshot's lattice constant.
func (c *Classifier) CutoffRadius() float64 { return c.agg.CutoffRadius() }

// Classify runs one full classification pass and returns the per-atom
// labels. The default mode first computes provisional surface flags from
// the raw descriptors, then evaluates all atoms in parallel; with
// WithSequentialSurface it runs a single ascending sequential pass that
// matches the legacy order-dependent single-pass behavior.
//
// On error no partial result is returned.
func (c *Classifier) Classify(ctx context.Context) (*Result, error) {
	start := time.Now()

	// Zero-valued labels are LabelBulk, the required initial state.
	labels := make([]model.Label, c.snap.Len())

	var err error
	if c.opts.sequentialSurface {
		err = c.classifySequential(ctx, labels)
	} else {
		err = c.classifyParallel(ctx, labels)
	}

	duration := time.Since(start)
	err = translateError(err)
	c.opts.metrics.RecordClassify(c.snap.Len(), duration, err)
	c.opts.logger.LogClassify(ctx, c.snap.Len(), duration, err)
	if err != nil {
		return nil, err
	}

	result := newResult(labels, c.opts.colors)
	c.opts.metrics.RecordLabels(result.Counts())

	return result, nil
}

// classifyParallel is the default deterministic two-pass evaluation:
// pass 1 derives the surface-qualifying flags from raw descriptors only,
// pass 2 evaluates disjoint index ranges concurrently. Workers write only
// their own output slots, so no synchronization on labels is needed.
func (c *Classifier) classifyParallel(ctx context.Context, labels []model.Label) error {
	ev := rule.NewEvaluator(c.snap, c.agg, rule.NewProvisional(c.snap))

	n := len(labels)
	workers := c.opts.parallelism
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return nil
	}

	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				label, err := ev.Evaluate(i)
				if err != nil {
					return err
				}
				labels[i] = label
			}
			return nil
		})
	}

	return g.Wait()
}

// classifySequential evaluates atoms one by one in ascending index order
// with the surface rule reading the live label array, so labels already
// written for lower-index atoms feed the quorum of later atoms.
func (c *Classifier) classifySequential(ctx context.Context, labels []model.Label) error {
	ev := rule.NewEvaluator(c.snap, c.agg, rule.NewLabelReader(c.snap, labels))

	for i := range labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		label, err := ev.Evaluate(i)
		if err != nil {
			return err
		}
		labels[i] = label
	}
	return nil
}
