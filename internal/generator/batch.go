package generator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"minpairs/internal/lexicon"
	"minpairs/internal/sequence"
)

// RunResult is the outcome of one independent generation run.
type RunResult struct {
	RunID     string
	Pairs     []Pair
	Shortfall int
}

// RunBatch executes runs independent generation runs in parallel. The
// lexicon is shared read-only; every run gets its own pool cursor and
// usage tracker, so results match runs executed sequentially one by one.
func RunBatch(ctx context.Context, lex *lexicon.Lexicon, pool *sequence.Pool, runs, target int, opts Options) ([]RunResult, error) {
	if runs <= 0 {
		runs = 1
	}
	results := make([]RunResult, runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < runs; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			drv := NewDriver(lex, pool.Clone(), opts)
			pairs, shortfall := drv.Generate(target)
			results[i] = RunResult{RunID: drv.ID, Pairs: pairs, Shortfall: shortfall}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
