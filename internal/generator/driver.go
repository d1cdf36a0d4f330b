package generator

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"minpairs/internal/lexicon"
	"minpairs/internal/selector"
	"minpairs/internal/sequence"
)

// DefaultBudgetMultiplier sizes the retry budget: a run may spend at most
// target × multiplier template attempts before giving up with a shortfall.
const DefaultBudgetMultiplier = 10

// Options tune one generation run. The zero value selects the defaults.
type Options struct {
	Policy           Policy
	SlotAttempts     int
	BudgetMultiplier int
	Logger           *zap.Logger
}

// Driver produces pairs until the target count is reached or the retry
// budget runs out. Each driver owns its template cursor and usage tracker;
// drivers never share mutable state, only the read-only lexicon.
type Driver struct {
	// ID identifies this run in persisted output.
	ID string

	pool       *sequence.Pool
	builder    *Builder
	sel        *selector.Selector
	multiplier int
	logger     *zap.Logger
}

// NewDriver wires a run over a shared lexicon and its own pool cursor.
func NewDriver(lex *lexicon.Lexicon, pool *sequence.Pool, opts Options) *Driver {
	if opts.BudgetMultiplier <= 0 {
		opts.BudgetMultiplier = DefaultBudgetMultiplier
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	sel := selector.New(lex)
	return &Driver{
		ID:         uuid.NewString(),
		pool:       pool,
		builder:    NewBuilder(lex, sel, opts.Policy, opts.SlotAttempts),
		sel:        sel,
		multiplier: opts.BudgetMultiplier,
		logger:     opts.Logger,
	}
}

// Usage exposes the run's usage tracker for inspection.
func (d *Driver) Usage() *selector.UsageTracker { return d.sel.Usage() }

// Generate produces up to target pairs. The returned shortfall is
// target − len(pairs); it is zero on a full run and never an error — the
// caller decides how to surface it. Unfillable templates are skipped and
// retried against the next template until the budget is spent.
func (d *Driver) Generate(target int) ([]Pair, int) {
	if target <= 0 {
		return nil, 0
	}
	budget := target * d.multiplier
	pairs := make([]Pair, 0, target)
	for attempt := 0; attempt < budget && len(pairs) < target; attempt++ {
		tmpl := d.pool.Next()
		pair, err := d.builder.Build(tmpl)
		if err != nil {
			if errors.Is(err, selector.ErrUnfillable) {
				d.logger.Debug("skipping unfillable template",
					zap.Strings("good_sequence", sequence.Raws(tmpl.Good)),
					zap.Error(err))
				continue
			}
			d.logger.Warn("pair build failed", zap.Error(err))
			continue
		}
		if pair.Degenerate {
			d.logger.Debug("degenerate pair: no usable verb root group",
				zap.String("sentence", pair.Good))
		}
		pairs = append(pairs, pair)
	}
	return pairs, target - len(pairs)
}
