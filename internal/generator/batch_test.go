package generator

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"minpairs/internal/sequence"
)

func TestRunBatch_IndependentIdenticalRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	lex := smallLexicon()
	lex.Add("cane", "NOUN")
	pool := mustPool(t, sequence.NewTemplate("DET NOUN VERB", "DET NOUN VERB"))

	results, err := RunBatch(context.Background(), lex, pool, 4, 10, Options{})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Runs share only the read-only lexicon; with identical inputs and
	// private trackers every run produces the same deterministic output.
	seen := make(map[string]bool)
	for _, res := range results {
		assert.Len(t, res.Pairs, 10)
		assert.Equal(t, 0, res.Shortfall)
		assert.False(t, seen[res.RunID], "run IDs must be unique")
		seen[res.RunID] = true

		if diff := cmp.Diff(results[0].Pairs, res.Pairs); diff != "" {
			t.Errorf("parallel run diverged from first run (-first +got):\n%s", diff)
		}
	}
}

func TestRunBatch_DefaultsToOneRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	lex := smallLexicon()
	pool := mustPool(t, sequence.NewTemplate("DET NOUN VERB", "DET NOUN VERB"))

	results, err := RunBatch(context.Background(), lex, pool, 0, 2, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Pairs, 2)
}

func TestRunBatch_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	lex := smallLexicon()
	pool := mustPool(t, sequence.NewTemplate("DET NOUN VERB", "DET NOUN VERB"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, lex, pool, 2, 5, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
