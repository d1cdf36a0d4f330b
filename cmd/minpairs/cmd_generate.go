package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minpairs/internal/generator"
	"minpairs/internal/loader"
	"minpairs/internal/sequence"
	"minpairs/internal/store"
)

var (
	flagLexicon   string
	flagSequences string
	flagCount     int
	flagRuns      int
	flagPolicy    string
	flagDB        string
	flagQuiet     bool
)

// generateCmd runs one or more generation runs.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate contrastive sentence pairs",
	Long: `Loads the lexicon and sequence CSV files and generates the requested
number of good/bad sentence pairs.

With --runs N, N independent runs execute in parallel; each owns its own
usage tracking and template cursor, sharing only the read-only lexicon.

Examples:
  minpairs generate --lexicon lexicon.csv --sequences sequences.csv --count 120
  minpairs generate --count 50 --policy first --db corpus.db`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagLexicon, "lexicon", "", "lexicon CSV file (Word,Tag)")
	generateCmd.Flags().StringVar(&flagSequences, "sequences", "", "sequence CSV file (Good_Sequence,Bad_Sequence)")
	generateCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "target number of pairs per run")
	generateCmd.Flags().IntVar(&flagRuns, "runs", 0, "number of independent parallel runs")
	generateCmd.Flags().StringVar(&flagPolicy, "policy", "", "violation policy: all or first")
	generateCmd.Flags().StringVar(&flagDB, "db", "", "SQLite database to persist runs into")
	generateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress per-pair output")
}

// resolveGenerateConfig folds flags over the loaded config; flags win.
func resolveGenerateConfig() {
	if flagLexicon != "" {
		cfg.Data.LexiconPath = flagLexicon
	}
	if flagSequences != "" {
		cfg.Data.SequencesPath = flagSequences
	}
	if flagCount > 0 {
		cfg.Generation.Pairs = flagCount
	}
	if flagRuns > 0 {
		cfg.Generation.Runs = flagRuns
	}
	if flagPolicy != "" {
		cfg.Generation.Violations = flagPolicy
	}
	if flagDB != "" {
		cfg.Output.DatabasePath = flagDB
	}
	if flagQuiet {
		cfg.Output.Quiet = true
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	resolveGenerateConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	lex, err := loader.LoadLexicon(cfg.Data.LexiconPath)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	templates, err := loader.LoadSequences(cfg.Data.SequencesPath)
	if err != nil {
		return fmt.Errorf("failed to load sequences: %w", err)
	}
	pool, err := sequence.NewPool(templates)
	if err != nil {
		return fmt.Errorf("failed to build template pool: %w", err)
	}

	logger.Info("loaded generation inputs",
		zap.Int("lexicon_entries", lex.Len()),
		zap.Int("templates", pool.Len()),
		zap.Int("target", cfg.Generation.Pairs),
		zap.Int("runs", cfg.Generation.Runs),
		zap.String("policy", cfg.Generation.Violations))

	opts := generator.Options{
		Policy:           cfg.Policy(),
		SlotAttempts:     cfg.Generation.SlotAttempts,
		BudgetMultiplier: cfg.Generation.BudgetMultiplier,
		Logger:           logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := generator.RunBatch(ctx, lex, pool, cfg.Generation.Runs, cfg.Generation.Pairs, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	var corpus *store.CorpusStore
	if cfg.Output.DatabasePath != "" {
		corpus, err = store.Open(cfg.Output.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open corpus store: %w", err)
		}
		defer corpus.Close()
	}

	for _, res := range results {
		if !cfg.Output.Quiet {
			printRun(res)
		}
		if res.Shortfall > 0 {
			logger.Warn("generation shortfall",
				zap.String("run_id", res.RunID),
				zap.Int("requested", cfg.Generation.Pairs),
				zap.Int("produced", len(res.Pairs)),
				zap.Int("shortfall", res.Shortfall))
		}
		if corpus != nil {
			if err := corpus.SaveRun(res.RunID, cfg.Generation.Pairs, res.Pairs, res.Shortfall); err != nil {
				return fmt.Errorf("failed to persist run %s: %w", res.RunID, err)
			}
			logger.Info("run persisted",
				zap.String("run_id", res.RunID),
				zap.String("database", cfg.Output.DatabasePath))
		}
	}
	return nil
}
