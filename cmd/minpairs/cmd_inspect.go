package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minpairs/internal/loader"
	"minpairs/internal/store"
)

var flagInspectDB string

// inspectCmd reports lexicon coverage and persisted runs.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect lexicon coverage and persisted runs",
	Long: `Loads the lexicon and reports per-tag entry counts and verb root
group coverage. Incomplete root groups (singular or plural form missing)
cannot supply a contrastive substitution and lead to degenerate pairs;
this command surfaces them so the lexicon author can fill the gaps.

With --db, also lists the runs persisted in the given corpus database.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagLexicon, "lexicon", "", "lexicon CSV file (Word,Tag)")
	inspectCmd.Flags().StringVar(&flagInspectDB, "db", "", "corpus database to list runs from")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if flagLexicon != "" {
		cfg.Data.LexiconPath = flagLexicon
	}

	lex, err := loader.LoadLexicon(cfg.Data.LexiconPath)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Lexicon: %d entries, %d tags", lex.Len(), len(lex.Tags()))))
	for _, tag := range lex.Tags() {
		entries, err := lex.WordsForTag(tag)
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s %d words\n", tag, len(entries))
	}

	groups := lex.RootGroups()
	complete := 0
	for _, g := range groups {
		if g.Complete() {
			complete++
		}
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("\nVerb root groups: %d (%d complete)", len(groups), complete)))
	for _, g := range groups {
		if g.Complete() {
			fmt.Printf("  %-10s %s / %s\n", g.Root+"-", g.Singular[0].Word, g.Plural[0].Word)
			continue
		}
		fmt.Println(warnStyle.Render(fmt.Sprintf("  %-10s incomplete (no contrastive pair)", g.Root+"-")))
	}

	if flagInspectDB == "" {
		return nil
	}
	corpus, err := store.Open(flagInspectDB)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer corpus.Close()

	runs, err := corpus.Runs()
	if err != nil {
		return err
	}
	logger.Debug("listing persisted runs", zap.Int("count", len(runs)))
	fmt.Println(headerStyle.Render(fmt.Sprintf("\nPersisted runs: %d", len(runs))))
	for _, r := range runs {
		fmt.Printf("  %s  produced %d/%d (shortfall %d)  %s\n",
			r.ID, r.Produced, r.Requested, r.Shortfall, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
