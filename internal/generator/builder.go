// Package generator builds contrastive sentence pairs from tag-sequence
// templates and drives full generation runs.
package generator

import (
	"strings"

	"minpairs/internal/lexicon"
	"minpairs/internal/selector"
	"minpairs/internal/sequence"
)

// Policy controls how many violation groups get substituted per pair.
type Policy string

const (
	// ViolateAll substitutes every eligible verb group.
	ViolateAll Policy = "all"
	// ViolateFirst substitutes only the first eligible group; later groups
	// reuse the grammatical form.
	ViolateFirst Policy = "first"
)

// DefaultSlotAttempts bounds re-selection at a verb slot while hunting for
// a word with a complete root group.
const DefaultSlotAttempts = 50

// Pair is one generated good/bad sentence pair. Tag sequences are echoed
// back as loaded; they describe grammatical category, not inflected form.
type Pair struct {
	Good    string
	Bad     string
	GoodSeq []string
	BadSeq  []string
	// Violations holds the positions where the bad sentence's word was
	// replaced with its opposite-number form.
	Violations []int
	// Degenerate marks a pair whose sentences came out identical because
	// no complete root group was available at any violation slot.
	Degenerate bool
}

// Builder fills one template into a Pair, introducing a number violation in
// the bad sentence.
type Builder struct {
	lex          *lexicon.Lexicon
	sel          *selector.Selector
	policy       Policy
	slotAttempts int
}

// NewBuilder returns a builder over lex using sel's usage state.
func NewBuilder(lex *lexicon.Lexicon, sel *selector.Selector, policy Policy, slotAttempts int) *Builder {
	if policy == "" {
		policy = ViolateAll
	}
	if slotAttempts <= 0 {
		slotAttempts = DefaultSlotAttempts
	}
	return &Builder{lex: lex, sel: sel, policy: policy, slotAttempts: slotAttempts}
}

// violationGroup is a set of coindexed verb positions that receive one
// shared substitution.
type violationGroup struct {
	positions []int
	tag       sequence.Tag
}

// findViolationGroups collects aligned positions where both sides carry a
// verb tag with the same coindexing subscript. Unsubscripted verb slots
// each form their own group.
func findViolationGroups(good, bad []sequence.Tag) []violationGroup {
	n := len(good)
	if len(bad) < n {
		n = len(bad)
	}
	var groups []violationGroup
	byIndex := make(map[rune]int)
	for i := 0; i < n; i++ {
		if !lexicon.IsVerbTag(good[i].Base) || !lexicon.IsVerbTag(bad[i].Base) {
			continue
		}
		if good[i].Index != bad[i].Index {
			continue
		}
		if idx := good[i].Index; idx != 0 {
			if g, ok := byIndex[idx]; ok {
				groups[g].positions = append(groups[g].positions, i)
				continue
			}
			byIndex[idx] = len(groups)
		}
		groups = append(groups, violationGroup{positions: []int{i}, tag: good[i]})
	}
	return groups
}

// Build fills the template into a Pair. Tags with no lexicon entries fail
// the whole pair with an UnfillableSequenceError for the driver to handle.
func (b *Builder) Build(t sequence.Template) (Pair, error) {
	groups := findViolationGroups(t.Good, t.Bad)
	inGroup := make(map[int]bool)
	for _, g := range groups {
		for _, p := range g.positions {
			inGroup[p] = true
		}
	}

	goodWords := make([]string, len(t.Good))
	badWords := make([]string, len(t.Bad))

	// Ordinary slots first: the good side picks fresh words, the bad side
	// reuses them wherever the tags agree so the sentences differ only at
	// the deliberate violation.
	for i, tag := range t.Good {
		if inGroup[i] {
			continue
		}
		e, err := b.sel.SelectWord(tag.Base)
		if err != nil {
			return Pair{}, &selector.UnfillableSequenceError{Tag: tag.Base, Err: err}
		}
		goodWords[i] = e.Word
	}
	for i, tag := range t.Bad {
		if inGroup[i] {
			continue
		}
		if i < len(t.Good) && t.Good[i].Raw == tag.Raw {
			badWords[i] = goodWords[i]
			continue
		}
		e, err := b.sel.SelectWord(tag.Base)
		if err != nil {
			return Pair{}, &selector.UnfillableSequenceError{Tag: tag.Base, Err: err}
		}
		badWords[i] = e.Word
	}

	pair := Pair{
		GoodSeq: sequence.Raws(t.Good),
		BadSeq:  sequence.Raws(t.Bad),
	}

	violated := 0
	degenerate := false
	for _, g := range groups {
		if b.policy == ViolateFirst && violated > 0 {
			e, err := b.sel.SelectWord(g.tag.Base)
			if err != nil {
				return Pair{}, &selector.UnfillableSequenceError{Tag: g.tag.Base, Err: err}
			}
			for _, p := range g.positions {
				goodWords[p] = e.Word
				badWords[p] = e.Word
			}
			continue
		}

		good, bad, ok, err := b.selectVerbPair(g.tag.Base)
		if err != nil {
			return Pair{}, err
		}
		for _, p := range g.positions {
			goodWords[p] = good
			badWords[p] = bad
		}
		if ok {
			violated++
			pair.Violations = append(pair.Violations, g.positions...)
		} else {
			degenerate = true
		}
	}

	// A pair with eligible verb slots but no usable root group degrades to
	// identical sentences; it is reported, not discarded.
	pair.Degenerate = len(groups) > 0 && violated == 0 && degenerate

	pair.Good = strings.Join(goodWords, " ")
	pair.Bad = strings.Join(badWords, " ")
	return pair, nil
}

// selectVerbPair hunts for a verb whose root group is complete, retrying
// selection up to the slot-attempt bound. The least-used policy walks the
// candidates, so the bound only matters for lexicons where no complete
// group exists. ok is false on fallback: both forms are the same word.
func (b *Builder) selectVerbPair(tag string) (good, bad string, ok bool, err error) {
	var last lexicon.Entry
	for attempt := 0; attempt < b.slotAttempts; attempt++ {
		e, serr := b.sel.SelectWord(tag)
		if serr != nil {
			return "", "", false, &selector.UnfillableSequenceError{Tag: tag, Err: serr}
		}
		last = e
		if paired, found := b.lex.PairedForm(e); found {
			return e.Word, paired.Word, true, nil
		}
	}
	return last.Word, last.Word, false, nil
}
