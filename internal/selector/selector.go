// Package selector picks words for tag slots while maximizing lexical
// variety across a generation run.
//
// Selection is greedy least-used: for each slot the entry with the lowest
// (tag, word) usage count wins, ties broken by lexicon load order. This
// keeps usage counts for words sharing a tag within 1 of each other at all
// times, so no word repeats until every alternative has been used at least
// as often.
package selector

import (
	"errors"
	"fmt"

	"minpairs/internal/lexicon"
	"minpairs/internal/sequence"
)

// ErrUnfillable is returned when a sequence references a tag with no
// lexicon entries.
var ErrUnfillable = errors.New("sequence cannot be filled")

// UnfillableSequenceError reports the tag that made a sequence unfillable.
// It wraps ErrUnfillable and the underlying lexicon error.
type UnfillableSequenceError struct {
	Tag string
	Err error
}

func (e *UnfillableSequenceError) Error() string {
	return fmt.Sprintf("sequence cannot be filled: tag %q: %v", e.Tag, e.Err)
}

func (e *UnfillableSequenceError) Unwrap() error { return ErrUnfillable }

// UsageTracker counts (tag, word) picks within one generation run. It is
// owned by a single run and discarded at run end; concurrent runs must each
// hold their own tracker.
type UsageTracker struct {
	counts map[string]map[string]int
}

// NewUsageTracker returns an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{counts: make(map[string]map[string]int)}
}

// Count returns how many times word has been picked for tag.
func (u *UsageTracker) Count(tag, word string) int {
	return u.counts[tag][word]
}

// record increments the (tag, word) count.
func (u *UsageTracker) record(tag, word string) {
	if u.counts[tag] == nil {
		u.counts[tag] = make(map[string]int)
	}
	u.counts[tag][word]++
}

// Snapshot returns a copy of the per-word counts for a tag. Intended for
// tests and diagnostics.
func (u *UsageTracker) Snapshot(tag string) map[string]int {
	out := make(map[string]int, len(u.counts[tag]))
	for w, n := range u.counts[tag] {
		out[w] = n
	}
	return out
}

// Selector fills tag slots from a shared read-only lexicon, tracking usage
// in its run-scoped tracker.
type Selector struct {
	lex   *lexicon.Lexicon
	usage *UsageTracker
}

// New returns a selector over lex with a fresh usage tracker.
func New(lex *lexicon.Lexicon) *Selector {
	return &Selector{lex: lex, usage: NewUsageTracker()}
}

// Usage exposes the run's tracker.
func (s *Selector) Usage() *UsageTracker { return s.usage }

// SelectWord picks the least-used entry for tag and records the pick.
func (s *Selector) SelectWord(tag string) (lexicon.Entry, error) {
	entries, err := s.lex.WordsForTag(tag)
	if err != nil {
		return lexicon.Entry{}, err
	}
	base := lexicon.BaseTag(tag)
	best := entries[0]
	bestCount := s.usage.Count(base, best.Word)
	for _, e := range entries[1:] {
		if c := s.usage.Count(base, e.Word); c < bestCount {
			best, bestCount = e, c
		}
	}
	s.usage.record(base, best.Word)
	return best, nil
}

// SelectSequence fills each slot in order. Slots are independent; no
// cross-slot agreement is enforced here. A tag with no entries fails the
// whole selection with an UnfillableSequenceError.
func (s *Selector) SelectSequence(tags []sequence.Tag) ([]lexicon.Entry, error) {
	out := make([]lexicon.Entry, 0, len(tags))
	for _, t := range tags {
		e, err := s.SelectWord(t.Base)
		if err != nil {
			return nil, &UnfillableSequenceError{Tag: t.Base, Err: err}
		}
		out = append(out, e)
	}
	return out, nil
}
