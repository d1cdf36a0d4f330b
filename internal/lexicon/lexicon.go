// Package lexicon indexes the word lexicon by grammatical tag and derives
// singular/plural verb pairings from shared roots.
//
// The lexicon is read-only after load and safe to share across concurrent
// generation runs; all per-run mutable state lives in the selector package.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTag is returned when a tag has no lexicon entries.
var ErrEmptyTag = errors.New("no lexicon entries for tag")

// EmptyTagError reports a tag with no entries. It wraps ErrEmptyTag so
// callers can match with errors.Is.
type EmptyTagError struct {
	Tag string
}

func (e *EmptyTagError) Error() string {
	return fmt.Sprintf("no lexicon entries for tag %q", e.Tag)
}

func (e *EmptyTagError) Unwrap() error { return ErrEmptyTag }

// Entry is a single lexicon record. Duplicate (word, tag) records are kept
// as independent entries in load order.
type Entry struct {
	Word string
	Tag  string
}

// Lexicon maps base tags to their entries, preserving insertion order so
// selection tie-breaks are reproducible across runs.
type Lexicon struct {
	entries map[string][]Entry
	tags    []string
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string][]Entry)}
}

// Add appends an entry under the base form of its tag. Word and tag are
// trimmed; blank records are ignored.
func (l *Lexicon) Add(word, tag string) {
	word = strings.TrimSpace(word)
	base := BaseTag(tag)
	if word == "" || base == "" {
		return
	}
	if _, ok := l.entries[base]; !ok {
		l.tags = append(l.tags, base)
	}
	l.entries[base] = append(l.entries[base], Entry{Word: word, Tag: base})
}

// WordsForTag returns the entries for the base form of tag, in load order.
// Returns an EmptyTagError when the tag has no entries.
func (l *Lexicon) WordsForTag(tag string) ([]Entry, error) {
	base := BaseTag(tag)
	entries, ok := l.entries[base]
	if !ok || len(entries) == 0 {
		return nil, &EmptyTagError{Tag: base}
	}
	return entries, nil
}

// Tags returns all base tags in load order.
func (l *Lexicon) Tags() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}

// Len returns the total number of entries.
func (l *Lexicon) Len() int {
	n := 0
	for _, entries := range l.entries {
		n += len(entries)
	}
	return n
}

// BaseTag strips any coindexing subscript and upper-cases the tag, yielding
// the form that addresses the lexicon.
func BaseTag(tag string) string {
	tag = strings.TrimSpace(tag)
	var b strings.Builder
	for _, r := range tag {
		if r >= '₁' && r <= '₉' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// IsVerbTag reports whether a tag names a number-inflectable verb slot.
func IsVerbTag(tag string) bool {
	return strings.Contains(BaseTag(tag), "VERB")
}
