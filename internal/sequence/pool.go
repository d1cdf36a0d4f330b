// Package sequence holds the tag-sequence templates a generation run draws
// from. Templates are read-only after load; the pool cursor is the only
// mutable state and belongs to a single run.
package sequence

import (
	"errors"
	"strings"

	"minpairs/internal/lexicon"
)

// ErrEmptyPool is returned when a pool is created without templates.
var ErrEmptyPool = errors.New("sequence pool is empty")

// Tag is one template slot. Raw keeps the form as loaded (subscript
// included) for echoing back in output; Base addresses the lexicon; Index
// is the coindexing subscript, or 0 when the slot is unsubscripted.
type Tag struct {
	Raw   string
	Base  string
	Index rune
}

// ParseTag splits a tag token into its base form and coindexing subscript.
func ParseTag(token string) Tag {
	token = strings.TrimSpace(token)
	t := Tag{Raw: token, Base: lexicon.BaseTag(token)}
	for _, r := range token {
		if r >= '₁' && r <= '₉' {
			t.Index = r
			break
		}
	}
	return t
}

// ParseTags parses a whitespace-delimited tag sequence string.
func ParseTags(s string) []Tag {
	fields := strings.Fields(s)
	tags := make([]Tag, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, ParseTag(f))
	}
	return tags
}

// Raws returns the tags' raw forms in order.
func Raws(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Raw
	}
	return out
}

// Template pairs a grammatical tag sequence with its ungrammatical
// counterpart. The two sides are typically position-aligned and of equal
// length; unmatched tail positions are treated independently.
type Template struct {
	Good []Tag
	Bad  []Tag
}

// NewTemplate parses a template from its two sequence strings.
func NewTemplate(good, bad string) Template {
	return Template{Good: ParseTags(good), Bad: ParseTags(bad)}
}

// Pool serves templates in load order, wrapping around once every template
// has been used, so a target pair count larger than the pool still produces
// output through fresh word fills.
type Pool struct {
	templates []Template
	cursor    int
}

// NewPool builds a pool over the given templates. Templates with an empty
// side are dropped; an error is returned when nothing usable remains.
func NewPool(templates []Template) (*Pool, error) {
	usable := make([]Template, 0, len(templates))
	for _, t := range templates {
		if len(t.Good) == 0 || len(t.Bad) == 0 {
			continue
		}
		usable = append(usable, t)
	}
	if len(usable) == 0 {
		return nil, ErrEmptyPool
	}
	return &Pool{templates: usable}, nil
}

// Next returns the next template in stable load order, wrapping around.
func (p *Pool) Next() Template {
	t := p.templates[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.templates)
	return t
}

// Len returns the number of usable templates.
func (p *Pool) Len() int { return len(p.templates) }

// Clone returns a pool over the same templates with a fresh cursor, for
// runs that must not share iteration state.
func (p *Pool) Clone() *Pool {
	return &Pool{templates: p.templates}
}
