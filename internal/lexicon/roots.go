package lexicon

import "strings"

// Number is the grammatical number encoded by a verb's inflectional ending.
type Number int

const (
	NumberUnknown Number = iota
	NumberSingular
	NumberPlural
)

func (n Number) String() string {
	switch n {
	case NumberSingular:
		return "singular"
	case NumberPlural:
		return "plural"
	default:
		return "unknown"
	}
}

// Opposite returns the contrasting number, or NumberUnknown when there is
// no contrast to draw.
func (n Number) Opposite() Number {
	switch n {
	case NumberSingular:
		return NumberPlural
	case NumberPlural:
		return NumberSingular
	default:
		return NumberUnknown
	}
}

// pluralEndings are checked before the singular ones: "saltano" must strip
// "ano", not "o".
var (
	pluralEndings   = []string{"ano", "ono"}
	singularEndings = []string{"a", "e"}
)

// VerbRoot derives the invariant stem of a regularly inflected Italian verb
// form by stripping the third-person endings. It is a heuristic string
// transform, not a morphological analyzer: irregular pairs whose forms do
// not share a stem under these endings will never match.
func VerbRoot(verb string) string {
	for _, suffix := range pluralEndings {
		if len(verb) > len(suffix) && strings.HasSuffix(verb, suffix) {
			return strings.TrimSuffix(verb, suffix)
		}
	}
	for _, suffix := range singularEndings {
		if len(verb) > len(suffix) && strings.HasSuffix(verb, suffix) {
			return strings.TrimSuffix(verb, suffix)
		}
	}
	return verb
}

// VerbNumber classifies a verb form by its ending.
func VerbNumber(verb string) Number {
	for _, suffix := range pluralEndings {
		if len(verb) > len(suffix) && strings.HasSuffix(verb, suffix) {
			return NumberPlural
		}
	}
	for _, suffix := range singularEndings {
		if len(verb) > len(suffix) && strings.HasSuffix(verb, suffix) {
			return NumberSingular
		}
	}
	return NumberUnknown
}

// RootGroup collects the verb forms sharing one derived root.
type RootGroup struct {
	Root     string
	Singular []Entry
	Plural   []Entry
}

// Complete reports whether the group offers both numbers and can therefore
// supply a contrastive substitution.
func (g RootGroup) Complete() bool {
	return len(g.Singular) > 0 && len(g.Plural) > 0
}

// RootGroups groups every verb-tagged entry by derived root, in order of
// first appearance. Forms whose number cannot be classified are dropped.
func (l *Lexicon) RootGroups() []RootGroup {
	var groups []RootGroup
	byRoot := make(map[string]int)
	for _, tag := range l.tags {
		if !IsVerbTag(tag) {
			continue
		}
		for _, e := range l.entries[tag] {
			num := VerbNumber(e.Word)
			if num == NumberUnknown {
				continue
			}
			root := VerbRoot(e.Word)
			i, ok := byRoot[root]
			if !ok {
				i = len(groups)
				byRoot[root] = i
				groups = append(groups, RootGroup{Root: root})
			}
			if num == NumberSingular {
				groups[i].Singular = append(groups[i].Singular, e)
			} else {
				groups[i].Plural = append(groups[i].Plural, e)
			}
		}
	}
	return groups
}

// PairedForm returns the opposite-number verb form sharing e's root,
// searching every verb-tagged entry in load order. ok is false when e's
// number cannot be determined or its root group is a singleton, meaning no
// contrastive substitution is possible for this entry.
func (l *Lexicon) PairedForm(e Entry) (Entry, bool) {
	want := VerbNumber(e.Word).Opposite()
	if want == NumberUnknown {
		return Entry{}, false
	}
	root := VerbRoot(e.Word)
	for _, tag := range l.tags {
		if !IsVerbTag(tag) {
			continue
		}
		for _, cand := range l.entries[tag] {
			if cand.Word == e.Word {
				continue
			}
			if VerbRoot(cand.Word) == root && VerbNumber(cand.Word) == want {
				return cand, true
			}
		}
	}
	return Entry{}, false
}
