package sequence

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		in   string
		want Tag
	}{
		{"VERB₁", Tag{Raw: "VERB₁", Base: "VERB", Index: '₁'}},
		{"NOUN", Tag{Raw: "NOUN", Base: "NOUN", Index: 0}},
		{" det ", Tag{Raw: "det", Base: "DET", Index: 0}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, ParseTag(c.in)); diff != "" {
			t.Errorf("ParseTag(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags("DET NOUN  VERB₂")
	want := []Tag{
		{Raw: "DET", Base: "DET"},
		{Raw: "NOUN", Base: "NOUN"},
		{Raw: "VERB₂", Base: "VERB", Index: '₂'},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTags mismatch (-want +got):\n%s", diff)
	}
}

func TestRaws(t *testing.T) {
	tags := ParseTags("DET VERB₁")
	got := Raws(tags)
	want := []string{"DET", "VERB₁"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Raws mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPool_DropsEmptySides(t *testing.T) {
	pool, err := NewPool([]Template{
		NewTemplate("DET NOUN VERB", "DET NOUN VERB"),
		NewTemplate("", "DET NOUN"),
		NewTemplate("NOUN VERB", ""),
	})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if pool.Len() != 1 {
		t.Errorf("expected 1 usable template, got %d", pool.Len())
	}
}

func TestNewPool_Empty(t *testing.T) {
	_, err := NewPool(nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("expected ErrEmptyPool, got %v", err)
	}
}

func TestPoolNext_Wraparound(t *testing.T) {
	pool, err := NewPool([]Template{
		NewTemplate("DET NOUN", "DET NOUN"),
		NewTemplate("NOUN VERB", "NOUN VERB"),
	})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}

	first := pool.Next()
	second := pool.Next()
	third := pool.Next() // wraps to the first template

	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("wraparound should repeat the first template (-first +third):\n%s", diff)
	}
	if cmp.Equal(first, second) {
		t.Error("consecutive templates should differ while the pool is unexhausted")
	}
}

func TestPoolClone_IndependentCursor(t *testing.T) {
	pool, err := NewPool([]Template{
		NewTemplate("DET NOUN", "DET NOUN"),
		NewTemplate("NOUN VERB", "NOUN VERB"),
	})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}

	pool.Next() // advance the original cursor

	clone := pool.Clone()
	got := clone.Next()
	want := NewTemplate("DET NOUN", "DET NOUN")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clone must start from the beginning (-want +got):\n%s", diff)
	}
}
