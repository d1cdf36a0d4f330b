package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadLexicon(t *testing.T) {
	path := writeFile(t, "lexicon.csv", "Word,Tag\ngatto,NOUN\n salta , VERB \nsaltano,VERB\n")

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	if lex.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", lex.Len())
	}

	entries, err := lex.WordsForTag("VERB")
	if err != nil {
		t.Fatalf("WordsForTag failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Word != "salta" {
		t.Errorf("whitespace not trimmed or order lost: %v", entries)
	}
}

func TestLoadLexicon_ColumnOrderFree(t *testing.T) {
	path := writeFile(t, "lexicon.csv", "Tag,Word\nNOUN,gatto\n")

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	entries, err := lex.WordsForTag("NOUN")
	if err != nil {
		t.Fatalf("WordsForTag failed: %v", err)
	}
	if entries[0].Word != "gatto" {
		t.Errorf("columns must be resolved by header name, got %v", entries)
	}
}

func TestLoadLexicon_MissingColumn(t *testing.T) {
	path := writeFile(t, "lexicon.csv", "Word,PartOfSpeech\ngatto,NOUN\n")

	_, err := LoadLexicon(path)
	if err == nil {
		t.Fatal("expected error for missing Tag column")
	}
}

func TestLoadLexicon_EmptyFile(t *testing.T) {
	path := writeFile(t, "lexicon.csv", "Word,Tag\n")

	_, err := LoadLexicon(path)
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("expected ErrNoRows, got %v", err)
	}
}

func TestLoadLexicon_FileNotFound(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSequences(t *testing.T) {
	path := writeFile(t, "sequences.csv",
		"Good_Sequence,Bad_Sequence\nDET NOUN VERB,DET NOUN VERB\nNOUN VERB₁,NOUN VERB₁\n")

	templates, err := LoadSequences(path)
	if err != nil {
		t.Fatalf("LoadSequences failed: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}
	if len(templates[0].Good) != 3 || templates[0].Good[0].Base != "DET" {
		t.Errorf("first template not parsed: %+v", templates[0])
	}
	if templates[1].Good[1].Index != '₁' {
		t.Errorf("subscript lost in parsing: %+v", templates[1].Good[1])
	}
}

func TestLoadSequences_SkipsIncompleteRows(t *testing.T) {
	path := writeFile(t, "sequences.csv",
		"Good_Sequence,Bad_Sequence\nDET NOUN,\n,NOUN VERB\nDET NOUN VERB,DET NOUN VERB\n")

	templates, err := LoadSequences(path)
	if err != nil {
		t.Fatalf("LoadSequences failed: %v", err)
	}
	if len(templates) != 1 {
		t.Errorf("rows with an empty side must be skipped, got %d templates", len(templates))
	}
}

func TestLoadSequences_NoUsableRows(t *testing.T) {
	path := writeFile(t, "sequences.csv", "Good_Sequence,Bad_Sequence\n,\n")

	_, err := LoadSequences(path)
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("expected ErrNoRows, got %v", err)
	}
}
