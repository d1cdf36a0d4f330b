// Package loader reads the lexicon and tag-sequence CSV files. Malformed
// input fails fast here, before the generation engine ever runs.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"minpairs/internal/lexicon"
	"minpairs/internal/sequence"
)

// ErrNoRows is returned when a file parses but contains no usable records.
var ErrNoRows = errors.New("no usable rows")

// Lexicon CSV columns.
const (
	colWord = "Word"
	colTag  = "Tag"
)

// Sequence CSV columns.
const (
	colGoodSequence = "Good_Sequence"
	colBadSequence  = "Bad_Sequence"
)

// header maps column names to their positions, so column order in the
// file does not matter.
type header map[string]int

func readHeader(record []string, required ...string) (header, error) {
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return h, nil
}

func (h header) field(record []string, name string) string {
	i := h[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func readAll(path string, required ...string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrNoRows)
	}
	h, err := readHeader(records[0], required...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, records[1:], nil
}

// LoadLexicon reads Word,Tag records into a lexicon. Duplicate records are
// kept as independent entries; blank rows are skipped.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	h, rows, err := readAll(path, colWord, colTag)
	if err != nil {
		return nil, err
	}
	lex := lexicon.New()
	for _, row := range rows {
		lex.Add(h.field(row, colWord), h.field(row, colTag))
	}
	if lex.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRows)
	}
	return lex, nil
}

// LoadSequences reads Good_Sequence,Bad_Sequence records into templates.
// Rows with an empty side are skipped; an error is returned when nothing
// usable remains.
func LoadSequences(path string) ([]sequence.Template, error) {
	h, rows, err := readAll(path, colGoodSequence, colBadSequence)
	if err != nil {
		return nil, err
	}
	var templates []sequence.Template
	for _, row := range rows {
		good := h.field(row, colGoodSequence)
		bad := h.field(row, colBadSequence)
		if good == "" || bad == "" {
			continue
		}
		templates = append(templates, sequence.NewTemplate(good, bad))
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRows)
	}
	return templates, nil
}
