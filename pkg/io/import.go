package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/topodyn/braidkit/pkg/braid"
)

// ReadJSON decodes a JSON braid from r.
//
// The input must be a JSON object with a "gens" array:
//
//	{"strands": 4, "gens": [1, -2, 3], "times": [0.5, 1.0, 1.5]}
//
// Optional fields:
//   - strands: forces a strand count above the word's own requirement
//   - times: one crossing time per generator, non-decreasing
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A generator index is zero or outside the strand count
//   - The times don't match the word in count or ordering
//
// Errors are wrapped with context describing which field caused the
// problem. The returned braid is independent of r; ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (braid.Chrono, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return braid.Chrono{}, fmt.Errorf("decode: %w", err)
	}

	w, err := braid.FromGens(data.Gens)
	if err != nil {
		return braid.Chrono{}, fmt.Errorf("gens: %w", err)
	}
	if data.Strands != 0 {
		if w, err = w.WithStrands(data.Strands); err != nil {
			return braid.Chrono{}, fmt.Errorf("strands: %w", err)
		}
	}
	c, err := braid.NewChrono(w, data.Times)
	if err != nil {
		return braid.Chrono{}, fmt.Errorf("times: %w", err)
	}
	return c, nil
}

// ImportJSON reads a JSON file at path and returns the decoded braid.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for
// context.
func ImportJSON(path string) (braid.Chrono, error) {
	f, err := os.Open(path)
	if err != nil {
		return braid.Chrono{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadText decodes a line-oriented word list from r: one braid word per
// line as whitespace- or comma-separated signed generator indices. Blank
// lines are skipped and # starts a comment.
func ReadText(r io.Reader) ([]braid.Word, error) {
	var words []braid.Word
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		gens := make([]int, len(fields))
		for i, f := range fields {
			g, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: generator %q: %w", lineNo, f, err)
			}
			gens[i] = g
		}
		w, err := braid.FromGens(gens)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return words, nil
}

// ImportText reads a word list file at path using [ReadText].
func ImportText(path string) ([]braid.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f)
}
