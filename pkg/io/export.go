package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/topodyn/braidkit/pkg/braid"
)

type document struct {
	Strands int       `json:"strands,omitempty"`
	Gens    []int     `json:"gens"`
	Times   []float64 `json:"times,omitempty"`
}

// WriteJSON encodes a braid as JSON and writes it to w.
// The output includes the strand count and the crossing times.
// This format can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(c braid.Chrono, w io.Writer) error {
	out := document{
		Strands: c.Strands(),
		Gens:    c.Word().Gens(),
		Times:   c.Times(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a braid to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c braid.Chrono, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
