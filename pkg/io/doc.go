// Package io provides JSON and plain-text import and export for braids.
//
// # Overview
//
// This package enables serialization of braid words, with or without
// crossing times, to and from a simple JSON format. The format is designed
// for:
//
//   - Exchanging braids with external tools that produce or consume them
//   - Storing trajectory-derived braids alongside their crossing times
//   - Round-trip preservation: import, transform, export, re-import
//
// # JSON Format
//
// The format has one required field, "gens", the braid word as signed
// generator indices:
//
//	{
//	  "strands": 4,
//	  "gens": [1, -2, 3],
//	  "times": [0.5, 1.0, 1.5]
//	}
//
// Optional fields:
//   - strands: strand count (the smallest count the word fits on if omitted)
//   - times: strictly ordered crossing times, one per generator (defaults to
//     1, 2, 3, ... if omitted)
//
// # Import
//
// Use [ImportJSON] to read a braid from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	c, err := io.ImportJSON("braid.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w := c.Word()
//
// Both functions validate the word and the chronology. Errors are wrapped
// with context about which field caused the problem.
//
// # Export
//
// Use [ExportJSON] to write a braid to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(c, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export always includes the strand count and the crossing times, so a
// word lifted to extra strands or renumbered in time survives the round
// trip exactly.
//
// # Plain Text
//
// [ReadText] and [ImportText] read line-oriented word lists, one braid word
// per line as whitespace- or comma-separated generators, with # starting a
// comment. This is the format the CLI accepts for batch analysis.
package io
