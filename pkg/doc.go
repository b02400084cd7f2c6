// Package pkg provides the core libraries for braidkit braid analysis.
//
// # Overview
//
// Braidkit computes with braid groups through their action on multicurves
// in Dynnikov coordinates. The pkg directory is organized into four main
// areas:
//
//  1. [braid], [loop], [numeric] - Domain types (words, loop coordinates, scalars)
//  2. [dynamics] - Analyses (equality, entropy, complexity)
//  3. [cache], [observability], [errors], [io] - Infrastructure
//  4. [pipeline] - Orchestration (parse → compute → encode)
//
// # Architecture
//
// The typical data flow through braidkit:
//
//	Braid word (generators, optionally with crossing times)
//	         ↓
//	    [braid] package (word algebra, chronology)
//	         ↓
//	    [loop] package (Dynnikov coordinates, generator action)
//	         ↓
//	    [dynamics] package (equality, entropy, complexity)
//	         ↓
//	    JSON result / terminal output
//
// # Quick Start
//
// Decide whether two words are the same braid:
//
//	w1, _ := braid.FromGens([]int{1, 2, 1})
//	w2, _ := braid.FromGens([]int{2, 1, 2})
//	equal, _ := dynamics.Eq(w1, w2, dynamics.Options{})
//
// Estimate topological entropy:
//
//	w, _ := braid.FromGens([]int{1, -2})
//	res, _ := dynamics.Entropy(w, dynamics.EntropyOptions{})
//	fmt.Println(res.Entropy)
//
// # Numeric Representations
//
// Loop coordinates grow exponentially under iteration, so every
// coordinate-touching operation takes a [numeric.Kind]: checked 32- and
// 64-bit integers that report overflow, arbitrary-precision integers, and
// floating point for the iterative entropy estimate.
package pkg
