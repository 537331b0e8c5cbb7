// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package lookup provides string/categorical vocabulary lookup and encoding.
//
// This package wraps the internal implementation and provides the clean
// public API for vocabulary encoders.
//
// A StringLookup maps arbitrary strings to integer indices via a
// table-based vocabulary, with reserved mask and out-of-vocabulary slots,
// and encodes batches as int, one-hot, multi-hot, count or tf-idf tensors.
//
// Example usage:
//
//	import "github.com/born-ml/prep/lookup"
//
//	// With a known vocabulary
//	enc, err := lookup.New(lookup.Config{
//	    Vocabulary: []string{"a", "b", "c", "d"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := enc.CallInt([][]string{{"a", "c", "d"}, {"d", "z", "b"}})
//	// out.Data() == [1, 3, 4, 4, 0, 2]
//
//	// With an adapted vocabulary
//	enc, err = lookup.New(lookup.Config{OutputMode: lookup.ModeTFIDF})
//	enc.Adapt(trainBatch)
//	enc.FinalizeState()
//	vectors, err := enc.Call(testBatch)
package lookup

import (
	"github.com/born-ml/prep/internal/lookup"
)

// Encoder is the vocabulary lookup and encoding interface.
//
// All encoder implementations must implement this interface.
type Encoder = lookup.Encoder

// StringLookup is the native Encoder implementation.
type StringLookup = lookup.StringLookup

// Config holds the construction parameters of a StringLookup.
type Config = lookup.Config

// OutputMode selects how Call encodes a batch of samples.
type OutputMode = lookup.OutputMode

// Output mode constants.
const (
	ModeInt      OutputMode = lookup.ModeInt
	ModeOneHot   OutputMode = lookup.ModeOneHot
	ModeMultiHot OutputMode = lookup.ModeMultiHot
	ModeCount    OutputMode = lookup.ModeCount
	ModeTFIDF    OutputMode = lookup.ModeTFIDF
)

// DefaultOOVToken is the default token reported for OOV slots.
const DefaultOOVToken = lookup.DefaultOOVToken

// OOVIndicesNone disables OOV capacity; unknown tokens become lookup errors.
const OOVIndicesNone = lookup.OOVIndicesNone

// Error types.
type (
	// ConfigError reports an invalid or contradictory configuration.
	ConfigError = lookup.ConfigError

	// LookupError reports an unresolvable token or index.
	LookupError = lookup.LookupError

	// StateError reports an operation invoked before a vocabulary exists.
	StateError = lookup.StateError
)

// ErrNoVocabulary is the condition wrapped by StateError when an operation
// needs a vocabulary and none has been adapted or set.
var ErrNoVocabulary = lookup.ErrNoVocabulary

// New creates a StringLookup from a validated Config.
func New(cfg Config) (*StringLookup, error) {
	return lookup.New(cfg)
}

// NewFromVocabularyFile creates a StringLookup with its vocabulary loaded
// from a line-delimited text file (one token per line).
func NewFromVocabularyFile(cfg Config, path string) (*StringLookup, error) {
	return lookup.NewFromVocabularyFile(cfg, path)
}

// ParseOutputMode converts a mode name ("int", "one_hot", "multi_hot",
// "count", "tf_idf") to an OutputMode.
func ParseOutputMode(name string) (OutputMode, error) {
	return lookup.ParseOutputMode(name)
}

// LoadVocabularyFile reads a line-delimited vocabulary file.
func LoadVocabularyFile(path string) ([]string, error) {
	return lookup.LoadVocabularyFile(path)
}

// SaveVocabularyFile writes tokens to a line-delimited vocabulary file.
func SaveVocabularyFile(path string, tokens []string) error {
	return lookup.SaveVocabularyFile(path, tokens)
}

// LoadIDFWeightsFile reads a line-delimited idf weights file.
func LoadIDFWeightsFile(path string) ([]float64, error) {
	return lookup.LoadIDFWeightsFile(path)
}

// SaveIDFWeightsFile writes per-slot idf weights, one float per line.
func SaveIDFWeightsFile(path string, weights []float64) error {
	return lookup.SaveIDFWeightsFile(path, weights)
}
