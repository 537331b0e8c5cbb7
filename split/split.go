// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package split provides text splitting strategies for vocabulary encoders.
//
// This package wraps the internal splitter implementations and provides
// a clean public API.
//
// Example usage:
//
//	import "github.com/born-ml/prep/split"
//
//	s := split.Whitespace()
//	tokens, err := s.Split("the quick brown fox")
//	// tokens == ["the", "quick", "brown", "fox"]
//
//	// Subword splitting via tiktoken BPE
//	bpe, err := split.NewTikToken("cl100k_base")
package split

import (
	"github.com/born-ml/prep/internal/split"
)

// Splitter turns one text into an ordered token sequence.
type Splitter = split.Splitter

// Whitespace returns a splitter that splits on Unicode whitespace runs.
func Whitespace() Splitter {
	return split.Whitespace()
}

// Characters returns a splitter that emits one token per rune.
func Characters() Splitter {
	return split.Characters()
}

// NewTikToken creates a BPE subword splitter with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (Splitter, error) {
	return split.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a BPE subword splitter for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (Splitter, error) {
	return split.NewTikTokenForModel(modelName)
}
