// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vectorize provides the text vectorization pipeline: standardize,
// split, then encode through a vocabulary lookup.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/prep/lookup"
//	    "github.com/born-ml/prep/split"
//	    "github.com/born-ml/prep/vectorize"
//	)
//
//	v, err := vectorize.New(lookup.Config{
//	    OutputMode: lookup.ModeTFIDF,
//	    MaxTokens:  1000,
//	}, split.Whitespace(), vectorize.LowerAndStripPunctuation)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := v.Adapt(docs); err != nil {
//	    log.Fatal(err)
//	}
//	v.Finalize()
//	vectors, err := v.Call(docs) // [len(docs), vocab_size]
package vectorize

import (
	"github.com/born-ml/prep/internal/lookup"
	"github.com/born-ml/prep/internal/split"
	"github.com/born-ml/prep/internal/vectorize"
)

// TextVectorizer maps raw text to encoded tensors.
type TextVectorizer = vectorize.TextVectorizer

// Standardizer normalizes raw text before splitting.
type Standardizer = vectorize.Standardizer

// LowerAndStripPunctuation lowercases text and removes punctuation.
func LowerAndStripPunctuation(text string) string {
	return vectorize.LowerAndStripPunctuation(text)
}

// New creates a TextVectorizer from an encoder config, a splitter and an
// optional standardizer (nil leaves text untouched).
func New(cfg lookup.Config, splitter split.Splitter, standardize Standardizer) (*TextVectorizer, error) {
	return vectorize.New(cfg, splitter, standardize)
}
