// Package vectorize composes text standardization, splitting and vocabulary
// encoding into a single adapt-then-call pipeline.
package vectorize

import (
	"strings"
	"unicode"

	"github.com/born-ml/prep/internal/lookup"
	"github.com/born-ml/prep/internal/split"
	"github.com/born-ml/prep/internal/tensor"
)

// Standardizer normalizes raw text before splitting. A nil Standardizer
// leaves text untouched.
type Standardizer func(string) string

// LowerAndStripPunctuation lowercases text and removes punctuation.
// This is the default standardization.
func LowerAndStripPunctuation(text string) string {
	lower := strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, lower)
}

// TextVectorizer maps raw text to encoded tensors: standardize, split,
// then encode through a StringLookup.
//
// Example:
//
//	v, err := vectorize.New(lookup.Config{OutputMode: lookup.ModeTFIDF},
//	    split.Whitespace(), vectorize.LowerAndStripPunctuation)
//	v.Adapt(docs)
//	v.Finalize()
//	out, err := v.Call(docs) // [len(docs), vocab_size] tf-idf tensor
type TextVectorizer struct {
	standardize Standardizer
	splitter    split.Splitter
	encoder     *lookup.StringLookup
}

// New creates a TextVectorizer. The config is validated exactly as by
// lookup.New; splitter must be non-nil.
func New(cfg lookup.Config, splitter split.Splitter, standardize Standardizer) (*TextVectorizer, error) {
	enc, err := lookup.New(cfg)
	if err != nil {
		return nil, err
	}
	return &TextVectorizer{
		standardize: standardize,
		splitter:    splitter,
		encoder:     enc,
	}, nil
}

// Encoder exposes the underlying StringLookup, e.g. for SaveAssets or
// Vocabulary inspection.
func (v *TextVectorizer) Encoder() *lookup.StringLookup {
	return v.encoder
}

// Adapt streams texts into the encoder's frequency statistics. Each text is
// one sample (one document in tf-idf terms).
func (v *TextVectorizer) Adapt(texts []string) error {
	batch, err := v.prepare(texts)
	if err != nil {
		return err
	}
	v.encoder.Adapt(batch)
	return nil
}

// Finalize turns accumulated statistics into the vocabulary.
func (v *TextVectorizer) Finalize() {
	v.encoder.FinalizeState()
}

// Call encodes texts in the configured binned output mode.
func (v *TextVectorizer) Call(texts []string) (*tensor.Tensor[float32], error) {
	batch, err := v.prepare(texts)
	if err != nil {
		return nil, err
	}
	return v.encoder.Call(batch)
}

// CallInt encodes texts to vocabulary indices. Because splitting yields
// ragged rows, shorter rows are padded with the mask token when one is
// configured; otherwise the texts must split to equal lengths.
func (v *TextVectorizer) CallInt(texts []string) (*tensor.Tensor[int64], error) {
	batch, err := v.prepare(texts)
	if err != nil {
		return nil, err
	}

	cfg := v.encoder.Config()
	if cfg.MaskToken != "" {
		longest := 0
		for _, row := range batch {
			if len(row) > longest {
				longest = len(row)
			}
		}
		for i, row := range batch {
			for len(row) < longest {
				row = append(row, cfg.MaskToken)
			}
			batch[i] = row
		}
	}
	return v.encoder.CallInt(batch)
}

func (v *TextVectorizer) prepare(texts []string) ([][]string, error) {
	batch := make([][]string, len(texts))
	for i, text := range texts {
		if v.standardize != nil {
			text = v.standardize(text)
		}
		tokens, err := v.splitter.Split(text)
		if err != nil {
			return nil, err
		}
		batch[i] = tokens
	}
	return batch, nil
}
