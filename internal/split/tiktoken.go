package split

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TikToken splits text into BPE subword token strings using the
// pkoukk/tiktoken-go library.
//
// Each output token is the decoded text of one BPE token ID, so a
// vocabulary adapted over TikToken output is a subword vocabulary.
//
// Supported encodings:
//   - cl100k_base: GPT-4, GPT-3.5-turbo, text-embedding-ada-002
//   - p50k_base: GPT-3, Codex
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken creates a TikToken splitter with the specified encoding.
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &TikToken{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// NewTikTokenForModel creates a TikToken splitter for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}

	return &TikToken{
		encoding: encoding,
		name:     modelName,
	}, nil
}

// Split tokenizes text into the decoded text of each BPE token.
func (t *TikToken) Split(text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}

	ids := t.encoding.Encode(text, nil, nil)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = t.encoding.Decode([]int{id})
	}
	return tokens, nil
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}
