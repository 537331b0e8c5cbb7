package split

import "strings"

// whitespaceSplitter splits on runs of Unicode whitespace.
type whitespaceSplitter struct{}

// Whitespace returns the whitespace splitter.
func Whitespace() Splitter {
	return whitespaceSplitter{}
}

// Split tokenizes text on whitespace runs.
func (whitespaceSplitter) Split(text string) ([]string, error) {
	return strings.Fields(text), nil
}

// Name returns the strategy name.
func (whitespaceSplitter) Name() string {
	return "whitespace"
}

// characterSplitter emits one token per rune.
type characterSplitter struct{}

// Characters returns the per-rune splitter.
func Characters() Splitter {
	return characterSplitter{}
}

// Split tokenizes text into individual runes.
func (characterSplitter) Split(text string) ([]string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens, nil
}

// Name returns the strategy name.
func (characterSplitter) Name() string {
	return "characters"
}
