// Package split turns raw text into token sequences for vocabulary
// encoders.
//
// Splitters do no vocabulary lookup themselves; they feed the lookup
// package, which performs no splitting of its own.
//
// Available strategies:
//   - Whitespace: split on Unicode whitespace runs (the usual default for
//     bag-of-words vocabularies)
//   - Characters: one token per rune
//   - TikToken: BPE subword tokens via OpenAI encodings
package split

// Splitter turns one text into an ordered token sequence.
type Splitter interface {
	// Split tokenizes text. An empty text yields an empty sequence.
	Split(text string) ([]string, error)

	// Name returns the strategy name (e.g. "whitespace").
	Name() string
}
