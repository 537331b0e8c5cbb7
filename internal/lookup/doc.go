// Package lookup implements string/categorical vocabulary lookup and
// encoding.
//
// The central type is StringLookup: a bidirectional mapping between tokens
// and integer indices with reserved mask and OOV slots, producing one of
// five encodings for batches of token sequences:
//   - int: the vocabulary index of each token, elementwise
//   - one_hot: a vocabulary-sized vector with a 1 at the token's index
//   - multi_hot: presence flags per vocabulary entry
//   - count: occurrence counts per vocabulary entry
//   - tf_idf: counts scaled by inverse document frequency weights
//
// The vocabulary is either supplied directly or learned from data:
//
//	enc, err := lookup.New(lookup.Config{OutputMode: lookup.ModeInt})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc.Adapt([][]string{{"a", "c", "d"}, {"d", "z", "b"}})
//	enc.FinalizeState()
//	out, err := enc.CallInt([][]string{{"a", "c", "d"}, {"d", "z", "b"}})
//
// Adapt may be called repeatedly to accumulate statistics; FinalizeState
// orders tokens by descending frequency (ties broken by token sort order,
// high to low) and installs the vocabulary. Unknown tokens at lookup time
// map deterministically into the configured OOV slots.
package lookup
