package lookup

// vocabulary is the ordered token <-> index store behind a StringLookup.
//
// The token sequence includes the reserved slots: in int mode the layout is
// [mask?][oov...][tokens...], in all other modes [oov...][tokens...] with the
// mask token dropped. The OOV token is not entered in the index map; misses
// are resolved by the encoder's OOV bucketing so that the literal OOV token
// behaves like any other unseen token.
type vocabulary struct {
	tokens   []string         // full ordered sequence, reserved slots first
	index    map[string]int64 // token -> index, reserved OOV slots excluded
	reserved int              // number of leading reserved slots
}

// newVocabulary lays out reserved slots followed by userTokens.
// userTokens must already be deduplicated and free of reserved tokens.
func newVocabulary(userTokens []string, maskToken string, hasMask bool, oovToken string, numOOV int) *vocabulary {
	reserved := numOOV
	if hasMask {
		reserved++
	}

	tokens := make([]string, 0, reserved+len(userTokens))
	index := make(map[string]int64, len(userTokens)+1)

	if hasMask {
		index[maskToken] = int64(len(tokens))
		tokens = append(tokens, maskToken)
	}
	for i := 0; i < numOOV; i++ {
		tokens = append(tokens, oovToken)
	}
	for _, tok := range userTokens {
		index[tok] = int64(len(tokens))
		tokens = append(tokens, tok)
	}

	return &vocabulary{
		tokens:   tokens,
		index:    index,
		reserved: reserved,
	}
}

// size returns the full vocabulary length including reserved slots.
func (v *vocabulary) size() int {
	return len(v.tokens)
}

// list returns the ordered token sequence. Both views are projections over
// the same stored sequence; with includeSpecial a token's position in the
// returned slice equals its lookup index.
func (v *vocabulary) list(includeSpecial bool) []string {
	src := v.tokens
	if !includeSpecial {
		src = v.tokens[v.reserved:]
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// indexOf resolves a token to its index. Reserved OOV slots never match.
func (v *vocabulary) indexOf(token string) (int64, bool) {
	idx, ok := v.index[token]
	return idx, ok
}

// tokenAt returns the token stored at index i, including reserved slots.
func (v *vocabulary) tokenAt(i int64) (string, bool) {
	if i < 0 || i >= int64(len(v.tokens)) {
		return "", false
	}
	return v.tokens[i], true
}
