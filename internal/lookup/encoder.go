package lookup

import (
	"hash/fnv"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/prep/internal/tensor"
)

// Encoder is the vocabulary lookup and encoding contract.
//
// An Encoder owns a bidirectional mapping between category tokens and
// integer indices and produces fixed-shape numeric encodings for batches of
// token sequences. Implementations are not internally synchronized: Adapt,
// FinalizeState and SetVocabulary must be serialized by the caller, while
// Lookup and the Call variants are safe for concurrent readers once the
// vocabulary is in place.
type Encoder interface {
	// Adapt folds one batch of samples into the frequency statistics.
	Adapt(batch [][]string)

	// FinalizeState turns accumulated statistics into the vocabulary.
	FinalizeState()

	// ResetState discards accumulated statistics without touching the
	// vocabulary.
	ResetState()

	// SetVocabulary installs a finalized vocabulary directly.
	SetVocabulary(tokens []string, idfWeights []float64) error

	// Lookup resolves a single token to its index.
	Lookup(token string) (int64, error)

	// TokenOf resolves an index back to its token.
	TokenOf(index int64) (string, error)

	// CallInt encodes a rectangular batch to vocabulary indices.
	CallInt(batch [][]string) (*tensor.Tensor[int64], error)

	// Call encodes a batch in the configured binned output mode.
	Call(batch [][]string) (*tensor.Tensor[float32], error)

	// CallInverse maps index batches back to tokens (Invert mode).
	CallInverse(batch [][]int64) ([][]string, error)

	// Vocabulary returns the ordered token sequence, with or without the
	// reserved mask and OOV slots.
	Vocabulary(includeSpecialTokens bool) []string

	// VocabularySize returns the vocabulary length including reserved slots.
	VocabularySize() int

	// IDFWeights returns the per-slot inverse document frequency weights
	// (ModeTFIDF only, OOV slots first).
	IDFWeights() []float64

	// SaveAssets writes the vocabulary (and idf weights) under dir.
	SaveAssets(dir string) error

	// LoadAssets restores state written by SaveAssets.
	LoadAssets(dir string) error
}

// StringLookup maps strings to (possibly encoded) indices via a table-based
// vocabulary lookup. It performs no splitting or transformation of its
// input; see the split and vectorize packages for that.
//
// The vocabulary is either supplied up front (Config.Vocabulary or
// SetVocabulary) or learned from data with Adapt followed by FinalizeState.
// In ModeInt the vocabulary begins with the mask token (if set) followed by
// the OOV slots; in the binned modes it begins with the OOV slots and mask
// tokens are dropped.
type StringLookup struct {
	cfg   Config
	vocab *vocabulary
	idf   []float64 // per-slot weights on the binned feature axis, OOV first
	freq  *freqTable
}

var _ Encoder = (*StringLookup)(nil)

// New creates a StringLookup from a validated Config.
func New(cfg Config) (*StringLookup, error) {
	if cfg.OOVToken == "" {
		cfg.OOVToken = DefaultOOVToken
	}
	switch cfg.NumOOVIndices {
	case 0:
		cfg.NumOOVIndices = 1
	case OOVIndicesNone:
		cfg.NumOOVIndices = 0
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &StringLookup{
		cfg:  cfg,
		freq: newFreqTable(),
	}
	if cfg.Vocabulary != nil {
		if err := s.SetVocabulary(cfg.Vocabulary, cfg.IDFWeights); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Config returns a copy of the encoder's configuration.
func (s *StringLookup) Config() Config {
	return s.cfg
}

// Adapt streams one batch of samples into the frequency table. Each sample
// is an ordered token sequence; samples may differ in length. Repeated calls
// accumulate until FinalizeState consumes the statistics. Reserved mask and
// OOV tokens occurring in the data are never learned.
func (s *StringLookup) Adapt(batch [][]string) {
	trackDocs := s.cfg.OutputMode == ModeTFIDF
	for _, sample := range batch {
		s.freq.update(sample, trackDocs, s.isReservedToken)
	}
}

func (s *StringLookup) isReservedToken(tok string) bool {
	return tok == s.cfg.OOVToken || (s.cfg.hasMask() && tok == s.cfg.MaskToken)
}

// FinalizeState orders the accumulated tokens by frequency (descending,
// ties broken by token sort order high to low), truncates to MaxTokens,
// computes idf weights in ModeTFIDF, and installs the result as the
// vocabulary. The frequency table is cleared afterwards, so calling
// FinalizeState again without an intervening Adapt leaves the vocabulary
// unchanged.
func (s *StringLookup) FinalizeState() {
	if s.freq.empty() {
		return
	}

	entries := s.freq.sorted()
	if limit := s.retainLimit(); limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	tokens := make([]string, len(entries))
	for i, e := range entries {
		tokens[i] = e.token
	}

	if s.cfg.OutputMode == ModeTFIDF {
		weights := make([]float64, len(entries))
		for i, e := range entries {
			weights[i] = math.Log(1 + float64(s.freq.numDocs)/(1+float64(e.docCount)))
		}
		s.idf = s.slotWeights(weights, oovWeightOf(weights))
	}

	s.vocab = newVocabulary(tokens, s.cfg.MaskToken, s.cfg.hasMask(), s.cfg.OOVToken, s.cfg.NumOOVIndices)
	s.freq.reset()
}

// retainLimit returns how many learned tokens fit under MaxTokens, or -1
// when the vocabulary is uncapped.
func (s *StringLookup) retainLimit() int {
	if s.cfg.MaxTokens == 0 {
		return -1
	}
	return s.cfg.MaxTokens - s.cfg.reservedSlots()
}

// oovWeightOf is the idf weight assigned to OOV slots: the arithmetic mean
// of the learned or supplied weights.
func oovWeightOf(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	return stat.Mean(weights, nil)
}

// slotWeights lays per-token weights onto the binned feature axis, with
// every OOV slot carrying oovWeight.
func (s *StringLookup) slotWeights(tokenWeights []float64, oovWeight float64) []float64 {
	slots := make([]float64, 0, s.cfg.NumOOVIndices+len(tokenWeights))
	for i := 0; i < s.cfg.NumOOVIndices; i++ {
		slots = append(slots, oovWeight)
	}
	return append(slots, tokenWeights...)
}

// ResetState clears the frequency table, ready for a fresh adapt cycle.
// Partial adapt progress is discarded; the vocabulary is untouched.
func (s *StringLookup) ResetState() {
	s.freq.reset()
}

// SetVocabulary installs a finalized vocabulary directly, bypassing
// Adapt and FinalizeState. If vocabulary data is already present it is
// replaced.
//
// tokens may include the reserved slot prefix (mask token, then the OOV
// token repeated NumOOVIndices times, as returned by Vocabulary(true)); the
// prefix is recognized and stripped. In ModeTFIDF idfWeights is required and
// must either parallel tokens exactly, or carry NumOOVIndices leading
// weights for the OOV slots. In every other mode idfWeights must be nil.
func (s *StringLookup) SetVocabulary(tokens []string, idfWeights []float64) error {
	if s.cfg.OutputMode != ModeTFIDF && idfWeights != nil {
		return &ConfigError{Param: "idfWeights", Details: "only valid when OutputMode is tf_idf"}
	}
	if s.cfg.OutputMode == ModeTFIDF && idfWeights == nil {
		return &ConfigError{Param: "idfWeights", Details: "required when OutputMode is tf_idf"}
	}

	tokens = s.stripSpecialPrefix(tokens)

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if s.isReservedToken(tok) {
			return &ConfigError{Param: "vocabulary", Details: "reserved token " + quote(tok) + " may only appear in the leading special slots"}
		}
		if _, dup := seen[tok]; dup {
			return &ConfigError{Param: "vocabulary", Details: "duplicate token " + quote(tok)}
		}
		seen[tok] = struct{}{}
	}

	if limit := s.retainLimit(); limit >= 0 && len(tokens) > limit {
		return &ConfigError{Param: "vocabulary", Details: "size exceeds MaxTokens"}
	}

	if s.cfg.OutputMode == ModeTFIDF {
		switch len(idfWeights) {
		case len(tokens):
			s.idf = s.slotWeights(idfWeights, oovWeightOf(idfWeights))
		case len(tokens) + s.cfg.NumOOVIndices:
			// Leading entries are the OOV slot weights, already aligned
			// with the binned feature axis.
			s.idf = append([]float64(nil), idfWeights...)
		default:
			return &ConfigError{Param: "idfWeights", Details: "length must match the vocabulary, optionally with leading OOV slot weights"}
		}
	}

	s.vocab = newVocabulary(tokens, s.cfg.MaskToken, s.cfg.hasMask(), s.cfg.OOVToken, s.cfg.NumOOVIndices)
	return nil
}

// stripSpecialPrefix removes a leading reserved-slot prefix from tokens if
// present: the mask token (ModeInt only) followed by the OOV token repeated
// NumOOVIndices times, as produced by Vocabulary(true). A partial prefix is
// left alone and caught by the reserved-token check.
func (s *StringLookup) stripSpecialPrefix(tokens []string) []string {
	i := 0
	if s.cfg.hasMask() && i < len(tokens) && tokens[i] == s.cfg.MaskToken {
		i++
	}
	oovSeen := 0
	for oovSeen < s.cfg.NumOOVIndices && i < len(tokens) && tokens[i] == s.cfg.OOVToken {
		i++
		oovSeen++
	}
	if i == 0 || oovSeen != s.cfg.NumOOVIndices {
		return tokens
	}
	return tokens[i:]
}

func quote(s string) string {
	return "\"" + s + "\""
}

// Lookup resolves a token to its vocabulary index.
//
// Unknown tokens map into the OOV slot range: with one OOV slot directly,
// with several via FNV-1a (64-bit) over the token's UTF-8 bytes modulo
// NumOOVIndices. FNV-1a is platform independent, so a given encoder always
// assigns the same unseen token to the same slot. With zero OOV slots an
// unknown token is a LookupError.
func (s *StringLookup) Lookup(token string) (int64, error) {
	if s.vocab == nil {
		return 0, &StateError{Op: "Lookup", Err: ErrNoVocabulary}
	}
	if idx, ok := s.vocab.indexOf(token); ok {
		return idx, nil
	}
	return s.oovIndex(token)
}

func (s *StringLookup) oovIndex(token string) (int64, error) {
	switch {
	case s.cfg.NumOOVIndices == 0:
		return 0, &LookupError{Token: token, Cause: "out-of-vocabulary token and NumOOVIndices is 0"}
	case s.cfg.NumOOVIndices == 1:
		return int64(s.oovStart()), nil
	default:
		h := fnv.New64a()
		h.Write([]byte(token)) //nolint:errcheck // fnv Write cannot fail
		bucket := h.Sum64() % uint64(s.cfg.NumOOVIndices)
		return int64(s.oovStart()) + int64(bucket), nil //nolint:gosec // bucket < NumOOVIndices
	}
}

// oovStart is the index of the first OOV slot: 0, or 1 past the mask slot.
func (s *StringLookup) oovStart() int {
	if s.cfg.hasMask() {
		return 1
	}
	return 0
}

// TokenOf resolves an index back to its token. OOV slots and indices past
// the vocabulary end report the OOV token; negative indices are a
// LookupError.
func (s *StringLookup) TokenOf(index int64) (string, error) {
	if s.vocab == nil {
		return "", &StateError{Op: "TokenOf", Err: ErrNoVocabulary}
	}
	if index < 0 {
		return "", &LookupError{Index: index, Cause: "negative index"}
	}
	tok, ok := s.vocab.tokenAt(index)
	if !ok {
		return s.cfg.OOVToken, nil
	}
	return tok, nil
}

// Vocabulary returns the current vocabulary of the encoder.
//
// With includeSpecialTokens the reserved mask and OOV slots are included and
// a token's position equals its lookup index. Both views project the same
// stored sequence. Returns nil when no vocabulary exists yet.
func (s *StringLookup) Vocabulary(includeSpecialTokens bool) []string {
	if s.vocab == nil {
		return nil
	}
	return s.vocab.list(includeSpecialTokens)
}

// VocabularySize returns the current vocabulary length, including reserved
// mask and OOV slots. Zero when no vocabulary exists yet.
func (s *StringLookup) VocabularySize() int {
	if s.vocab == nil {
		return 0
	}
	return s.vocab.size()
}

// IDFWeights returns a copy of the per-slot idf weights (OOV slots first),
// or nil outside ModeTFIDF.
func (s *StringLookup) IDFWeights() []float64 {
	if s.idf == nil {
		return nil
	}
	out := make([]float64, len(s.idf))
	copy(out, s.idf)
	return out
}
