package lookup

// DefaultOOVToken is the token reported for out-of-vocabulary slots by
// inverse lookups when the config does not override it.
const DefaultOOVToken = "[UNK]"

// OOVIndicesNone disables OOV capacity entirely: unknown tokens at lookup
// time are a hard error instead of mapping into an OOV slot.
const OOVIndicesNone = -1

// Config holds the construction parameters of a StringLookup.
//
// Every invalid combination is rejected by New with a ConfigError; nothing
// is silently coerced or deferred to Call time.
type Config struct {
	// MaxTokens caps the total vocabulary size, including reserved mask
	// and OOV slots. Zero means no cap.
	MaxTokens int

	// NumOOVIndices is the number of out-of-vocabulary slots. Zero means
	// the default of one slot; OOVIndicesNone makes an unknown token at
	// lookup time a hard error.
	NumOOVIndices int

	// MaskToken, when non-empty, occupies index 0. Only valid in ModeInt;
	// other modes drop mask tokens from the input entirely.
	MaskToken string

	// OOVToken is the token reported for OOV slots by Vocabulary and
	// inverse lookups. Defaults to DefaultOOVToken.
	OOVToken string

	// OutputMode selects the encoding produced by Call. Defaults to ModeInt.
	OutputMode OutputMode

	// Invert maps indices back to tokens instead of tokens to indices.
	// Only valid in ModeInt.
	Invert bool

	// PadToMaxTokens pads the feature axis of binned outputs to MaxTokens
	// regardless of actual vocabulary size. Only valid for ModeMultiHot,
	// ModeCount and ModeTFIDF.
	PadToMaxTokens bool

	// Vocabulary, when set, installs a finalized vocabulary at
	// construction, equivalent to calling SetVocabulary.
	Vocabulary []string

	// IDFWeights accompanies Vocabulary in ModeTFIDF.
	IDFWeights []float64
}

// reservedSlots returns the number of leading reserved vocabulary slots.
func (c *Config) reservedSlots() int {
	n := c.NumOOVIndices
	if c.hasMask() {
		n++
	}
	return n
}

func (c *Config) hasMask() bool {
	return c.OutputMode == ModeInt && c.MaskToken != ""
}

// validate checks the parameter combination eagerly.
func (c *Config) validate() error {
	if c.NumOOVIndices < 0 {
		return &ConfigError{Param: "NumOOVIndices", Details: "must be positive, or OOVIndicesNone to disable OOV capacity"}
	}
	if c.MaskToken != "" && c.OutputMode != ModeInt {
		return &ConfigError{Param: "MaskToken", Details: "only valid when OutputMode is int"}
	}
	if c.Invert && c.OutputMode != ModeInt {
		return &ConfigError{Param: "Invert", Details: "only valid when OutputMode is int"}
	}
	if c.PadToMaxTokens {
		if !c.OutputMode.binned() || c.OutputMode == ModeOneHot {
			return &ConfigError{Param: "PadToMaxTokens", Details: "only valid for multi_hot, count and tf_idf output"}
		}
		if c.MaxTokens <= 0 {
			return &ConfigError{Param: "PadToMaxTokens", Details: "requires MaxTokens to be set"}
		}
	}
	if c.MaxTokens != 0 && c.MaxTokens <= c.reservedSlots() {
		return &ConfigError{Param: "MaxTokens", Details: "must exceed the number of reserved mask and OOV slots"}
	}
	if c.IDFWeights != nil && c.Vocabulary == nil {
		return &ConfigError{Param: "IDFWeights", Details: "requires Vocabulary to be set"}
	}
	return nil
}
