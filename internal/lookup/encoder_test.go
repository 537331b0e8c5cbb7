package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "defaults are valid",
			cfg:  Config{},
		},
		{
			name: "oov capacity disabled",
			cfg:  Config{NumOOVIndices: OOVIndicesNone},
		},
		{
			name:    "negative oov indices",
			cfg:     Config{NumOOVIndices: -2},
			wantErr: "NumOOVIndices",
		},
		{
			name:    "mask token outside int mode",
			cfg:     Config{OutputMode: ModeMultiHot, MaskToken: "[MASK]"},
			wantErr: "MaskToken",
		},
		{
			name:    "invert outside int mode",
			cfg:     Config{OutputMode: ModeCount, Invert: true},
			wantErr: "Invert",
		},
		{
			name:    "pad to max tokens in int mode",
			cfg:     Config{OutputMode: ModeInt, PadToMaxTokens: true, MaxTokens: 10},
			wantErr: "PadToMaxTokens",
		},
		{
			name:    "pad to max tokens in one_hot mode",
			cfg:     Config{OutputMode: ModeOneHot, PadToMaxTokens: true, MaxTokens: 10},
			wantErr: "PadToMaxTokens",
		},
		{
			name:    "pad without max tokens",
			cfg:     Config{OutputMode: ModeCount, PadToMaxTokens: true},
			wantErr: "PadToMaxTokens",
		},
		{
			name:    "max tokens not above reserved slots",
			cfg:     Config{OutputMode: ModeInt, MaskToken: "[MASK]", NumOOVIndices: 1, MaxTokens: 2},
			wantErr: "MaxTokens",
		},
		{
			name:    "idf weights without vocabulary",
			cfg:     Config{OutputMode: ModeTFIDF, IDFWeights: []float64{0.5}},
			wantErr: "IDFWeights",
		},
		{
			name: "mask token with int mode",
			cfg:  Config{OutputMode: ModeInt, MaskToken: "[MASK]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := New(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, enc)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantErr, cfgErr.Param)
		})
	}
}

func TestStringLookup_Lookup(t *testing.T) {
	enc, err := New(Config{Vocabulary: []string{"a", "b", "c", "d"}})
	require.NoError(t, err)

	tests := []struct {
		token string
		want  int64
	}{
		{"a", 1},
		{"b", 2},
		{"c", 3},
		{"d", 4},
		{"z", 0}, // OOV
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			idx, err := enc.Lookup(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestStringLookup_LookupZeroOOV(t *testing.T) {
	enc, err := New(Config{Vocabulary: []string{"a", "b"}, NumOOVIndices: OOVIndicesNone})
	require.NoError(t, err)

	idx, err := enc.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), idx)

	_, err = enc.Lookup("z")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "z", lookupErr.Token)
}

func TestStringLookup_OOVBucketDeterminism(t *testing.T) {
	enc, err := New(Config{Vocabulary: []string{"a", "b"}, NumOOVIndices: 3})
	require.NoError(t, err)

	first, err := enc.Lookup("never-seen")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, first, int64(0))
	assert.Less(t, first, int64(3))

	// Same unseen token must always land in the same slot.
	for i := 0; i < 10; i++ {
		idx, err := enc.Lookup("never-seen")
		require.NoError(t, err)
		assert.Equal(t, first, idx)
	}
}

func TestStringLookup_NoVocabularyState(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	assert.Equal(t, 0, enc.VocabularySize())
	assert.Nil(t, enc.Vocabulary(true))

	_, err = enc.Lookup("a")
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.True(t, errors.Is(err, ErrNoVocabulary))

	_, err = enc.CallInt([][]string{{"a"}})
	require.ErrorAs(t, err, &stateErr)
}

func TestStringLookup_AdaptFinalize(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a", "c", "d"}, {"d", "z", "b"}})
	enc.FinalizeState()

	// "d" has two occurrences and leads; the singletons follow in
	// descending token order.
	assert.Equal(t, []string{"[UNK]", "d", "z", "c", "b", "a"}, enc.Vocabulary(true))
	assert.Equal(t, []string{"d", "z", "c", "b", "a"}, enc.Vocabulary(false))
	assert.Equal(t, 6, enc.VocabularySize())

	out, err := enc.CallInt([][]string{{"a", "c", "d"}, {"d", "z", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 1, 1, 2, 4}, out.Data())
}

func TestStringLookup_FinalizeTieBreak(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a", "a", "a", "b", "b", "b", "c"}})
	enc.FinalizeState()

	// Equal frequency: lexicographically larger token sorts first.
	assert.Equal(t, []string{"b", "a", "c"}, enc.Vocabulary(false))
}

func TestStringLookup_AdaptIncremental(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a"}, {"a"}})
	enc.Adapt([][]string{{"b"}, {"b"}, {"b"}})
	enc.FinalizeState()

	assert.Equal(t, []string{"b", "a"}, enc.Vocabulary(false))
}

func TestStringLookup_AdaptSkipsReservedTokens(t *testing.T) {
	enc, err := New(Config{OutputMode: ModeInt, MaskToken: "[MASK]"})
	require.NoError(t, err)

	enc.Adapt([][]string{{"[UNK]", "[MASK]", "a"}})
	enc.FinalizeState()

	assert.Equal(t, []string{"[MASK]", "[UNK]", "a"}, enc.Vocabulary(true))
}

func TestStringLookup_FinalizeIdempotent(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a", "b", "b"}})
	enc.FinalizeState()
	vocab := enc.Vocabulary(true)

	enc.FinalizeState()
	assert.Equal(t, vocab, enc.Vocabulary(true))
}

func TestStringLookup_ResetState(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a", "b"}})
	enc.ResetState()
	enc.FinalizeState()

	// Reset discarded the accumulated counts, so there is nothing to
	// finalize into a vocabulary.
	assert.Equal(t, 0, enc.VocabularySize())
}

func TestStringLookup_ReAdaptReplacesVocabulary(t *testing.T) {
	enc, err := New(Config{})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a"}})
	enc.FinalizeState()
	assert.Equal(t, []string{"a"}, enc.Vocabulary(false))

	enc.Adapt([][]string{{"x"}, {"y"}})
	enc.FinalizeState()
	assert.Equal(t, []string{"y", "x"}, enc.Vocabulary(false))
}

func TestStringLookup_MaxTokensTruncation(t *testing.T) {
	enc, err := New(Config{MaxTokens: 3})
	require.NoError(t, err)

	enc.Adapt([][]string{{"a", "a", "a", "b", "b", "c"}})
	enc.FinalizeState()

	// One OOV slot plus the two most frequent tokens.
	assert.Equal(t, []string{"[UNK]", "a", "b"}, enc.Vocabulary(true))
	assert.Equal(t, 3, enc.VocabularySize())
}

func TestStringLookup_MaskTokenLayout(t *testing.T) {
	enc, err := New(Config{
		OutputMode: ModeInt,
		MaskToken:  "[MASK]",
		Vocabulary: []string{"a", "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"[MASK]", "[UNK]", "a", "b"}, enc.Vocabulary(true))

	idx, err := enc.Lookup("[MASK]")
	require.NoError(t, err)
	assert.Equal(t, int64(0), idx)

	// OOV hashing starts past the mask slot.
	idx, err = enc.Lookup("z")
	require.NoError(t, err)
	assert.Equal(t, int64(1), idx)

	idx, err = enc.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), idx)
}

func TestStringLookup_SetVocabulary(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		tokens     []string
		idfWeights []float64
		wantErr    string
		wantVocab  []string
	}{
		{
			name:      "plain tokens",
			cfg:       Config{},
			tokens:    []string{"a", "b"},
			wantVocab: []string{"[UNK]", "a", "b"},
		},
		{
			name:      "special prefix is stripped",
			cfg:       Config{},
			tokens:    []string{"[UNK]", "a", "b"},
			wantVocab: []string{"[UNK]", "a", "b"},
		},
		{
			name:      "mask and oov prefix",
			cfg:       Config{OutputMode: ModeInt, MaskToken: "[MASK]"},
			tokens:    []string{"[MASK]", "[UNK]", "a"},
			wantVocab: []string{"[MASK]", "[UNK]", "a"},
		},
		{
			name:    "duplicate token",
			cfg:     Config{},
			tokens:  []string{"a", "a"},
			wantErr: "vocabulary",
		},
		{
			name:    "reserved token mid-list",
			cfg:     Config{},
			tokens:  []string{"a", "[UNK]"},
			wantErr: "vocabulary",
		},
		{
			name:    "exceeds max tokens",
			cfg:     Config{MaxTokens: 2},
			tokens:  []string{"a", "b"},
			wantErr: "vocabulary",
		},
		{
			name:       "idf weights outside tf_idf",
			cfg:        Config{OutputMode: ModeCount},
			tokens:     []string{"a"},
			idfWeights: []float64{0.5},
			wantErr:    "idfWeights",
		},
		{
			name:    "missing idf weights in tf_idf",
			cfg:     Config{OutputMode: ModeTFIDF},
			tokens:  []string{"a"},
			wantErr: "idfWeights",
		},
		{
			name:       "idf weight length mismatch",
			cfg:        Config{OutputMode: ModeTFIDF},
			tokens:     []string{"a", "b"},
			idfWeights: []float64{0.5, 0.6, 0.7, 0.8},
			wantErr:    "idfWeights",
		},
		{
			name:       "idf weights parallel to tokens",
			cfg:        Config{OutputMode: ModeTFIDF},
			tokens:     []string{"a", "b"},
			idfWeights: []float64{0.4, 0.6},
			wantVocab:  []string{"[UNK]", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := New(tt.cfg)
			require.NoError(t, err)

			err = enc.SetVocabulary(tt.tokens, tt.idfWeights)
			if tt.wantErr != "" {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.wantErr, cfgErr.Param)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVocab, enc.Vocabulary(true))
		})
	}
}

func TestStringLookup_SetVocabularyIDFWeights(t *testing.T) {
	t.Run("oov weight is mean of supplied weights", func(t *testing.T) {
		enc, err := New(Config{OutputMode: ModeTFIDF})
		require.NoError(t, err)
		require.NoError(t, enc.SetVocabulary([]string{"a", "b", "c", "d"}, []float64{0.25, 0.75, 0.6, 0.4}))

		assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.75, 0.6, 0.4}, enc.IDFWeights(), 1e-9)
	})

	t.Run("leading weight binds to the oov slot", func(t *testing.T) {
		enc, err := New(Config{OutputMode: ModeTFIDF})
		require.NoError(t, err)
		require.NoError(t, enc.SetVocabulary([]string{"a", "b", "c", "d"}, []float64{0.9, 0.25, 0.75, 0.6, 0.4}))

		assert.InDeltaSlice(t, []float64{0.9, 0.25, 0.75, 0.6, 0.4}, enc.IDFWeights(), 1e-9)
	})
}

func TestStringLookup_RoundTrip(t *testing.T) {
	enc, err := New(Config{Vocabulary: []string{"a", "b", "c", "d"}})
	require.NoError(t, err)

	for _, token := range []string{"a", "b", "c", "d", "unknown"} {
		idx, err := enc.Lookup(token)
		require.NoError(t, err)

		back, err := enc.TokenOf(idx)
		require.NoError(t, err)

		again, err := enc.Lookup(back)
		require.NoError(t, err)
		assert.Equal(t, idx, again, "lookup(tokenOf(lookup(%q))) must be stable", token)
	}
}

func TestStringLookup_TokenOf(t *testing.T) {
	enc, err := New(Config{Vocabulary: []string{"a", "b"}})
	require.NoError(t, err)

	tok, err := enc.TokenOf(0)
	require.NoError(t, err)
	assert.Equal(t, "[UNK]", tok)

	tok, err = enc.TokenOf(1)
	require.NoError(t, err)
	assert.Equal(t, "a", tok)

	// Past the vocabulary end resolves to the OOV token.
	tok, err = enc.TokenOf(99)
	require.NoError(t, err)
	assert.Equal(t, "[UNK]", tok)

	_, err = enc.TokenOf(-1)
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, int64(-1), lookupErr.Index)
}

func TestStringLookup_CardinalityInvariant(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{
			name: "one oov",
			cfg:  Config{Vocabulary: []string{"a", "b", "c"}},
			want: 4,
		},
		{
			name: "mask and two oov",
			cfg:  Config{OutputMode: ModeInt, MaskToken: "[MASK]", NumOOVIndices: 2, Vocabulary: []string{"a", "b"}},
			want: 5,
		},
		{
			name: "oov disabled",
			cfg:  Config{NumOOVIndices: OOVIndicesNone, Vocabulary: []string{"a"}},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.VocabularySize())
			assert.Len(t, enc.Vocabulary(true), tt.want)
		})
	}
}

func TestStringLookup_TFIDFAdapt(t *testing.T) {
	enc, err := New(Config{OutputMode: ModeTFIDF})
	require.NoError(t, err)

	// Two documents; "b" appears in both, "a" repeats within one.
	enc.Adapt([][]string{{"a", "a", "b"}, {"b", "c"}})
	enc.FinalizeState()

	// Counts: a=2, b=2, c=1. Tie between a and b broken descending.
	assert.Equal(t, []string{"b", "a", "c"}, enc.Vocabulary(false))

	// idf = log(1 + docs/(1+df)): df(b)=2, df(a)=1, df(c)=1.
	wantB := 0.5108256237659907  // log(1 + 2/3)
	wantA := 0.6931471805599453  // log(1 + 2/2)
	wantOOV := (wantB + wantA + wantA) / 3

	weights := enc.IDFWeights()
	require.Len(t, weights, 4)
	assert.InDelta(t, wantOOV, weights[0], 1e-12)
	assert.InDelta(t, wantB, weights[1], 1e-12)
	assert.InDelta(t, wantA, weights[2], 1e-12)
	assert.InDelta(t, wantA, weights[3], 1e-12)
}
