package lookup

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/prep/internal/tensor"
)

// CallInt encodes a batch of samples to their vocabulary indices,
// preserving the input shape. The batch must be rectangular; dense index
// output cannot represent ragged rows.
func (s *StringLookup) CallInt(batch [][]string) (*tensor.Tensor[int64], error) {
	if s.cfg.Invert {
		return nil, &ConfigError{Param: "Invert", Details: "inverted encoders map indices to tokens; use CallInverse"}
	}
	if s.cfg.OutputMode != ModeInt {
		return nil, &ConfigError{Param: "OutputMode", Details: "CallInt requires int output; use Call for " + s.cfg.OutputMode.String()}
	}
	if s.vocab == nil {
		return nil, &StateError{Op: "CallInt", Err: ErrNoVocabulary}
	}
	if len(batch) == 0 || len(batch[0]) == 0 {
		return nil, &ConfigError{Param: "batch", Details: "must not be empty"}
	}

	cols := len(batch[0])
	data := make([]int64, 0, len(batch)*cols)
	for _, sample := range batch {
		if len(sample) != cols {
			return nil, &ConfigError{Param: "batch", Details: "must be rectangular for int output"}
		}
		for _, tok := range sample {
			idx, err := s.Lookup(tok)
			if err != nil {
				return nil, err
			}
			data = append(data, idx)
		}
	}

	return tensor.FromSlice(data, tensor.Shape{len(batch), cols})
}

// CallInverse maps batches of indices back to their tokens. Only valid when
// the encoder was constructed with Invert.
func (s *StringLookup) CallInverse(batch [][]int64) ([][]string, error) {
	if !s.cfg.Invert {
		return nil, &ConfigError{Param: "Invert", Details: "CallInverse requires an inverted encoder"}
	}
	if s.vocab == nil {
		return nil, &StateError{Op: "CallInverse", Err: ErrNoVocabulary}
	}

	out := make([][]string, len(batch))
	for i, sample := range batch {
		row := make([]string, len(sample))
		for j, idx := range sample {
			tok, err := s.TokenOf(idx)
			if err != nil {
				return nil, err
			}
			row[j] = tok
		}
		out[i] = row
	}
	return out, nil
}

// Call encodes a batch of samples in the configured binned output mode,
// treating the trailing axis of each sample as the reduction axis:
//
//   - ModeOneHot: every sample must hold exactly one token; output row has a
//     1.0 at its index.
//   - ModeMultiHot: 1.0 for every vocabulary entry present in the sample.
//   - ModeCount: occurrence count of every vocabulary entry in the sample.
//   - ModeTFIDF: occurrence count scaled by the slot's idf weight.
//
// Samples may be ragged. The feature axis has VocabularySize() slots, or
// MaxTokens when PadToMaxTokens is set.
func (s *StringLookup) Call(batch [][]string) (*tensor.Tensor[float32], error) {
	if s.cfg.Invert {
		return nil, &ConfigError{Param: "Invert", Details: "inverted encoders map indices to tokens; use CallInverse"}
	}
	if !s.cfg.OutputMode.binned() {
		return nil, &ConfigError{Param: "OutputMode", Details: "Call requires a binned output mode; use CallInt for int"}
	}
	if s.vocab == nil {
		return nil, &StateError{Op: "Call", Err: ErrNoVocabulary}
	}
	if len(batch) == 0 {
		return nil, &ConfigError{Param: "batch", Details: "must not be empty"}
	}

	width := s.featureSize()
	data := make([]float32, 0, len(batch)*width)
	for _, sample := range batch {
		row, err := s.encodeSample(sample, width)
		if err != nil {
			return nil, err
		}
		data = append(data, row...)
	}

	return tensor.FromSlice(data, tensor.Shape{len(batch), width})
}

// featureSize is the length of the binned feature axis.
func (s *StringLookup) featureSize() int {
	if s.cfg.PadToMaxTokens {
		return s.cfg.MaxTokens
	}
	return s.vocab.size()
}

func (s *StringLookup) encodeSample(sample []string, width int) ([]float32, error) {
	if s.cfg.OutputMode == ModeOneHot && len(sample) != 1 {
		return nil, &ConfigError{Param: "batch", Details: "one_hot requires exactly one token per sample"}
	}

	counts := make([]float64, width)
	for _, tok := range sample {
		idx, err := s.Lookup(tok)
		if err != nil {
			return nil, err
		}
		counts[idx]++
	}

	switch s.cfg.OutputMode {
	case ModeMultiHot:
		for i, c := range counts {
			if c > 1 {
				counts[i] = 1
			}
		}
	case ModeTFIDF:
		// Padded slots beyond the vocabulary carry zero weight.
		idf := make([]float64, width)
		copy(idf, s.idf)
		floats.Mul(counts, idf)
	}

	row := make([]float32, width)
	for i, c := range counts {
		row[i] = float32(c)
	}
	return row, nil
}
