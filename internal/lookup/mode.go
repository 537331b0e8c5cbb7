package lookup

import "fmt"

// OutputMode selects how Call encodes a batch of samples.
type OutputMode int

// Supported output modes.
const (
	// ModeInt returns the vocabulary index of every input token,
	// preserving the input shape.
	ModeInt OutputMode = iota

	// ModeOneHot encodes each single-token sample as a vector of
	// vocabulary size with a 1 at the token's index.
	ModeOneHot

	// ModeMultiHot encodes each sample as a vector with a 1 for every
	// vocabulary entry present in the sample.
	ModeMultiHot

	// ModeCount is ModeMultiHot with occurrence counts instead of flags.
	ModeCount

	// ModeTFIDF is ModeCount with each slot scaled by the entry's
	// inverse document frequency weight.
	ModeTFIDF
)

// String returns the mode name as used in configs and CLI flags.
func (m OutputMode) String() string {
	switch m {
	case ModeInt:
		return "int"
	case ModeOneHot:
		return "one_hot"
	case ModeMultiHot:
		return "multi_hot"
	case ModeCount:
		return "count"
	case ModeTFIDF:
		return "tf_idf"
	default:
		return "unknown"
	}
}

// ParseOutputMode converts a mode name to an OutputMode.
func ParseOutputMode(name string) (OutputMode, error) {
	switch name {
	case "int":
		return ModeInt, nil
	case "one_hot":
		return ModeOneHot, nil
	case "multi_hot":
		return ModeMultiHot, nil
	case "count":
		return ModeCount, nil
	case "tf_idf":
		return ModeTFIDF, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", name)
	}
}

// binned reports whether the mode reduces samples onto a feature axis of
// vocabulary size (every mode except int).
func (m OutputMode) binned() bool {
	return m != ModeInt
}
