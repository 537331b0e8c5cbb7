package lookup

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNoVocabulary is returned when an operation needs a finalized
	// vocabulary and none has been adapted or set.
	ErrNoVocabulary = errors.New("no vocabulary: call Adapt+FinalizeState or SetVocabulary first")
)

// ConfigError reports an invalid or contradictory encoder configuration,
// or a batch argument the configuration cannot encode. Parameter
// combinations are checked eagerly at construction; batch shape problems
// surface at Call time since they depend on the data.
type ConfigError struct {
	Param   string // Offending parameter or argument name
	Details string // What is wrong with it
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Param, e.Details)
}

// LookupError reports a token or index that cannot be resolved: an
// out-of-vocabulary token when the encoder has zero OOV capacity, or an
// invalid inverse index.
type LookupError struct {
	Token string // Unresolvable token (forward lookup)
	Index int64  // Unresolvable index (inverse lookup)
	Cause string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("lookup failed for token %q: %s", e.Token, e.Cause)
	}
	return fmt.Sprintf("lookup failed for index %d: %s", e.Index, e.Cause)
}

// StateError reports an operation invoked in the wrong lifecycle state,
// typically Call before any vocabulary exists.
type StateError struct {
	Op  string // Operation that was attempted
	Err error  // Underlying condition
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying condition, so callers can match
// sentinels like ErrNoVocabulary with errors.Is.
func (e *StateError) Unwrap() error {
	return e.Err
}
