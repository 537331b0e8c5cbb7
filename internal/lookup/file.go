package lookup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Asset file names used by SaveAssets/LoadAssets.
const (
	vocabularyAsset = "vocabulary.txt"
	idfWeightsAsset = "idf_weights.txt"
)

// LoadVocabularyFile reads a vocabulary file: plain text, one token per
// line, line order equal to vocabulary order. Reserved slots are not part
// of the file.
func LoadVocabularyFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return tokens, nil
}

// SaveVocabularyFile writes tokens to path, one per line.
func SaveVocabularyFile(path string, tokens []string) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return fmt.Errorf("failed to create vocabulary file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(f)
	for _, tok := range tokens {
		if _, err := w.WriteString(tok + "\n"); err != nil {
			return fmt.Errorf("failed to write vocabulary file: %w", err)
		}
	}
	return w.Flush()
}

// NewFromVocabularyFile creates a StringLookup with its vocabulary loaded
// from a line-delimited file instead of Config.Vocabulary.
func NewFromVocabularyFile(cfg Config, path string) (*StringLookup, error) {
	tokens, err := LoadVocabularyFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Vocabulary = tokens
	return New(cfg)
}

// SaveAssets externalizes the finalized vocabulary under dir: the token
// list in vocabulary.txt and, in ModeTFIDF, the per-slot idf weights in
// idf_weights.txt (OOV slot weights first). The result is re-loadable via
// LoadAssets or SetVocabulary.
func (s *StringLookup) SaveAssets(dir string) error {
	if s.vocab == nil {
		return &StateError{Op: "SaveAssets", Err: ErrNoVocabulary}
	}

	if err := SaveVocabularyFile(filepath.Join(dir, vocabularyAsset), s.Vocabulary(false)); err != nil {
		return err
	}
	if s.cfg.OutputMode == ModeTFIDF {
		if err := SaveIDFWeightsFile(filepath.Join(dir, idfWeightsAsset), s.idf); err != nil {
			return err
		}
	}
	return nil
}

// LoadAssets restores a vocabulary written by SaveAssets.
func (s *StringLookup) LoadAssets(dir string) error {
	tokens, err := LoadVocabularyFile(filepath.Join(dir, vocabularyAsset))
	if err != nil {
		return err
	}

	var weights []float64
	if s.cfg.OutputMode == ModeTFIDF {
		weights, err = LoadIDFWeightsFile(filepath.Join(dir, idfWeightsAsset))
		if err != nil {
			return err
		}
	}
	return s.SetVocabulary(tokens, weights)
}

// SaveIDFWeightsFile writes per-slot idf weights to path, one float per
// line, in the same order as the binned feature axis (OOV slots first).
func SaveIDFWeightsFile(path string, weights []float64) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return fmt.Errorf("failed to create idf weights file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(f)
	for _, weight := range weights {
		if _, err := w.WriteString(strconv.FormatFloat(weight, 'g', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("failed to write idf weights file: %w", err)
		}
	}
	return w.Flush()
}

// LoadIDFWeightsFile reads a weights file written by SaveIDFWeightsFile.
func LoadIDFWeightsFile(path string) ([]float64, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return nil, fmt.Errorf("failed to open idf weights file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var weights []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse idf weight %q: %w", scanner.Text(), err)
		}
		weights = append(weights, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read idf weights file: %w", err)
	}
	return weights, nil
}
