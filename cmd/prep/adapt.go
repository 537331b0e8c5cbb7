package main

import (
	"bufio"
	"io"
	"os"

	"github.com/mylxsw/asteria/log"
	"github.com/spf13/cobra"

	"github.com/born-ml/prep/lookup"
	"github.com/born-ml/prep/vectorize"
)

// adaptBatchSize is the number of lines folded into the encoder per
// accumulation step.
const adaptBatchSize = 1024

func newAdaptCommand() *cobra.Command {
	var (
		output      string
		idfOutput   string
		modeName    string
		maxTokens   int
		oovIndices  int
		splitName   string
		standardize bool
	)

	cmd := &cobra.Command{
		Use:   "adapt [files...]",
		Short: "Learn a vocabulary from text files (or stdin)",
		Long: `Adapt streams input text line by line, treating each line as one sample,
and writes the learned vocabulary as a line-delimited file. In tf_idf mode
the per-slot idf weights are written alongside.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := lookup.ParseOutputMode(modeName)
			if err != nil {
				return err
			}
			splitter, err := splitterFor(splitName)
			if err != nil {
				return err
			}

			var std vectorize.Standardizer
			if standardize {
				std = vectorize.LowerAndStripPunctuation
			}
			v, err := vectorize.New(lookup.Config{
				OutputMode:    mode,
				MaxTokens:     maxTokens,
				NumOOVIndices: oovIndicesFlag(oovIndices),
			}, splitter, std)
			if err != nil {
				return err
			}

			lines := 0
			err = forEachInput(args, func(r io.Reader) error {
				batch := make([]string, 0, adaptBatchSize)
				scanner := bufio.NewScanner(r)
				for scanner.Scan() {
					batch = append(batch, scanner.Text())
					lines++
					if len(batch) == adaptBatchSize {
						if err := v.Adapt(batch); err != nil {
							return err
						}
						batch = batch[:0]
					}
				}
				if len(batch) > 0 {
					if err := v.Adapt(batch); err != nil {
						return err
					}
				}
				return scanner.Err()
			})
			if err != nil {
				return err
			}

			v.Finalize()
			enc := v.Encoder()
			log.Infof("adapted %d samples into %d vocabulary slots", lines, enc.VocabularySize())

			if err := lookup.SaveVocabularyFile(output, enc.Vocabulary(false)); err != nil {
				return err
			}
			log.Infof("wrote vocabulary to %s", output)

			if mode == lookup.ModeTFIDF {
				if err := lookup.SaveIDFWeightsFile(idfOutput, enc.IDFWeights()); err != nil {
					return err
				}
				log.Infof("wrote idf weights to %s", idfOutput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "vocabulary.txt", "vocabulary output file")
	cmd.Flags().StringVar(&idfOutput, "idf-output", "idf_weights.txt", "idf weights output file (tf_idf mode)")
	cmd.Flags().StringVar(&modeName, "mode", "int", "output mode: int, one_hot, multi_hot, count, tf_idf")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "vocabulary size cap including reserved slots (0 = uncapped)")
	cmd.Flags().IntVar(&oovIndices, "oov-indices", 1, "number of out-of-vocabulary slots")
	cmd.Flags().StringVar(&splitName, "split", "whitespace", "splitter: whitespace, characters, tiktoken:<encoding>")
	cmd.Flags().BoolVar(&standardize, "standardize", true, "lowercase and strip punctuation before splitting")

	return cmd
}

// forEachInput runs fn over every named file, or over stdin when no files
// are given.
func forEachInput(paths []string, fn func(io.Reader) error) error {
	if len(paths) == 0 {
		return fn(os.Stdin)
	}
	for _, path := range paths {
		f, err := os.Open(path) //nolint:gosec // G304: Path comes from the CLI user
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close() //nolint:errcheck,gosec // error path
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
