package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mylxsw/asteria/log"
	"github.com/spf13/cobra"

	"github.com/born-ml/prep/lookup"
	"github.com/born-ml/prep/vectorize"
)

func newEncodeCommand() *cobra.Command {
	var (
		vocabPath   string
		idfPath     string
		modeName    string
		oovIndices  int
		splitName   string
		standardize bool
	)

	cmd := &cobra.Command{
		Use:   "encode [files...]",
		Short: "Encode text lines against a saved vocabulary",
		Long: `Encode reads text line by line, treating each line as one sample, and
prints one encoded row per line to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := lookup.ParseOutputMode(modeName)
			if err != nil {
				return err
			}
			splitter, err := splitterFor(splitName)
			if err != nil {
				return err
			}

			tokens, err := lookup.LoadVocabularyFile(vocabPath)
			if err != nil {
				return err
			}
			cfg := lookup.Config{
				OutputMode:    mode,
				NumOOVIndices: oovIndicesFlag(oovIndices),
				Vocabulary:    tokens,
			}
			if mode == lookup.ModeTFIDF {
				weights, err := lookup.LoadIDFWeightsFile(idfPath)
				if err != nil {
					return err
				}
				cfg.IDFWeights = weights
			}

			var std vectorize.Standardizer
			if standardize {
				std = vectorize.LowerAndStripPunctuation
			}
			v, err := vectorize.New(cfg, splitter, std)
			if err != nil {
				return err
			}
			log.Infof("loaded vocabulary with %d slots from %s", v.Encoder().VocabularySize(), vocabPath)

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush() //nolint:errcheck // best-effort flush on exit

			return forEachInput(args, func(r io.Reader) error {
				scanner := bufio.NewScanner(r)
				for scanner.Scan() {
					row, err := encodeLine(v, mode, scanner.Text())
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintln(out, row); err != nil {
						return err
					}
				}
				return scanner.Err()
			})
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "vocabulary.txt", "vocabulary file")
	cmd.Flags().StringVar(&idfPath, "idf", "idf_weights.txt", "idf weights file (tf_idf mode)")
	cmd.Flags().StringVar(&modeName, "mode", "int", "output mode: int, one_hot, multi_hot, count, tf_idf")
	cmd.Flags().IntVar(&oovIndices, "oov-indices", 1, "number of out-of-vocabulary slots")
	cmd.Flags().StringVar(&splitName, "split", "whitespace", "splitter: whitespace, characters, tiktoken:<encoding>")
	cmd.Flags().BoolVar(&standardize, "standardize", true, "lowercase and strip punctuation before splitting")

	return cmd
}

func encodeLine(v *vectorize.TextVectorizer, mode lookup.OutputMode, line string) (string, error) {
	if mode == lookup.ModeInt {
		t, err := v.CallInt([]string{line})
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, t.NumElements())
		for _, idx := range t.Data() {
			parts = append(parts, strconv.FormatInt(idx, 10))
		}
		return strings.Join(parts, " "), nil
	}

	t, err := v.Call([]string{line})
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, t.NumElements())
	for _, val := range t.Data() {
		parts = append(parts, strconv.FormatFloat(float64(val), 'g', -1, 32))
	}
	return strings.Join(parts, " "), nil
}
