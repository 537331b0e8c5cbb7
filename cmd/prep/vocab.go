package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/prep/lookup"
)

func newVocabCommand() *cobra.Command {
	var (
		special    bool
		oovIndices int
		maskToken  string
	)

	cmd := &cobra.Command{
		Use:   "vocab <vocabulary-file>",
		Short: "Print a vocabulary file with lookup indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := lookup.NewFromVocabularyFile(lookup.Config{
				NumOOVIndices: oovIndicesFlag(oovIndices),
				MaskToken:     maskToken,
			}, args[0])
			if err != nil {
				return err
			}

			tokens := enc.Vocabulary(special)
			offset := 0
			if !special {
				offset = enc.VocabularySize() - len(tokens)
			}
			for i, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+offset, tok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&special, "special", false, "include reserved mask and OOV slots")
	cmd.Flags().IntVar(&oovIndices, "oov-indices", 1, "number of out-of-vocabulary slots")
	cmd.Flags().StringVar(&maskToken, "mask-token", "", "mask token occupying index 0")

	return cmd
}
