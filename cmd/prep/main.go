// Package main provides the prep preprocessing CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/prep/lookup"
	"github.com/born-ml/prep/split"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:           "prep",
		Short:         "Vocabulary lookup and text encoding for ML preprocessing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAdaptCommand(),
		newEncodeCommand(),
		newVocabCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Printf("prep %s\n", version)
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// oovIndicesFlag maps the --oov-indices flag to the config value: on the
// command line 0 means no OOV capacity, not the library default.
func oovIndicesFlag(n int) int {
	if n == 0 {
		return lookup.OOVIndicesNone
	}
	return n
}

// splitterFor resolves the --split flag: "whitespace", "characters", or
// "tiktoken:<encoding>".
func splitterFor(name string) (split.Splitter, error) {
	switch {
	case name == "whitespace":
		return split.Whitespace(), nil
	case name == "characters":
		return split.Characters(), nil
	case strings.HasPrefix(name, "tiktoken:"):
		return split.NewTikToken(strings.TrimPrefix(name, "tiktoken:"))
	default:
		return nil, fmt.Errorf("unknown splitter %q (want whitespace, characters or tiktoken:<encoding>)", name)
	}
}
