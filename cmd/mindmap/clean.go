package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean [input]",
		Short: "Normalize, stem and filter text into a word2vec training corpus",
		Long: "Clean reads text, html or jsonl input (stdin when omitted or \"-\"), " +
			"splits it into sentences and writes one space-separated sentence per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ctx.readInput(inputArg(args))
			if err != nil {
				return err
			}
			opts, err := ctx.builderOptions()
			if err != nil {
				return err
			}
			log, err := ctx.log("clean")
			if err != nil {
				return err
			}

			result := ingest.Build(raw, opts)
			log.WithField("sentences", result.Corpus.Len()).
				WithField("tokens", result.Corpus.Tokens()).
				WithField("stems", result.Vocabulary.Len()).
				Info("corpus built")

			return writeOutput(output, cmd.OutOrStdout(), result.Corpus.Text())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the corpus to this file instead of stdout")
	return cmd
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
