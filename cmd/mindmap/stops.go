package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/stoplist"
)

func newStopsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stops",
		Short: "Stopword maintenance",
	}
	cmd.AddCommand(newStopsSuggestCommand(ctx))
	return cmd
}

func newStopsSuggestCommand(ctx *commandContext) *cobra.Command {
	thresholds := stoplist.DefaultThresholds()

	cmd := &cobra.Command{
		Use:   "suggest [input]",
		Short: "Suggest stopwords from sentence and occurrence frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ctx.readInput(inputArg(args))
			if err != nil {
				return err
			}
			opts, err := ctx.builderOptions()
			if err != nil {
				return err
			}

			// Statistics need every token, so nothing is dropped by count.
			opts.MinCount = 0
			result := ingest.Build(raw, opts)
			stats := stoplist.StatsFromCorpus(result.Corpus)
			candidates := result.Stopwords.SuggestCandidates(stats, thresholds)

			rows := make([][]string, 0, len(candidates))
			for _, c := range candidates {
				rows = append(rows, []string{
					c.Term,
					fmt.Sprintf("%.1f", c.Reason.DF),
					fmt.Sprintf("%.2f", c.Reason.Freq),
					fmt.Sprintf("%.2f", c.Score),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Term", "DF %", "Freq %", "Score"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().Float64Var(&thresholds.DFPercent, "df", thresholds.DFPercent, "Sentence frequency threshold, percent")
	cmd.Flags().Float64Var(&thresholds.FreqPercent, "freq", thresholds.FreqPercent, "Occurrence share threshold, percent")
	cmd.Flags().Int64Var(&thresholds.MinCount, "min", thresholds.MinCount, "Ignore terms rarer than this")
	return cmd
}
