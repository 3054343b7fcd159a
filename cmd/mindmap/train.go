package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	var (
		limit     int
		neighbors int
	)

	cmd := &cobra.Command{
		Use:   "train [input]",
		Short: "Run phrase detection, cleaning and word2vec, then show related terms",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ctx.readInput(inputArg(args))
			if err != nil {
				return err
			}
			comp, err := ctx.components()
			if err != nil {
				return err
			}
			clean, err := ctx.builderOptions()
			if err != nil {
				return err
			}
			phraser, err := ctx.phraser()
			if err != nil {
				return err
			}
			runner, err := ctx.runner()
			if err != nil {
				return err
			}
			log, err := ctx.log("pipeline")
			if err != nil {
				return err
			}

			pipeline := mindmap.New(mindmap.Options{
				Phraser: phraser,
				Trainer: runner,
				Clean:   clean,
				Phrase:  comp.Config.Phrases.Params(),
				Train:   comp.Config.Train.Params(),
				Logger:  log,
			})
			result, err := pipeline.Run(cmd.Context(), raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model: %s (%d terms, %d dimensions)\n", result.ModelPath, result.Model.Len(), result.Model.Dim())
			fmt.Fprintln(out, renderNeighborhoods(result.Neighborhoods(limit, neighbors)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of vocabulary stems to show (0 for all)")
	cmd.Flags().IntVarP(&neighbors, "neighbors", "k", 5, "Neighbors per stem")
	return cmd
}

func renderNeighborhoods(hoods []mindmap.Neighborhood) string {
	rows := make([][]string, 0, len(hoods))
	for _, h := range hoods {
		related := make([]string, 0, len(h.Related))
		for _, r := range h.Related {
			related = append(related, fmt.Sprintf("%s (%.3f)", r.Display, r.Score))
		}
		rows = append(rows, []string{h.Stem, strings.Join(h.Forms, ", "), strings.Join(related, ", ")})
	}
	return renderTable([]string{"Stem", "Forms", "Related"}, rows, nil)
}
