package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap/model"
)

func newSimilarCommand(ctx *commandContext) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "similar <model> <term>...",
		Short: "List the nearest neighbors of terms in a trained model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.log("similar")
			if err != nil {
				return err
			}
			m, err := model.Load(args[0])
			if err != nil {
				return err
			}
			log.WithField("terms", m.Len()).WithField("dim", m.Dim()).Debug("model loaded")

			var rows [][]string
			for _, term := range args[1:] {
				sims, err := m.MostSimilar(term, n)
				if err != nil {
					return err
				}
				for i, s := range sims {
					rows = append(rows, []string{term, fmt.Sprintf("%d", i+1), s.Term, fmt.Sprintf("%.4f", s.Score)})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Query", "Rank", "Term", "Score"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 10, "Neighbors per term")
	return cmd
}
