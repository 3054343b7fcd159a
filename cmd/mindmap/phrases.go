package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
	"github.com/cognicore/mindmap/pkg/mindmap/stage"
)

func newPhrasesCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "phrases [input]",
		Short: "Join frequent multi-word phrases with underscores",
		Long: "Phrases runs word2phrase over the input, or the --dict dictionary " +
			"when one is given, and writes the annotated text.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ctx.readInput(inputArg(args))
			if err != nil {
				return err
			}
			phraser, err := ctx.phraser()
			if err != nil {
				return err
			}
			if phraser == nil {
				return fmt.Errorf("%w: phrase detection is disabled", internalerr.ErrInvalidConfig)
			}
			comp, err := ctx.components()
			if err != nil {
				return err
			}

			annotated, err := phraser.Phrases(cmd.Context(), stage.FromText(raw), comp.Config.Phrases.Params())
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), annotated)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the annotated text to this file instead of stdout")
	return cmd
}
