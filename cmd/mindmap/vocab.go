package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/store/sqlite"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		export string
	)

	cmd := &cobra.Command{
		Use:   "vocab [input]",
		Short: "Show stems with their counts and surface forms",
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
			log, err := ctx.log("vocab")
			if err != nil {
				return err
			}

			result := ingest.Build(raw, opts)
			if export != "" {
				if err := sqlite.Export(cmd.Context(), export, result.Vocabulary); err != nil {
					return err
				}
				log.WithField("path", export).WithField("stems", result.Vocabulary.Len()).Info("vocabulary exported")
				return nil
			}

			entries := result.Vocabulary.Entries()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				forms := make([]string, 0, len(e.Forms))
				for _, f := range e.Forms {
					forms = append(forms, fmt.Sprintf("%s:%d", f.Token, f.Count))
				}
				kept := "yes"
				if !result.Vocabulary.Keep(e.Stem, opts.MinCount) {
					kept = "no"
				}
				rows = append(rows, []string{e.Stem, fmt.Sprintf("%d", e.Count), kept, strings.Join(forms, ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Stem", "Count", "Kept", "Forms"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Number of stems to show (0 for all)")
	cmd.Flags().StringVar(&export, "export", "", "Write the vocabulary to a SQLite database instead of printing it")
	return cmd
}
