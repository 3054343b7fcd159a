package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mindmap",
		Short:         "Prepare text for word2vec and explore the trained model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file (.yaml or .toml)")
	flags.StringVar(&ctx.stoplistPath, "stoplist", "", "Stopword file, one entry per line or YAML terms list")
	flags.StringVar(&ctx.dictPath, "dict", "", "Phrase dictionary (canonical|variant...|category); replaces word2phrase")
	flags.StringVar(&ctx.workDir, "work-dir", "", "Directory for transport and model files")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.logFormat, "log-format", "", "Log format (text or json)")
	flags.IntVar(&ctx.minCount, "min-count", -1, "Override the cleaning frequency floor")
	flags.BoolVar(&ctx.twoPass, "two-pass", false, "Filter against final frequencies instead of running counts")

	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newPhrasesCommand(ctx))
	rootCmd.AddCommand(newTrainCommand(ctx))
	rootCmd.AddCommand(newSimilarCommand(ctx))
	rootCmd.AddCommand(newVocabCommand(ctx))
	rootCmd.AddCommand(newStopsCommand(ctx))

	return rootCmd
}
