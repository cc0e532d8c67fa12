package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"posweights/internal/diff"
	"posweights/internal/domain"
	"posweights/internal/table"
)

var (
	compareFile1    string
	compareFile2    string
	compareOutput   string
	compareRound    int
	compareBothOnly bool
)

// compareCmd diffs two weight tables into a signed delta table
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare POS weights between two tables",
	Long: `Reads two YAML weight tables, compares them word by word, and writes
a third YAML file with the differences (table1 weight − table2 weight)
per category. A word missing from one table counts as all-zero there.
Output is sorted alphabetically by word and may contain negative
weights: it is a delta table, not a distribution table.

Example:
  posweights compare -1 cover.yaml -2 observed.yaml -o delta.yaml`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFile1, "file1", "1", "", "first weight table (YAML)")
	compareCmd.Flags().StringVarP(&compareFile2, "file2", "2", "", "second weight table (YAML)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "output delta table path")
	_ = compareCmd.MarkFlagRequired("file1")
	_ = compareCmd.MarkFlagRequired("file2")
	_ = compareCmd.MarkFlagRequired("output")
	compareCmd.Flags().IntVarP(&compareRound, "round", "r", 3, "round differences to this many decimal places")
	compareCmd.Flags().BoolVarP(&compareBothOnly, "both-only", "b", false, "only include words present in both tables")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	opts := diff.Options{Places: cfg.Compare.Round, BothOnly: cfg.Compare.BothOnly}
	if cmd.Flags().Changed("round") {
		opts.Places = compareRound
	}
	if cmd.Flags().Changed("both-only") {
		opts.BothOnly = compareBothOnly
	}

	t1, err := table.Load(compareFile1)
	if err != nil {
		return err
	}
	logger.Info("loaded first table", zap.String("file", compareFile1), zap.Int("words", len(t1)))

	t2, err := table.Load(compareFile2)
	if err != nil {
		return err
	}
	logger.Info("loaded second table", zap.String("file", compareFile2), zap.Int("words", len(t2)))

	deltas, stats := diff.Diff(t1, t2, opts)

	logger.Info("membership",
		zap.Int("in_both", stats.InBoth),
		zap.Int("only_in_first", stats.OnlyInFirst),
		zap.Int("only_in_second", stats.OnlyInSecond),
		zap.Int("with_differences", len(deltas)))
	logger.Info("nuance",
		zap.Float64("avg_tags_first", stats.AvgTagsFirst()),
		zap.Float64("avg_tags_second", stats.AvgTagsSecond()),
		zap.Int("first_more_nuanced", stats.FirstMoreNuanced),
		zap.Int("second_more_nuanced", stats.SecondMoreNuanced),
		zap.Int("same_nuance", stats.SameNuance),
		zap.String("verdict", stats.Verdict()))

	if err := table.Save(compareOutput, domain.WordTable(deltas)); err != nil {
		return err
	}
	logger.Info("delta table saved",
		zap.String("file", compareOutput),
		zap.Int("words", len(deltas)))
	return nil
}
