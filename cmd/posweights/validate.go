package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"posweights/internal/estimate"
	"posweights/internal/table"
	"posweights/internal/tagger"
)

var (
	validateFile      string
	validateOutput    string
	validateThreshold float64
	validateMaxWords  int
	validateRound     int
)

// validateCmd re-estimates the POS weights of every word in a table
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Generate observed POS weights for the words of a table",
	Long: `Reads a YAML weight table, tags each of its words inside a fixed set
of diagnostic sentences, counts the observed POS tags, and writes a new
table with the observed weight distributions. Words with no observed
tags are kept with an empty distribution.

Example:
  posweights validate -f cover.yaml -o observed.yaml -t 0.01 -r 3`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "input weight table (YAML)")
	_ = validateCmd.MarkFlagRequired("file")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "output table path (default: stdout)")
	validateCmd.Flags().Float64VarP(&validateThreshold, "threshold", "t", 0.01, "minimum weight; categories below it are omitted")
	validateCmd.Flags().IntVarP(&validateMaxWords, "max-words", "n", 0, "process at most this many words (0 = all)")
	validateCmd.Flags().IntVarP(&validateRound, "round", "r", 3, "round weights to this many decimal places")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := estimate.Options{
		Threshold: cfg.Estimate.Threshold,
		Places:    cfg.Estimate.Round,
		MaxWords:  validateMaxWords,
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = validateThreshold
	}
	if cmd.Flags().Changed("round") {
		opts.Places = validateRound
	}

	logger.Info("loading tagger model data")
	tg, err := newTagger()
	if err != nil {
		return err
	}
	logger.Info("tagger ready",
		zap.String("language", tg.Language()),
		zap.Int("entries", tg.Len()))

	input, err := table.Load(validateFile)
	if err != nil {
		return err
	}
	logger.Info("loaded words", zap.String("file", validateFile), zap.Int("count", len(input)))

	out, stats := estimate.New(tg, logger).Run(input, opts)
	if stats.WithoutTags > 0 {
		logger.Info("words without observed tags kept with empty weights",
			zap.Int("count", stats.WithoutTags))
	}

	if validateOutput == "" {
		return table.Write(os.Stdout, out)
	}
	if err := table.Save(validateOutput, out); err != nil {
		return err
	}
	logger.Info("table saved",
		zap.String("file", validateOutput),
		zap.Int("words", len(out)))
	return nil
}

// newTagger honors a pinned data directory from the config and otherwise
// searches the conventional model data locations.
func newTagger() (*tagger.Lexicon, error) {
	if cfg.Tagger.DataDir != "" {
		return tagger.NewFromDir(cfg.Tagger.DataDir, cfg.Tagger.Language)
	}
	return tagger.New(cfg.Tagger.Language)
}
