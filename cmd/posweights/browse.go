package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"posweights/internal/domain"
	"posweights/internal/estimate"
	"posweights/internal/table"
	"posweights/internal/tui"
)

var browseFile string

// browseCmd opens the interactive table inspector
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a weight table interactively",
	Long: `Opens a terminal UI over a YAML weight table. Type a word to see its
stored category weights; when tagger model data is available the
observed weights are re-estimated live and shown alongside.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseFile, "file", "f", "", "weight table to browse (YAML)")
	_ = browseCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	tbl, err := table.Load(browseFile)
	if err != nil {
		return err
	}

	var live tui.Live
	if tg, err := newTagger(); err != nil {
		logger.Warn("tagger model data unavailable, browsing stored weights only", zap.Error(err))
	} else {
		live = liveEstimate{
			est:       estimate.New(tg, logger),
			threshold: cfg.Estimate.Threshold,
			places:    cfg.Estimate.Round,
		}
	}

	if _, err := tea.NewProgram(tui.New(tbl, live)).Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}

// liveEstimate adapts the estimator for the browser: raw observation
// followed by the same post-processing validate applies.
type liveEstimate struct {
	est       *estimate.Estimator
	threshold float64
	places    int
}

func (l liveEstimate) Estimate(word string) domain.Distribution {
	return estimate.Postprocess(l.est.Estimate(word), l.threshold, l.places)
}
