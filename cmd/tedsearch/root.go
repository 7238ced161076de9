package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tedsearch/driver"
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/parser"
	"github.com/katalvlaran/tedsearch/traversal"
)

var (
	datasetPath  string
	quiet        bool
	histogramDir string
	threshold    int
)

// exitCode carries the process exit status out of RunE, since cobra itself
// only distinguishes "error or not" and spec.md §6 requires a third,
// distinct code for an invalid dataset path.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "tedsearch",
	Short: "Tree-edit-distance similarity search over a bracket-notation dataset",
	Long: `tedsearch loads one tree per line of a bracket-notation dataset, builds the
filter-verify pipeline over it, and reports every pair of trees within the
given edit-distance threshold.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "path to the bracket-notation dataset file (required)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging")
	rootCmd.Flags().StringVar(&histogramDir, "histograms", "", "directory to write per-tree histogram summaries to (optional)")
	rootCmd.Flags().IntVarP(&threshold, "threshold", "k", 1, "tree-edit distance threshold")
	_ = rootCmd.MarkFlagRequired("dataset")
}

// Execute runs the root command and returns the process exit code:
// 0 success, 1 parse/IO error, 2 invalid dataset path.
func Execute() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == 0 {
			exitCode = 1
		}
	}

	return exitCode
}

func runSearch(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(datasetPath); err != nil {
		exitCode = 2

		return fmt.Errorf("tedsearch: invalid dataset path: %w", err)
	}

	logger.Info("loading dataset", slog.String("path", datasetPath))
	dataset, err := parser.LoadDataset(datasetPath)
	if err != nil {
		exitCode = 1

		return fmt.Errorf("tedsearch: load dataset: %w", err)
	}
	logger.Info("dataset loaded", slog.Int("trees", len(dataset.Trees)))

	if histogramDir != "" {
		if err := writeHistograms(dataset, histogramDir, logger); err != nil {
			exitCode = 1

			return err
		}
	}

	pipeline, err := driver.Build(dataset.Dict, dataset.Trees)
	if err != nil {
		exitCode = 1

		return fmt.Errorf("tedsearch: build pipeline: %w", err)
	}
	logger.Info("pipeline built", slog.Int("threshold", threshold))

	for i := 0; i < pipeline.Len(); i++ {
		matches, err := pipeline.Query(pipeline.Tree(i), threshold)
		if err != nil {
			exitCode = 1

			return fmt.Errorf("tedsearch: query tree %d: %w", i, err)
		}

		for _, m := range matches {
			if m.TreeIndex == i {
				continue
			}
			fmt.Printf("%d\t%d\t%d\n", i, m.TreeIndex, m.Distance)
		}
	}

	return nil
}

func writeHistograms(dataset *parser.Dataset, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tedsearch: create histogram directory: %w", err)
	}

	for i, tr := range dataset.Trees {
		w, err := traversal.Walk(tr)
		if err != nil {
			logger.Warn("skipping histogram for unwalkable tree", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}

		h, err := indices.BuildHistograms(tr, w)
		if err != nil {
			logger.Warn("skipping histogram", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}

		path := fmt.Sprintf("%s/tree_%d.txt", dir, i)
		if err := os.WriteFile(path, []byte(formatHistogram(h)), 0o644); err != nil {
			return fmt.Errorf("tedsearch: write histogram for tree %d: %w", i, err)
		}
	}

	return nil
}
