package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seam/border"
	"seam/layout"
)

var layoutPath string

var rootCmd = &cobra.Command{
	Use:   "seam",
	Short: "Border-merging compositor for bordered terminal widgets",
	Long: `Seam merges the box-drawing borders of adjacent terminal widgets.
Wherever two or more widget borders meet it computes the single junction
glyph (corner, tee or cross) that keeps the composited screen reading as
one continuous line drawing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layoutPath, "layout", "l", "", "Path to a layout JSON file (built-in demo layout if omitted)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadLayout returns the layout named by --layout, or the built-in demo.
func loadLayout() (*layout.Layout, error) {
	if layoutPath == "" {
		return layout.Demo(), nil
	}
	return layout.Load(layoutPath)
}

// buildMerger registers every widget of the layout and computes the merge map.
func buildMerger(l *layout.Layout) (*border.Merger, error) {
	boundaries, err := l.Boundaries()
	if err != nil {
		return nil, err
	}
	m := border.NewMerger()
	for i, b := range boundaries {
		if err := m.AddWidget(b); err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}
	}
	if err := m.CalculateMergePoints(); err != nil {
		return nil, err
	}
	return m, nil
}
