package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seam/border"
	"seam/core"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print the junction glyph table",
	Run:   runGlyphs,
}

func init() {
	rootCmd.AddCommand(glyphsCmd)
}

func runGlyphs(_ *cobra.Command, _ []string) {
	styles := []core.BorderStyle{
		core.StyleSingle, core.StyleRounded, core.StyleDouble, core.StyleThick,
	}

	header := []string{fmt.Sprintf("%-8s", "style")}
	for _, t := range core.JunctionTypes {
		header = append(header, t.String())
	}
	fmt.Println(strings.Join(header, "  "))

	for _, s := range styles {
		row := []string{fmt.Sprintf("%-8s", s)}
		for _, t := range core.JunctionTypes {
			// Center the glyph under its column heading.
			pad := len(t.String())
			row = append(row, fmt.Sprintf("%*c%*s", (pad+1)/2, border.GlyphFor(t, s), pad-(pad+1)/2, ""))
		}
		fmt.Println(strings.Join(row, "  "))
	}
}
