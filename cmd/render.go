package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seam/canvas"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Composite a layout and print it to stdout",
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	m, err := buildMerger(l)
	if err != nil {
		return err
	}

	width, height := l.Bounds()
	c, err := canvas.New(width, height)
	if err != nil {
		return err
	}
	if err := c.Compose(m); err != nil {
		return err
	}
	fmt.Println(c.String())
	return nil
}
