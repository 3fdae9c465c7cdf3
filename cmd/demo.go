package cmd

import (
	"github.com/spf13/cobra"

	"seam/logger"
	"seam/screen"
)

var (
	demoLogPath string
	demoDebug   bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show a layout on a live terminal screen (q or Esc to quit)",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoLogPath, "log", "", "Write debug logs to this file")
	demoCmd.Flags().BoolVar(&demoDebug, "debug", false, "Log at debug level")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	if demoLogPath != "" {
		if err := logger.Init(demoLogPath, demoDebug); err != nil {
			return err
		}
		defer logger.Close()
	}

	l, err := loadLayout()
	if err != nil {
		return err
	}
	m, err := buildMerger(l)
	if err != nil {
		return err
	}
	return screen.Run(m, screen.DefaultTheme)
}
