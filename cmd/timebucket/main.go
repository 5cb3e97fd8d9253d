package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timebucket",
	Short: "Time bucketing and interval utilities",
	// errors are logged by main
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.InitDefaultHelpCmd()

	rootCmd.AddCommand(newUnionCommand())
	rootCmd.AddCommand(newGridCommand())
	rootCmd.AddCommand(newAlignCommand("floor", "Align a time to the start of its bucket"))
	rootCmd.AddCommand(newAlignCommand("round", "Align a time to the nearest bucket start"))
	rootCmd.AddCommand(newTouchedCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
