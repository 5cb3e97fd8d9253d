package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin2250/timebucket/timebucket"
)

var gridflags = struct {
	start string
	end   string
	step  string
}{}

func newGridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the points start, start+step, ... before end",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}

	cmd.Flags().StringVarP(&gridflags.start, "start", "s", "", "first point (RFC3339 or unix seconds)")
	cmd.Flags().StringVarP(&gridflags.end, "end", "e", "", "end of the grid, exclusive")
	cmd.Flags().StringVarP(&gridflags.step, "step", "d", "3600", "step in seconds")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func runGrid(cmd *cobra.Command, args []string) error {
	start, err := parseTime(gridflags.start)
	if err != nil {
		return err
	}
	end, err := parseTime(gridflags.end)
	if err != nil {
		return err
	}
	step, err := parseSeconds(gridflags.step)
	if err != nil {
		return err
	}

	c, err := timebucket.NewCursor(start, end, step)
	if err != nil {
		return err
	}
	for c.Next() {
		fmt.Fprintln(cmd.OutOrStdout(), formatTime(c.Time()))
	}
	return nil
}
