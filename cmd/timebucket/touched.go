package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin2250/timebucket/timebucket"
)

var touchedflags = struct {
	start       string
	duration    string
	granularity string
}{}

func newTouchedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "touched",
		Short: "List the buckets an event overlaps",
		Long: `
Prints the start of every bucket overlapped by the event
[start, start+duration). A bucket that begins exactly where the
event ends is not included.`,
		Args: cobra.NoArgs,
		RunE: runTouched,
	}

	cmd.Flags().StringVarP(&touchedflags.start, "start", "s", "", "event start (RFC3339 or unix seconds)")
	cmd.Flags().StringVarP(&touchedflags.duration, "duration", "d", "0", "event duration in seconds")
	cmd.Flags().StringVarP(&touchedflags.granularity, "granularity", "g", "3600", "bucket width in seconds")
	cmd.MarkFlagRequired("start")

	return cmd
}

func runTouched(cmd *cobra.Command, args []string) error {
	start, err := parseTime(touchedflags.start)
	if err != nil {
		return err
	}
	duration, err := parseSeconds(touchedflags.duration)
	if err != nil {
		return err
	}
	granularity, err := parseSeconds(touchedflags.granularity)
	if err != nil {
		return err
	}

	buckets, err := timebucket.Touched(start, duration, granularity)
	if err != nil {
		return err
	}
	for _, b := range buckets {
		fmt.Fprintln(cmd.OutOrStdout(), formatTime(b))
	}
	return nil
}
