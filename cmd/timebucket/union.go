package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/martin2250/timebucket/pkg/lineprotocol"
	"github.com/martin2250/timebucket/timebucket"
	"github.com/martin2250/timebucket/timebucket/types"
)

var unionflags = struct {
	input   string
	windows bool
}{}

func newUnionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "union",
		Short: "Compute the time covered by a file of interval records",
		Long: `
Reads interval records (tag:value|start|end or tag:value|start|+duration,
unix seconds) and prints the time covered by their union. Overlapping
time is counted once.`,
		Args: cobra.NoArgs,
		RunE: runUnion,
	}

	cmd.Flags().StringVarP(&unionflags.input, "input", "i", "-", "path to input file, - for stdin")
	cmd.Flags().BoolVarP(&unionflags.windows, "windows", "w", false, "print the merged windows")

	return cmd
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open input")
	}
	return f, nil
}

func runUnion(cmd *cobra.Command, args []string) error {
	in, err := openInput(unionflags.input)
	if err != nil {
		return err
	}
	defer in.Close()

	records, skipped, err := lineprotocol.ReadAll(in, unionflags.input)
	if err != nil {
		return errors.Wrap(err, "could not read input")
	}
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warning("input contained invalid records")
	}

	intervals := make([]types.Interval, len(records))
	for i, r := range records {
		intervals[i] = r.Interval()
	}

	covered, err := timebucket.Union(intervals)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records: %s\n", humanize.Comma(int64(len(records))))
	fmt.Fprintf(out, "covered: %s s (%v)\n", humanize.Commaf(covered.Seconds()), covered)

	if unionflags.windows {
		windows, err := timebucket.Merge(intervals)
		if err != nil {
			return err
		}
		for _, w := range windows {
			fmt.Fprintln(out, w)
		}
	}
	return nil
}
