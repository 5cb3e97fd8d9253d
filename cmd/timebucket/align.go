package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/martin2250/timebucket/timebucket"
)

var alignFuncs = map[string]func(time.Time, time.Duration) (time.Time, error){
	"floor": timebucket.Floor,
	"round": timebucket.Round,
}

func newAlignCommand(name, short string) *cobra.Command {
	var granularity string

	cmd := &cobra.Command{
		Use:   name + " TIME...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseSeconds(granularity)
			if err != nil {
				return err
			}
			align := alignFuncs[name]
			for _, arg := range args {
				t, err := parseTime(arg)
				if err != nil {
					return err
				}
				aligned, err := align(t, g)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatTime(aligned))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "3600", "bucket width in seconds")

	return cmd
}
