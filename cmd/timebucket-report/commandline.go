package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type CommandLineOptions struct {
	ConfigPath  string            `short:"c" long:"config" description:"configuration file"`
	Inputs      []string          `short:"i" long:"input" description:"record file, may be repeated"`
	OutputPath  string            `short:"o" long:"output" description:"write the report to this file instead of stdout"`
	Granularity time.Duration     `short:"g" long:"granularity" description:"bucket width, e.g. 15m"`
	Match       map[string]string `short:"m" long:"match" description:"only use records with this tag, key:value"`
	GroupBy     []string          `long:"group-by" description:"tag that identifies a series, may be repeated"`
	Windows     bool              `short:"w" long:"windows" description:"include coverage windows"`
	Verbose     bool              `short:"v" long:"verbose" description:"debug logging"`

	Profile     string `long:"profile" description:"record a profile: cpu, mem, mutex, block, thread, goroutine or trace"`
	ProfilePath string `long:"profilepath" description:"directory for the profile"`
}

func parseCommandLineOptions(args []string) (CommandLineOptions, error) {
	opts := CommandLineOptions{}
	_, err := flags.ParseArgs(&opts, args)
	return opts, err
}

func readCommandLineOptions() CommandLineOptions {
	opts, err := parseCommandLineOptions(os.Args[1:])

	switch errt := err.(type) {
	case *flags.Error:
		if errt.Type == flags.ErrHelp {
			os.Exit(0)
		}
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not parse command line arguments")
	}

	return opts
}
