package main

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/martin2250/timebucket/generic"
	"github.com/martin2250/timebucket/pkg/lineprotocol"
	"github.com/martin2250/timebucket/report"
	"github.com/martin2250/timebucket/util"
)

func readInput(p string) ([]lineprotocol.Record, int, error) {
	if p == "-" {
		return lineprotocol.ReadAll(os.Stdin, p)
	}
	if !util.FileExists(p) {
		return nil, 0, errors.Errorf("input file %s does not exist", p)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not open input file")
	}
	defer f.Close()
	return lineprotocol.ReadAll(f, p)
}

func readInputs(paths []string) ([]lineprotocol.Record, error) {
	var records []lineprotocol.Record

	for _, p := range paths {
		rs, skipped, err := readInput(p)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", p)
		}

		logrus.WithFields(logrus.Fields{
			"path":    p,
			"records": humanize.Comma(int64(len(rs))),
			"skipped": skipped,
		}).Debug("read input")

		records = append(records, rs...)
	}

	return records, nil
}

func encodeReport(rep report.Report, out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "could not encode report")
	}
	return enc.Close()
}

func writeReport(rep report.Report, output string) error {
	if output == "" {
		return encodeReport(rep, os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "could not create output file")
	}
	if err := encodeReport(rep, f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "could not close output file")
}

func writeReportFor(records []lineprotocol.Record, conf Configuration) error {
	rep, err := report.Build(records, conf.Report)
	if err != nil {
		return errors.Wrap(err, "could not build report")
	}

	logrus.WithFields(logrus.Fields{
		"matched": humanize.Comma(int64(rep.Matched)),
		"series":  len(rep.Series),
	}).Info("report built")

	return writeReport(rep, conf.Output)
}

func main() {
	start := time.Now()

	opts := readCommandLineOptions()

	if opts.Profile != "" {
		p, err := startProfile(opts.Profile, opts.ProfilePath)
		if err != nil {
			logrus.WithError(err).Fatal("could not start profile")
		}
		defer p.Stop()
	}

	conf := readConfiguration(opts)

	if err := configureLogging(conf); err != nil {
		logrus.WithError(err).Fatal("could not configure logging")
	}

	records, err := readInputs(conf.Inputs)
	if err != nil {
		logrus.WithError(err).Fatal("could not read records")
	}

	if err := writeReportFor(records, conf); err != nil {
		logrus.WithError(err).Fatal("could not write report")
	}

	generic.LogExecTime(start, "report done")
}
