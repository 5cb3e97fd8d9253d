package main

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/martin2250/timebucket/generic"
	"github.com/martin2250/timebucket/report"
	"github.com/martin2250/timebucket/timebucket"
)

type Configuration struct {
	Inputs []string      `yaml:"inputs"`
	Output string        `yaml:"output"`
	Report report.Config `yaml:"report"`

	Logging struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
	} `yaml:"logging"`
}

var ConfigDefault = Configuration{
	Report: report.Config{
		Granularity: timebucket.DefaultGranularity,
	},
}

// loadConfiguration decodes the file over ConfigDefault, relative paths
// are resolved against the directory of the file
func loadConfiguration(confpath string) (Configuration, error) {
	conf := ConfigDefault

	f, err := os.Open(confpath)
	if err != nil {
		return conf, errors.Wrap(err, "could not open configuration file")
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&conf); err != nil {
		return conf, errors.Wrap(err, "could not parse configuration file")
	}

	dir := path.Dir(confpath)
	for i, p := range conf.Inputs {
		if !path.IsAbs(p) && p != "-" {
			conf.Inputs[i] = path.Join(dir, p)
		}
	}
	if conf.Output != "" && !path.IsAbs(conf.Output) {
		conf.Output = path.Join(dir, conf.Output)
	}

	return conf, nil
}

// applyCommandLine overrides configuration values with anything set on the command line
func applyCommandLine(conf Configuration, opts CommandLineOptions) Configuration {
	if len(opts.Inputs) > 0 {
		conf.Inputs = opts.Inputs
	}
	if opts.OutputPath != "" {
		conf.Output = opts.OutputPath
	}
	if opts.Granularity != 0 {
		conf.Report.Granularity = opts.Granularity
	}
	if len(opts.Match) > 0 {
		conf.Report.Match = generic.Merge([]map[string]string{conf.Report.Match, opts.Match})
	}
	if len(opts.GroupBy) > 0 {
		conf.Report.GroupBy = opts.GroupBy
	}
	if opts.Windows {
		conf.Report.Windows = true
	}
	if opts.Verbose {
		conf.Logging.Level = "debug"
	}
	return conf
}

func readConfiguration(opts CommandLineOptions) Configuration {
	conf := ConfigDefault

	if opts.ConfigPath != "" {
		logrus.WithField("path", opts.ConfigPath).Info("loading configuration file")

		var err error
		conf, err = loadConfiguration(opts.ConfigPath)
		if err != nil {
			logrus.WithError(err).Fatal("could not load configuration")
		}
	}

	conf = applyCommandLine(conf, opts)

	if len(conf.Inputs) == 0 {
		conf.Inputs = []string{"-"}
	}

	return conf
}

func configureLogging(conf Configuration) error {
	if conf.Logging.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if conf.Logging.Level == "" {
		return nil
	}
	level, err := logrus.ParseLevel(conf.Logging.Level)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	logrus.SetLevel(level)
	return nil
}
