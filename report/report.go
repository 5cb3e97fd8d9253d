// Package report summarises interval records per series: how much time they
// cover and how that coverage is spread over time buckets.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/martin2250/timebucket/generic"
	"github.com/martin2250/timebucket/pkg/lineprotocol"
	"github.com/martin2250/timebucket/timebucket"
	"github.com/martin2250/timebucket/timebucket/types"
	"github.com/martin2250/timebucket/util"
)

type Config struct {
	// Granularity is the bucket width, defaults to one hour
	Granularity time.Duration `yaml:"granularity"`
	// Match selects records carrying all of these tags
	Match map[string]string `yaml:"match"`
	// GroupBy lists the tags that identify a series, all tags when empty
	GroupBy []string `yaml:"group_by"`
	// Windows includes the merged coverage windows in the output
	Windows bool `yaml:"windows"`
}

type Window struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

type Bucket struct {
	Start   time.Time `yaml:"start"`
	Events  int       `yaml:"events"`
	Covered float64   `yaml:"covered_seconds"`
}

type Series struct {
	Key     string   `yaml:"series"`
	Records int      `yaml:"records"`
	Total   float64  `yaml:"total_seconds"`
	Covered float64  `yaml:"covered_seconds"`
	Windows []Window `yaml:"windows,omitempty"`
	Buckets []Bucket `yaml:"buckets"`
}

type Report struct {
	Granularity string   `yaml:"granularity"`
	Matched     int      `yaml:"matched"`
	Ungrouped   int      `yaml:"ungrouped"`
	Series      []Series `yaml:"series"`
}

func groupKey(r lineprotocol.Record, groupBy []string) (string, bool) {
	if len(groupBy) == 0 {
		return r.SeriesKey(), true
	}
	tags, err := generic.KeepKeys(r.TagMap(), groupBy)
	if err != nil {
		return "", false
	}
	kvps := make([]string, len(groupBy))
	for i, k := range groupBy {
		kvps[i] = k + ":" + tags[k]
	}
	return strings.Join(kvps, " "), true
}

// Build groups records into series and summarises each one
func Build(records []lineprotocol.Record, conf Config) (Report, error) {
	if conf.Granularity == 0 {
		conf.Granularity = timebucket.DefaultGranularity
	}
	if conf.Granularity < 0 {
		return Report{}, errors.Wrapf(timebucket.ErrInvalidGranularity, "got %v", conf.Granularity)
	}

	rep := Report{
		Granularity: conf.Granularity.String(),
	}

	groups := make(map[string][]types.Interval)
	for _, r := range records {
		if !util.IsSubset(conf.Match, r.TagMap()) {
			continue
		}
		rep.Matched++
		key, ok := groupKey(r, conf.GroupBy)
		if !ok {
			rep.Ungrouped++
			continue
		}
		groups[key] = append(groups[key], r.Interval())
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s, err := summarise(k, groups[k], conf)
		if err != nil {
			return Report{}, errors.Wrapf(err, "series %q", k)
		}
		rep.Series = append(rep.Series, s)
	}
	return rep, nil
}

func summarise(key string, intervals []types.Interval, conf Config) (Series, error) {
	s := Series{
		Key:     key,
		Records: len(intervals),
	}

	windows, err := timebucket.Merge(intervals)
	if err != nil {
		return Series{}, err
	}
	covered, err := timebucket.UnionSeconds(intervals)
	if err != nil {
		return Series{}, err
	}
	s.Covered = covered

	buckets := make(map[int64]*Bucket)
	bucket := func(start time.Time) *Bucket {
		b, ok := buckets[start.UnixNano()]
		if !ok {
			b = &Bucket{Start: start}
			buckets[start.UnixNano()] = b
		}
		return b
	}

	for _, iv := range intervals {
		s.Total += iv.Duration().Seconds()
		touched, err := timebucket.Buckets(iv, conf.Granularity)
		if err != nil {
			return Series{}, err
		}
		for _, t := range touched {
			bucket(t.Start).Events++
		}
	}

	for _, w := range windows {
		if conf.Windows {
			s.Windows = append(s.Windows, Window{Start: w.Start, End: w.End})
		}
		touched, err := timebucket.Buckets(w, conf.Granularity)
		if err != nil {
			return Series{}, err
		}
		for _, t := range touched {
			bucket(t.Start).Covered += intersection(t, w).Seconds()
		}
	}

	for _, b := range buckets {
		s.Buckets = append(s.Buckets, *b)
	}
	sort.Slice(s.Buckets, func(i, j int) bool {
		return s.Buckets[i].Start.Before(s.Buckets[j].Start)
	})
	return s, nil
}

func intersection(a, b types.Interval) time.Duration {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}
