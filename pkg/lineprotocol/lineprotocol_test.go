package lineprotocol_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin2250/timebucket/pkg/lineprotocol"
)

func BenchmarkLineProtocol(b *testing.B) {
	line := []byte("name:session host:weatherstation user:martin|1508832000|+7200")
	for n := 0; n < b.N; n++ {
		lineprotocol.Parse(line)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    lineprotocol.Record
		wantErr error
	}{
		{
			name: "absolute",
			line: "name:main|3453453|3460653",
			want: lineprotocol.Record{
				Tags:  []lineprotocol.KVP{{Key: "name", Value: "main"}},
				Start: 3453453,
				End:   3460653,
			},
		},
		{
			name: "relative",
			line: "name:session host:a_1|1508832000|+7200",
			want: lineprotocol.Record{
				Tags:  []lineprotocol.KVP{{Key: "name", Value: "session"}, {Key: "host", Value: "a_1"}},
				Start: 1508832000,
				End:   1508839200,
			},
		},
		{
			name: "zero length",
			line: "name:blip|100|+0",
			want: lineprotocol.Record{
				Tags:  []lineprotocol.KVP{{Key: "name", Value: "blip"}},
				Start: 100,
				End:   100,
			},
		},
		{name: "missing end", line: "name:main|3453453|", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "missing field", line: "name:main|3453453", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "too many fields", line: "name:main|1|2|3", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "no tags", line: "|1|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "bad tag", line: "name|1|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "double colon", line: "name:a:b|1|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "letters in time", line: "name:a|1x|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "decimal time", line: "name:a|1.5|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "plus in start", line: "name:a|+1|2", wantErr: lineprotocol.ErrInvalidFormat},
		{name: "symbols", line: "name:a=b|1|2", wantErr: lineprotocol.ErrInvalidSym},
		{name: "reversed", line: "name:a|10|5", wantErr: lineprotocol.ErrEndBeforeStart},
		{name: "too long", line: "name:" + strings.Repeat("a", 8200) + "|1|2", wantErr: lineprotocol.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lineprotocol.Parse([]byte(tt.line))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordString(t *testing.T) {
	line := "name:session host:a|1508832000|1508839200"
	r, err := lineprotocol.Parse([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, line, r.String())

	again, err := lineprotocol.Parse([]byte(r.String()))
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

func TestRecordInterval(t *testing.T) {
	r, err := lineprotocol.Parse([]byte("name:session|1508832000|+5400"))
	require.NoError(t, err)

	iv := r.Interval()
	assert.Equal(t, time.Date(2017, 10, 24, 8, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2017, 10, 24, 9, 30, 0, 0, time.UTC), iv.End)
	assert.Equal(t, 90*time.Minute, r.Duration())
}

func TestSeriesKey(t *testing.T) {
	a, err := lineprotocol.Parse([]byte("name:session host:a|1|2"))
	require.NoError(t, err)
	b, err := lineprotocol.Parse([]byte("host:a name:session|5|9"))
	require.NoError(t, err)

	assert.Equal(t, "host:a name:session", a.SeriesKey())
	assert.Equal(t, a.SeriesKey(), b.SeriesKey())
	assert.Equal(t, map[string]string{"host": "a", "name": "session"}, b.TagMap())
}

func TestMatchKVPs(t *testing.T) {
	tags := map[string]string{"name": "session", "host": "a"}
	assert.True(t, lineprotocol.MatchKVPs([]lineprotocol.KVP{{Key: "host", Value: "a"}}, tags))
	assert.False(t, lineprotocol.MatchKVPs([]lineprotocol.KVP{{Key: "host", Value: "b"}}, tags))
	assert.False(t, lineprotocol.MatchKVPs([]lineprotocol.KVP{{Key: "user", Value: "a"}}, tags))
}

func TestReadAll(t *testing.T) {
	input := `# sessions
name:session host:a|1508832000|+3600

name:session host:a|1508833800|1508837400
name:session host:b|broken|+3600
name:session host:b|1508832000|+60
`
	records, skipped, err := lineprotocol.ReadAll(strings.NewReader(input), "test")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 3)
	assert.Equal(t, int64(1508833800), records[1].Start)
	assert.Equal(t, "host:b name:session", records[2].SeriesKey())
}

func TestReadAllSkipsLongLine(t *testing.T) {
	input := "name:a|0|60\n" +
		"name:" + strings.Repeat("a", 9000) + "|0|60\n" +
		"name:b|60|+60"
	records, skipped, err := lineprotocol.ReadAll(strings.NewReader(input), "test")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "name:a", records[0].SeriesKey())
	assert.Equal(t, "name:b", records[1].SeriesKey())
	assert.Equal(t, int64(120), records[1].End)
}

func TestReadAllCRLF(t *testing.T) {
	records, skipped, err := lineprotocol.ReadAll(strings.NewReader("name:a|0|60\r\nname:b|0|+1\r\n"), "test")
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Len(t, records, 2)
}

func FuzzParse(f *testing.F) {
	f.Add([]byte("name:session host:a|1508832000|+3600"))
	f.Add([]byte("name:a|1|2"))
	f.Fuzz(func(t *testing.T, line []byte) {
		r, err := lineprotocol.Parse(line)
		if err != nil {
			return
		}
		if r.End < r.Start {
			t.Errorf("Parse() accepted reversed record %v", r)
		}
		again, err := lineprotocol.Parse([]byte(r.String()))
		if err != nil {
			t.Errorf("Parse() rejected formatted record %q: %v", r.String(), err)
			return
		}
		if again.Start != r.Start || again.End != r.End {
			t.Errorf("Parse() got = %v, want %v", again, r)
		}
	})
}
