package lineprotocol

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/martin2250/timebucket/timebucket/types"
)

// Line Protocol Format:
// "tag:value tag:value|start|end" or "tag:value|start|+duration"
// start and end are unix seconds, duration is in seconds

type KVP struct {
	Key   string
	Value string
}

type Record struct {
	Tags  []KVP
	Start int64
	End   int64
}

func writeKVPs(sb *strings.Builder, kvps []KVP) {
	for i := range kvps {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kvps[i].Key)
		sb.WriteByte(':')
		sb.WriteString(kvps[i].Value)
	}
}

func (r Record) String() string {
	var sb strings.Builder

	writeKVPs(&sb, r.Tags)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(r.Start, 10))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(r.End, 10))

	return sb.String()
}

func (r Record) Interval() types.Interval {
	return types.Interval{
		Start: time.Unix(r.Start, 0).UTC(),
		End:   time.Unix(r.End, 0).UTC(),
	}
}

func (r Record) Duration() time.Duration {
	return time.Duration(r.End-r.Start) * time.Second
}

// TagMap returns the tags as a map, later duplicates win
func (r Record) TagMap() map[string]string {
	m := make(map[string]string, len(r.Tags))
	for _, kvp := range r.Tags {
		m[kvp.Key] = kvp.Value
	}
	return m
}

// SeriesKey identifies the tag set independent of tag order
func (r Record) SeriesKey() string {
	kvps := append([]KVP(nil), r.Tags...)
	sort.Slice(kvps, func(i, j int) bool {
		if kvps[i].Key != kvps[j].Key {
			return kvps[i].Key < kvps[j].Key
		}
		return kvps[i].Value < kvps[j].Value
	})
	var sb strings.Builder
	writeKVPs(&sb, kvps)
	return sb.String()
}

var ErrInvalidFormat = errors.New("invalid format")
var ErrTooLong = errors.New("input exceeds maximum length")
var ErrInvalidSym = errors.New("input has invalid symbols")
var ErrEndBeforeStart = errors.New("record ends before it starts")

const maxLineLength = 8192

func parseKVP(text []byte, chars []charType) (KVP, bool) {
	kvp := KVP{}
	indexStart := 0
	for i := range text {
		switch chars[i] {
		case letter, number:
			continue
		case colon:
			break
		default:
			return KVP{}, false
		}
		// found colon
		if indexStart != 0 {
			// found second colon
			return KVP{}, false
		}
		if i == 0 {
			return KVP{}, false
		}
		indexStart = i + 1
		kvp.Key = string(text[:i])
	}
	if indexStart == 0 || indexStart == len(text) {
		return KVP{}, false
	}
	kvp.Value = string(text[indexStart:])
	return kvp, true
}

func parseKVPs(text []byte, chars []charType) ([]KVP, bool) {
	var kvps []KVP
	indexStart := 0
	for i, t := range chars {
		switch t {
		case colon, letter, number:
			continue
		case space:
			break
		default:
			return nil, false
		}
		kvp, ok := parseKVP(text[indexStart:i], chars[indexStart:i])
		if !ok {
			return nil, false
		}
		kvps = append(kvps, kvp)
		indexStart = i + 1
	}
	if indexStart != len(chars) {
		kvp, ok := parseKVP(text[indexStart:], chars[indexStart:])
		if !ok {
			return nil, false
		}
		kvps = append(kvps, kvp)
	}
	return kvps, kvps != nil
}

func parseTime(text []byte, chars []charType) (int64, bool) {
	for _, t := range chars {
		if t != number {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(string(text), 10, 64)
	return v, err == nil
}

func Parse(line []byte) (Record, error) {
	if len(line) > maxLineLength {
		return Record{}, ErrTooLong
	}

	chars := make([]charType, len(line))

	// check for characters that aren't allowed
	if !CheckSymbols(line, chars) {
		return Record{}, ErrInvalidSym
	}

	if bytes.Count(line, []byte{'|'}) != 2 {
		return Record{}, ErrInvalidFormat
	}
	first := bytes.IndexByte(line, '|')
	second := first + 1 + bytes.IndexByte(line[first+1:], '|')

	r := Record{}
	var ok bool
	r.Tags, ok = parseKVPs(line[:first], chars[:first])
	if !ok {
		return Record{}, ErrInvalidFormat
	}

	r.Start, ok = parseTime(line[first+1:second], chars[first+1:second])
	if !ok {
		return Record{}, errors.Wrap(ErrInvalidFormat, "start")
	}

	end, endTypes := line[second+1:], chars[second+1:]
	relative := len(end) > 0 && end[0] == '+'
	if relative {
		end, endTypes = end[1:], endTypes[1:]
	}
	r.End, ok = parseTime(end, endTypes)
	if !ok {
		return Record{}, errors.Wrap(ErrInvalidFormat, "end")
	}
	if relative {
		r.End += r.Start
	}

	if r.End < r.Start {
		return Record{}, ErrEndBeforeStart
	}
	return r, nil
}

type charType byte

const (
	letter charType = iota
	number
	other
	pipe  charType = '|'
	colon charType = ':'
	space charType = ' '
	plus  charType = '+'
)

func checkChar(b byte) charType {
	if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_' {
		return letter
	}

	if (b >= '0' && b <= '9') || b == '.' || b == '-' {
		return number
	}

	if b == '|' || b == ':' || b == ' ' || b == '+' {
		return charType(b)
	}

	return other
}

// CheckSymbols checks if the line contains symbols other than
// a-z A-Z 0-9 _ . : | + space -
func CheckSymbols(line []byte, chars []charType) bool {
	l := len(line)
	for i := 0; i < l; i++ {
		t := checkChar(line[i])
		chars[i] = t
		if t == other {
			return false
		}
	}
	return true
}

func MatchKVPs(kvps []KVP, tags map[string]string) bool {
	for _, kvp := range kvps {
		val, ok := tags[kvp.Key]

		if !ok || val != kvp.Value {
			return false
		}
	}
	return true
}
