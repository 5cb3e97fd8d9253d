package lineprotocol

import (
	"bufio"
	"bytes"
	"io"

	"github.com/sirupsen/logrus"
)

// Reader reads records line by line, invalid lines are logged and skipped
type Reader struct {
	reader  *bufio.Reader
	buf     []byte
	err     error
	record  Record
	line    int
	skipped int
	log     *logrus.Entry
}

func NewReader(r io.Reader, name string) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
		buf:    make([]byte, 0, 4096),
		log:    logrus.WithField("input", name),
	}
}

// readLine returns the next line without its line ending.
// Lines longer than maxLineLength are cut one byte past the limit, so Parse rejects them
func (r *Reader) readLine() ([]byte, bool) {
	r.buf = r.buf[:0]
	for {
		chunk, isPrefix, err := r.reader.ReadLine()
		if err != nil {
			if err != io.EOF {
				r.err = err
			}
			return nil, false
		}
		if room := maxLineLength + 1 - len(r.buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			r.buf = append(r.buf, chunk...)
		}
		if !isPrefix {
			return r.buf, true
		}
	}
}

// Next advances to the next valid record
func (r *Reader) Next() bool {
	for {
		raw, ok := r.readLine()
		if !ok {
			return false
		}
		r.line++
		line := bytes.TrimSpace(raw)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		record, err := Parse(line)
		if err != nil {
			r.skipped++
			r.log.WithError(err).WithField("line", r.line).Warning("skipping invalid record")
			continue
		}
		r.record = record
		return true
	}
}

func (r *Reader) Record() Record {
	return r.record
}

// Skipped returns the number of invalid lines seen so far
func (r *Reader) Skipped() int {
	return r.skipped
}

func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every valid record from r
func ReadAll(r io.Reader, name string) ([]Record, int, error) {
	reader := NewReader(r, name)
	var records []Record
	for reader.Next() {
		records = append(records, reader.Record())
	}
	return records, reader.Skipped(), reader.Err()
}
