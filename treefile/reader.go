package treefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/arbor"
)

// Record is a single line of a tree file.
type Record struct {
	Line   int   // line number, starting at 1
	Values []int // integers of the line
}

// end terminates a stream of records.
type end struct {
	err error
}

// subscriberCapacity is the buffer size of a subscriber's channel.
const subscriberCapacity = 16

// Reader broadcasts the records of a tree file to its subscribers.
//
// Clients subscribe first and then call Start. Every subscriber receives all
// records in file order, followed by an end message. Subscriptions should be
// drained with Consume.
type Reader struct {
	path    string      // file name
	info    os.FileInfo // result from Stat(path)
	cast    *caster.Caster
	started bool
}

// Open prepares a tree file for reading. Open checks synchronously that the
// file exists and is a regular file; the file is opened and read by Start.
func Open(name string) (*Reader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", arbor.ErrIllegalArguments, name)
	}
	return &Reader{
		path: name,
		info: fi,
		cast: caster.New(nil),
	}, nil
}

// Subscribe registers a listener for the file's records. It must be called
// before Start.
func (r *Reader) Subscribe(ctx context.Context) (<-chan interface{}, error) {
	if r.started {
		return nil, fmt.Errorf("%w: subscribe after start of %s", arbor.ErrIllegalArguments, r.path)
	}
	select {
	case <-r.cast.Done():
		return nil, fmt.Errorf("%w: reader for %s is closed", arbor.ErrIllegalArguments, r.path)
	default:
	}
	ch, _ := r.cast.Sub(ctx, subscriberCapacity)
	return ch, nil
}

// Start scans the file in the background and publishes its records.
func (r *Reader) Start() {
	if r.started {
		return
	}
	r.started = true
	tracer().Debugf("treefile: scanning %s (%d bytes)", r.path, r.info.Size())
	go func() {
		file, err := os.Open(r.path) // just open for read access
		if err != nil {
			r.cast.Pub(end{err: err})
			return
		}
		defer file.Close()
		err = scan(file, func(rec Record) {
			r.cast.Pub(rec)
		})
		tracer().Debugf("treefile: done scanning %s", r.path)
		r.cast.Pub(end{err: err})
	}()
}

// Close releases the broadcaster. It should be called after all subscribers
// have seen the end of the stream.
func (r *Reader) Close() {
	r.cast.Close()
}

// Consume reads records from a subscription until the end of the stream,
// calling fn for each of them. After fn has returned an error, remaining
// records are drained without calling fn. Consume returns the first error of
// fn or, failing that, the scanning error.
func Consume(ch <-chan interface{}, fn func(Record) error) error {
	var ferr error
	for msg := range ch {
		switch m := msg.(type) {
		case Record:
			if ferr == nil {
				ferr = fn(m)
			}
		case end:
			if ferr != nil {
				return ferr
			}
			return m.err
		}
	}
	if ferr != nil {
		return ferr
	}
	return fmt.Errorf("%w: record stream closed without end", arbor.ErrStructure)
}

// scan splits input into records. Malformed integers are reported together
// with their line number.
func scan(input io.Reader, emit func(Record)) error {
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		rec := Record{Line: line, Values: make([]int, len(fields))}
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: line %d: %q is not an integer", arbor.ErrIllegalArguments, line, f)
			}
			rec.Values[i] = v
		}
		emit(rec)
	}
	return scanner.Err()
}
