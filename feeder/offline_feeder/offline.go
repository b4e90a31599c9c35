package offline_feeder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/sbezverk/msort/feeder"
	"github.com/sbezverk/msort/parse"
)

type offFeeder struct {
	src  io.Reader
	file *os.File
	feed chan *feeder.Feed
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (o *offFeeder) GetFeed() chan *feeder.Feed {
	return o.feed
}

func (o *offFeeder) send(f *feeder.Feed) bool {
	select {
	case o.feed <- f:
		return true
	case <-o.stop:
		return false
	}
}

func (o *offFeeder) retrieve() {
	defer close(o.done)
	defer close(o.feed)
	scanner := bufio.NewScanner(o.src)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		values, err := parse.Ints(text)
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
		}
		glog.V(6).Infof("line %d: %d values", line, len(values))
		if !o.send(&feeder.Feed{Line: line, Values: values, Err: err}) {
			glog.V(5).Infof("offline feeder stopped at line %d", line)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		glog.Errorf("failed to read sequences with error: %+v", err)
		o.send(&feeder.Feed{Line: line + 1, Err: fmt.Errorf("%w: %w", feeder.ErrReadSequence, err)})
		return
	}
	glog.Info("processing offline sequences completed")
}

// Stop ends the retrieval, it is safe to call after the feed has been drained and more than once
func (o *offFeeder) Stop() {
	o.once.Do(func() {
		close(o.stop)
		<-o.done
		if o.file != nil {
			o.file.Close()
		}
	})
}

// NewFromReader returns a Feeder producing one Feed per non blank line of r,
// lines starting with # are skipped.
func NewFromReader(r io.Reader) feeder.Feeder {
	o := &offFeeder{
		src:  r,
		feed: make(chan *feeder.Feed),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go o.retrieve()

	return o
}

// New returns a Feeder reading sequences from the file fn.
func New(fn string) (feeder.Feeder, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sequences file %s with error: %+v", fn, err)
	}
	o := NewFromReader(f).(*offFeeder)
	o.file = f

	return o, nil
}
