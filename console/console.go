package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/sbezverk/msort"
	"github.com/sbezverk/msort/parse"
	"github.com/sbezverk/msort/store"
)

const (
	valuesPrompt = "Enter integers separated by spaces or commas: "
	againPrompt  = "Run again? (y/n): "
)

// Result is the record of one prompt-sort-verify cycle
type Result struct {
	Run int
	*msort.Outcome
}

var _ store.Storable = &Result{}

func (r *Result) Key() string {
	return fmt.Sprintf("run-%06d", r.Run)
}

// Session is an interactive loop reading sequences from in and writing the
// sorted results to out. Every completed cycle is recorded in the history.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	history store.Manager
	runs    int
}

func New(in io.Reader, out io.Writer, history store.Manager) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		history: history,
	}
}

type line struct {
	text string
	err  error
}

// readLine waits for the next line of input, it returns io.EOF when either the input
// is exhausted or stop is closed.
func (s *Session) readLine(prompt string, stop <-chan struct{}) (string, error) {
	fmt.Fprint(s.out, prompt)
	ch := make(chan line, 1)
	go func() {
		text, err := s.in.ReadString('\n')
		if err == io.EOF && text != "" {
			err = nil
		}
		ch <- line{text: text, err: err}
	}()
	select {
	case l := <-ch:
		return l.text, l.err
	case <-stop:
		return "", io.EOF
	}
}

func (s *Session) readValues(stop <-chan struct{}) ([]int, error) {
	for {
		text, err := s.readLine(valuesPrompt, stop)
		if err != nil {
			return nil, err
		}
		values, err := parse.Ints(text)
		if err == nil {
			return values, nil
		}
		glog.V(5).Infof("rejected input %q: %+v", strings.TrimSpace(text), err)
		fmt.Fprintf(s.out, "Error: %v, try again.\n", err)
	}
}

func (s *Session) readAgain(stop <-chan struct{}) (bool, error) {
	for {
		text, err := s.readLine(againPrompt, stop)
		if err != nil {
			return false, err
		}
		again, err := parse.YesNo(text)
		if err == nil {
			return again, nil
		}
		fmt.Fprintf(s.out, "Error: %v.\n", err)
	}
}

func (s *Session) report(r *Result) {
	fmt.Fprintf(s.out, "Input:      %s\n", msort.FormatInts(r.Input))
	fmt.Fprintf(s.out, "Ascending:  %s (%s)\n", msort.FormatInts(r.Ascending), msort.Verdict(r.AscendingSorted))
	fmt.Fprintf(s.out, "Descending: %s (%s)\n", msort.FormatInts(r.Descending), msort.Verdict(r.DescendingSorted))
}

// Run loops until the user declines another run, the input ends or stop is closed.
func (s *Session) Run(stop <-chan struct{}) error {
	for {
		values, err := s.readValues(stop)
		if err != nil {
			return s.finish(err)
		}
		s.runs++
		r := &Result{
			Run:     s.runs,
			Outcome: msort.SortBothWays(values),
		}
		if !r.Verified() {
			glog.Errorf("run %d failed verification", r.Run)
		}
		s.report(r)
		if err := s.history.Add(r); err != nil {
			glog.Errorf("failed to record run %d with error: %+v", r.Run, err)
		}
		again, err := s.readAgain(stop)
		if err != nil {
			return s.finish(err)
		}
		if !again {
			return s.finish(nil)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		err = nil
	}
	fmt.Fprintf(s.out, "\n%d run(s) completed.\n", len(s.history.List()))
	glog.Infof("session finished after %d run(s)", s.runs)

	return err
}
