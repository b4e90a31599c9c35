package offline_feeder

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-test/deep"
	"github.com/sbezverk/msort/feeder"
	"github.com/sbezverk/msort/parse"
)

func drain(f feeder.Feeder) []*feeder.Feed {
	var feeds []*feeder.Feed
	for fd := range f.GetFeed() {
		feeds = append(feeds, fd)
	}
	return feeds
}

func TestNewFromReader(t *testing.T) {
	input := strings.Join([]string{
		"45, 12, 78",
		"",
		"# comment",
		"5 4 3,2,1",
		"1, x",
	}, "\n")
	f := NewFromReader(strings.NewReader(input))
	feeds := drain(f)
	f.Stop()

	if len(feeds) != 3 {
		t.Fatalf("expected 3 feeds, got %d", len(feeds))
	}
	if diff := deep.Equal(feeds[0], &feeder.Feed{Line: 1, Values: []int{45, 12, 78}}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if diff := deep.Equal(feeds[1], &feeder.Feed{Line: 4, Values: []int{5, 4, 3, 2, 1}}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if feeds[2].Line != 5 || !errors.Is(feeds[2].Err, parse.ErrNotANumber) {
		t.Errorf("expected parse error on line 5, got line %d error %+v", feeds[2].Line, feeds[2].Err)
	}
}

func TestStopBeforeDrain(t *testing.T) {
	f := NewFromReader(strings.NewReader("1\n2\n3\n"))
	<-f.GetFeed()
	f.Stop()
}

func TestNew(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("supposed to fail but succeeded")
	}
	fn := filepath.Join(t.TempDir(), "sequences.txt")
	if err := os.WriteFile(fn, []byte("3 1 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := New(fn)
	if err != nil {
		t.Fatalf("supposed to succeed but fail with error: %+v", err)
	}
	feeds := drain(f)
	f.Stop()
	if len(feeds) != 1 {
		t.Fatalf("expected 1 feed, got %d", len(feeds))
	}
	if diff := deep.Equal(feeds[0].Values, []int{3, 1, 2}); diff != nil {
		t.Errorf("%+v", diff)
	}
}

func TestReadFailure(t *testing.T) {
	errDisk := errors.New("disk failure")
	f := NewFromReader(io.MultiReader(strings.NewReader("2 1\n"), iotest.ErrReader(errDisk)))
	feeds := drain(f)
	f.Stop()

	if len(feeds) != 2 {
		t.Fatalf("expected 2 feeds, got %d", len(feeds))
	}
	if diff := deep.Equal(feeds[0].Values, []int{2, 1}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if !errors.Is(feeds[1].Err, feeder.ErrReadSequence) {
		t.Errorf("expected ErrReadSequence, got: %+v", feeds[1].Err)
	}
	if !errors.Is(feeds[1].Err, errDisk) {
		t.Errorf("expected the reader error to be wrapped, got: %+v", feeds[1].Err)
	}
}

func TestStopTwice(t *testing.T) {
	f := NewFromReader(strings.NewReader("1\n"))
	drain(f)
	f.Stop()
	f.Stop()
}
